package services

import (
	"github.com/krustykrab/restaurant-api/internal/models"
	"gorm.io/gorm"
)

// EmployeePatch is a partial update; nil fields keep their stored values.
type EmployeePatch struct {
	EmployeeID *int     `json:"employeeID"`
	Name       *string  `json:"name"`
	Position   *string  `json:"position"`
	Salary     *float64 `json:"salary"`
}

// EmployeeService provides CRUD access to staff records.
type EmployeeService interface {
	GetAllEmployees() ([]models.Employee, error)
	GetEmployeeByID(id int) (models.Employee, error)
	CreateEmployee(employee models.Employee) (models.Employee, error)
	UpdateEmployee(id int, patch EmployeePatch) (models.Employee, error)
	DeleteEmployee(id int) error
}

type employeeService struct {
	db *gorm.DB
}

// NewEmployeeService creates a new instance of EmployeeService
func NewEmployeeService(db *gorm.DB) EmployeeService {
	return &employeeService{db: db}
}

func (s *employeeService) GetAllEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *employeeService) GetEmployeeByID(id int) (models.Employee, error) {
	var employee models.Employee
	if err := s.db.First(&employee, id).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (s *employeeService) CreateEmployee(employee models.Employee) (models.Employee, error) {
	if err := s.db.Create(&employee).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (s *employeeService) UpdateEmployee(id int, patch EmployeePatch) (models.Employee, error) {
	var employee models.Employee
	if err := s.db.First(&employee, id).Error; err != nil {
		return models.Employee{}, err
	}
	if patch.EmployeeID != nil {
		employee.EmployeeID = *patch.EmployeeID
	}
	if patch.Name != nil {
		employee.Name = *patch.Name
	}
	if patch.Position != nil {
		employee.Position = *patch.Position
	}
	if patch.Salary != nil {
		employee.Salary = *patch.Salary
	}
	if err := s.db.Save(&employee).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(id int) error {
	result := s.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
