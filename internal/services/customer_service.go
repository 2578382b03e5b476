package services

import (
	"github.com/krustykrab/restaurant-api/internal/models"
	"gorm.io/gorm"
)

// CustomerPatch is a partial update; nil fields keep their stored values.
type CustomerPatch struct {
	CustomerID  *int    `json:"customerID"`
	Name        *string `json:"name"`
	ContactInfo *string `json:"contactInfo"`
}

// CustomerService provides CRUD access to customers. Deleting a customer
// still referenced by orders is not prevented; stale references remain.
type CustomerService interface {
	GetAllCustomers() ([]models.Customer, error)
	GetCustomerByID(id int) (models.Customer, error)
	CreateCustomer(customer models.Customer) (models.Customer, error)
	UpdateCustomer(id int, patch CustomerPatch) (models.Customer, error)
	DeleteCustomer(id int) error
}

type customerService struct {
	db *gorm.DB
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerService{db: db}
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *customerService) GetCustomerByID(id int) (models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(customer models.Customer) (models.Customer, error) {
	if err := s.db.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(id int, patch CustomerPatch) (models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return models.Customer{}, err
	}
	if patch.CustomerID != nil {
		customer.CustomerID = *patch.CustomerID
	}
	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.ContactInfo != nil {
		customer.ContactInfo = *patch.ContactInfo
	}
	if err := s.db.Save(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(id int) error {
	result := s.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
