package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/krustykrab/restaurant-api/internal/services"
	"gorm.io/gorm"
)

// EmployeeController handles HTTP requests related to employees
type EmployeeController interface {
	GetAllEmployees(c *gin.Context)
	GetEmployeeByID(c *gin.Context)
	CreateEmployee(c *gin.Context)
	UpdateEmployee(c *gin.Context)
	DeleteEmployee(c *gin.Context)
}

type employeeController struct {
	service services.EmployeeService
}

// NewEmployeeController creates a new instance of EmployeeController
func NewEmployeeController(service services.EmployeeService) *employeeController {
	return &employeeController{service: service}
}

// GetAllEmployees godoc
// @Summary Get all employees
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {array} models.Employee
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/employees [get]
func (c *employeeController) GetAllEmployees(ctx *gin.Context) {
	employees, err := c.service.GetAllEmployees()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve employees"))
		return
	}
	ctx.JSON(http.StatusOK, employees)
}

// GetEmployeeByID godoc
// @Summary Get employee by ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee storage ID"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/employees/{id} [get]
func (c *employeeController) GetEmployeeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	employee, err := c.service.GetEmployeeByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Employee not found"))
		return
	}
	ctx.JSON(http.StatusOK, employee)
}

// CreateEmployee godoc
// @Summary Create a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body models.Employee true "Employee object"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/employees [post]
func (c *employeeController) CreateEmployee(ctx *gin.Context) {
	var req struct {
		EmployeeID int     `json:"employeeID" binding:"required,gt=0"`
		Name       string  `json:"name" binding:"required"`
		Position   string  `json:"position" binding:"required"`
		Salary     float64 `json:"salary" binding:"gte=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	employee, err := c.service.CreateEmployee(models.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Position:   req.Position,
		Salary:     req.Salary,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "An employee with this employeeID already exists"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create employee"))
		return
	}
	ctx.JSON(http.StatusCreated, employee)
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Description Partially update an employee; omitted fields keep their values.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee storage ID"
// @Param employee body services.EmployeePatch true "Fields to update"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/employees/{id} [patch]
func (c *employeeController) UpdateEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch services.EmployeePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}
	if patch.Salary != nil && *patch.Salary < 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "salary must be non-negative"))
		return
	}

	employee, err := c.service.UpdateEmployee(id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Employee not found"))
			return
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "An employee with this employeeID already exists"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update employee"))
		return
	}
	ctx.JSON(http.StatusOK, employee)
}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee storage ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/employees/{id} [delete]
func (c *employeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteEmployee(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Employee not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete employee"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
