package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/krustykrab/restaurant-api/internal/services"
	"gorm.io/gorm"
)

// CustomerController handles HTTP requests related to customers
type CustomerController interface {
	GetAllCustomers(c *gin.Context)
	GetCustomerByID(c *gin.Context)
	CreateCustomer(c *gin.Context)
	UpdateCustomer(c *gin.Context)
	DeleteCustomer(c *gin.Context)
}

type customerController struct {
	service services.CustomerService
}

// NewCustomerController creates a new instance of CustomerController
func NewCustomerController(service services.CustomerService) *customerController {
	return &customerController{service: service}
}

// GetAllCustomers godoc
// @Summary Get all customers
// @Tags customers
// @Accept json
// @Produce json
// @Success 200 {array} models.Customer
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/customers [get]
func (c *customerController) GetAllCustomers(ctx *gin.Context) {
	customers, err := c.service.GetAllCustomers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve customers"))
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// GetCustomerByID godoc
// @Summary Get customer by ID
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer storage ID"
// @Success 200 {object} models.Customer
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/customers/{id} [get]
func (c *customerController) GetCustomerByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	customer, err := c.service.GetCustomerByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Customer not found"))
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// CreateCustomer godoc
// @Summary Create a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body models.Customer true "Customer object"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/customers [post]
func (c *customerController) CreateCustomer(ctx *gin.Context) {
	var req struct {
		CustomerID  int    `json:"customerID" binding:"required,gt=0"`
		Name        string `json:"name" binding:"required"`
		ContactInfo string `json:"contactInfo" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	customer, err := c.service.CreateCustomer(models.Customer{
		CustomerID:  req.CustomerID,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "A customer with this customerID already exists"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create customer"))
		return
	}
	ctx.JSON(http.StatusCreated, customer)
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Description Partially update a customer; omitted fields keep their values.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer storage ID"
// @Param customer body services.CustomerPatch true "Fields to update"
// @Success 200 {object} models.Customer
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/customers/{id} [patch]
func (c *customerController) UpdateCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch services.CustomerPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	customer, err := c.service.UpdateCustomer(id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Customer not found"))
			return
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "A customer with this customerID already exists"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update customer"))
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Description Delete a customer. Orders referencing this customer are left
// @Description untouched; their stored customerID becomes a dangling
// @Description business key.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer storage ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/customers/{id} [delete]
func (c *customerController) DeleteCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteCustomer(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Customer not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete customer"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
