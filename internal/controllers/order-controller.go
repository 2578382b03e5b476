package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/krustykrab/restaurant-api/internal/services"
	"gorm.io/gorm"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetAllOrders retrieves all orders
	GetAllOrders(c *gin.Context)
	// GetOrderByID retrieves an order by its storage ID
	GetOrderByID(c *gin.Context)
	// CreateOrder creates a new order
	CreateOrder(c *gin.Context)
	// UpdateOrder partially updates an existing order
	UpdateOrder(c *gin.Context)
	// DeleteOrder deletes an order by its storage ID
	DeleteOrder(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) *orderController {
	return &orderController{service: service}
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get a list of all orders
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/orders [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.GetAllOrders()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve orders"))
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get a single order by its storage ID
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order storage ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id} [get]
func (c *orderController) GetOrderByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	order, err := c.service.GetOrderByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Order not found"))
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// CreateOrder godoc
// @Summary Create a new order
// @Description Create an order. The referenced customer and menu items must
// @Description exist; totalPrice is computed server-side and never read from
// @Description the request body.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body services.CreateOrderRequest true "Order payload"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var req services.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	order, err := c.service.CreateOrder(req)
	if err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// UpdateOrder godoc
// @Summary Update an order
// @Description Partially update an order. Fields omitted from the body keep
// @Description their stored values. Changing customerID, menuItemIDs, or
// @Description quantity re-runs reference validation and recomputes
// @Description totalPrice from current menu prices.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order storage ID"
// @Param order body services.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id} [patch]
func (c *orderController) UpdateOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req services.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	order, err := c.service.UpdateOrder(id, req)
	if err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order by its storage ID. No cascade effects.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order storage ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id} [delete]
func (c *orderController) DeleteOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteOrder(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Order not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete order"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// respondOrderError maps pipeline failures onto the API error contract.
// Every validation and reference failure is a 400; a duplicate orderID on
// create is also a 400 per the order API contract.
func respondOrderError(ctx *gin.Context, err error) {
	var malformed *services.MalformedOrderError
	var unknownCustomer *services.UnknownCustomerError
	var unknownItems *services.UnknownMenuItemsError

	switch {
	case errors.As(err, &malformed):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrOrderMalformed, malformed.Reason))
	case errors.As(err, &unknownCustomer):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCustomerUnknown, unknownCustomer.Error()))
	case errors.As(err, &unknownItems):
		ctx.JSON(http.StatusBadRequest, models.APIError{
			Code:             models.ErrMenuItemsUnknown,
			Message:          "Some menu items do not exist",
			MissingMenuItems: unknownItems.Names,
		})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrDuplicateKey, "An order with this orderID already exists"))
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Order not found"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to process order"))
	}
}

// parseIDParam reads the :id path parameter as an integer storage ID.
func parseIDParam(ctx *gin.Context) (int, bool) {
	raw, exists := ctx.Params.Get("id")
	if !exists {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Missing id parameter"))
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid id format"))
		return 0, false
	}
	return id, true
}
