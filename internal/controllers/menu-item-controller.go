package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/krustykrab/restaurant-api/internal/services"
	"gorm.io/gorm"
)

// MenuItemController handles HTTP requests related to menu items
type MenuItemController interface {
	GetAllMenuItems(c *gin.Context)
	GetMenuItemByID(c *gin.Context)
	CreateMenuItem(c *gin.Context)
	UpdateMenuItem(c *gin.Context)
	DeleteMenuItem(c *gin.Context)
}

type menuItemController struct {
	service services.MenuItemService
}

// NewMenuItemController creates a new instance of MenuItemController
func NewMenuItemController(service services.MenuItemService) *menuItemController {
	return &menuItemController{service: service}
}

// GetAllMenuItems godoc
// @Summary Get all menu items
// @Tags menu-items
// @Accept json
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/menu-items [get]
func (c *menuItemController) GetAllMenuItems(ctx *gin.Context) {
	items, err := c.service.GetAllMenuItems()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve menu items"))
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetMenuItemByID godoc
// @Summary Get menu item by ID
// @Tags menu-items
// @Accept json
// @Produce json
// @Param id path int true "Menu item storage ID"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/menu-items/{id} [get]
func (c *menuItemController) GetMenuItemByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetMenuItemByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Menu item not found"))
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// CreateMenuItem godoc
// @Summary Create a new menu item
// @Tags menu-items
// @Accept json
// @Produce json
// @Param menuItem body models.MenuItem true "Menu item object"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/menu-items [post]
func (c *menuItemController) CreateMenuItem(ctx *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Description string   `json:"description"`
		Price       float64  `json:"price" binding:"gte=0"`
		Ingredients []string `json:"ingredients"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	item, err := c.service.CreateMenuItem(models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "A menu item with this name already exists"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create menu item"))
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Partially update a menu item. A price change does not touch
// @Description totals already stored on existing orders.
// @Tags menu-items
// @Accept json
// @Produce json
// @Param id path int true "Menu item storage ID"
// @Param menuItem body services.MenuItemPatch true "Fields to update"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/menu-items/{id} [patch]
func (c *menuItemController) UpdateMenuItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch services.MenuItemPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "price must be non-negative"))
		return
	}

	item, err := c.service.UpdateMenuItem(id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Menu item not found"))
			return
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "A menu item with this name already exists"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update menu item"))
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Description Delete a menu item. Orders referencing it by name are left
// @Description untouched; their stored names become dangling business keys.
// @Tags menu-items
// @Accept json
// @Produce json
// @Param id path int true "Menu item storage ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/menu-items/{id} [delete]
func (c *menuItemController) DeleteMenuItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteMenuItem(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Menu item not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete menu item"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
