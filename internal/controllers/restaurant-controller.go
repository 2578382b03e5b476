package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/krustykrab/restaurant-api/internal/services"
	"gorm.io/gorm"
)

// RestaurantController handles HTTP requests for the restaurant profile
type RestaurantController interface {
	GetProfiles(c *gin.Context)
	GetProfileByID(c *gin.Context)
	CreateProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
	DeleteProfile(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) *restaurantController {
	return &restaurantController{service: service}
}

// GetProfiles godoc
// @Summary Get the restaurant profile
// @Description Returns all profile rows; the table normally holds one.
// @Tags restaurant
// @Accept json
// @Produce json
// @Success 200 {array} models.RestaurantProfile
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/restaurant [get]
func (c *restaurantController) GetProfiles(ctx *gin.Context) {
	profiles, err := c.service.GetProfiles()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve restaurant profile"))
		return
	}
	ctx.JSON(http.StatusOK, profiles)
}

// GetProfileByID godoc
// @Summary Get restaurant profile by ID
// @Tags restaurant
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} models.RestaurantProfile
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/restaurant/{id} [get]
func (c *restaurantController) GetProfileByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	profile, err := c.service.GetProfileByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Restaurant profile not found"))
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// CreateProfile godoc
// @Summary Create the restaurant profile
// @Tags restaurant
// @Accept json
// @Produce json
// @Param profile body models.RestaurantProfile true "Profile object"
// @Success 201 {object} models.RestaurantProfile
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurant [post]
func (c *restaurantController) CreateProfile(ctx *gin.Context) {
	var req struct {
		Location     string `json:"location" binding:"required"`
		Phone        string `json:"phone" binding:"required"`
		OpeningHours string `json:"openingHours" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	profile, err := c.service.CreateProfile(models.RestaurantProfile{
		Location:     req.Location,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create restaurant profile"))
		return
	}
	ctx.JSON(http.StatusCreated, profile)
}

// UpdateProfile godoc
// @Summary Update the restaurant profile
// @Tags restaurant
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param profile body services.RestaurantProfilePatch true "Fields to update"
// @Success 200 {object} models.RestaurantProfile
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurant/{id} [patch]
func (c *restaurantController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch services.RestaurantProfilePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	profile, err := c.service.UpdateProfile(id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Restaurant profile not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update restaurant profile"))
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary Delete the restaurant profile
// @Tags restaurant
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/restaurant/{id} [delete]
func (c *restaurantController) DeleteProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteProfile(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Restaurant profile not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete restaurant profile"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
