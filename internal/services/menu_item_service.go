package services

import (
	"github.com/krustykrab/restaurant-api/internal/models"
	"gorm.io/gorm"
)

// MenuItemPatch is a partial update; nil fields keep their stored values.
// Renaming an item does not rewrite orders that reference the old name, and
// a price change does not touch totals already stored on existing orders.
type MenuItemPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Ingredients *[]string `json:"ingredients"`
}

// MenuItemService provides CRUD access to the menu.
type MenuItemService interface {
	GetAllMenuItems() ([]models.MenuItem, error)
	GetMenuItemByID(id int) (models.MenuItem, error)
	CreateMenuItem(item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(id int, patch MenuItemPatch) (models.MenuItem, error)
	DeleteMenuItem(id int) error
}

type menuItemService struct {
	db *gorm.DB
}

// NewMenuItemService creates a new instance of MenuItemService
func NewMenuItemService(db *gorm.DB) MenuItemService {
	return &menuItemService{db: db}
}

func (s *menuItemService) GetAllMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuItemService) GetMenuItemByID(id int) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuItemService) CreateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if err := s.db.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuItemService) UpdateMenuItem(id int, patch MenuItemPatch) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return models.MenuItem{}, err
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Ingredients != nil {
		item.Ingredients = *patch.Ingredients
	}
	if err := s.db.Save(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuItemService) DeleteMenuItem(id int) error {
	result := s.db.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
