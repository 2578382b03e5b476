package models

import (
	"time"
)

// MenuItem is a dish on the menu. The unique Name acts as the business key:
// orders reference menu items by name, not by storage ID. Price changes do
// not touch totals already stored on existing orders.
type MenuItem struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Ingredients []string  `json:"ingredients" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
