package models

import (
	"time"
)

// Order references a customer by CustomerID and menu items by name.
// MenuItemIDs and Quantity are parallel arrays of equal length.
// TotalPrice is derived: it is recomputed from the current menu item prices
// on every persisting mutation and never taken from client input.
type Order struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	OrderID     int       `json:"orderID" gorm:"uniqueIndex;not null"`
	CustomerID  int       `json:"customerID" gorm:"not null"`
	MenuItemIDs []string  `json:"menuItemIDs" gorm:"serializer:json"`
	Quantity    []int     `json:"quantity" gorm:"serializer:json"`
	TotalPrice  float64   `json:"totalPrice" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
