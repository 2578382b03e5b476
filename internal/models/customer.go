package models

import (
	"time"
)

// Customer is a restaurant customer. CustomerID is the business key used by
// orders to reference the customer; ID is only the storage identifier.
type Customer struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	CustomerID  int       `json:"customerID" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"not null"`
	ContactInfo string    `json:"contactInfo" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
