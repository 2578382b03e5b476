package models

import (
	"time"
)

// Employee is a staff record. EmployeeID is the business key.
type Employee struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	EmployeeID int       `json:"employeeID" gorm:"uniqueIndex;not null"`
	Name       string    `json:"name" gorm:"not null"`
	Position   string    `json:"position" gorm:"not null"`
	Salary     float64   `json:"salary" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
