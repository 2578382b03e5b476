package models

// RestaurantProfile holds the restaurant's own reference data. The table is
// expected to contain a single row; the handlers treat it as a singleton.
type RestaurantProfile struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	Location     string `json:"location" gorm:"not null"`
	Phone        string `json:"phone" gorm:"not null"`
	OpeningHours string `json:"openingHours" gorm:"not null"`
}

func (RestaurantProfile) TableName() string {
	return "restaurant_profile"
}
