package services

import (
	"github.com/krustykrab/restaurant-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantProfilePatch is a partial update; nil fields keep their stored
// values.
type RestaurantProfilePatch struct {
	Location     *string `json:"location"`
	Phone        *string `json:"phone"`
	OpeningHours *string `json:"openingHours"`
}

// RestaurantService manages the restaurant profile. The profile is
// read-mostly reference data; the table normally holds a single row.
type RestaurantService interface {
	GetProfiles() ([]models.RestaurantProfile, error)
	GetProfileByID(id int) (models.RestaurantProfile, error)
	CreateProfile(profile models.RestaurantProfile) (models.RestaurantProfile, error)
	UpdateProfile(id int, patch RestaurantProfilePatch) (models.RestaurantProfile, error)
	DeleteProfile(id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetProfiles() ([]models.RestaurantProfile, error) {
	var profiles []models.RestaurantProfile
	if err := s.db.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *restaurantService) GetProfileByID(id int) (models.RestaurantProfile, error) {
	var profile models.RestaurantProfile
	if err := s.db.First(&profile, id).Error; err != nil {
		return models.RestaurantProfile{}, err
	}
	return profile, nil
}

func (s *restaurantService) CreateProfile(profile models.RestaurantProfile) (models.RestaurantProfile, error) {
	if err := s.db.Create(&profile).Error; err != nil {
		return models.RestaurantProfile{}, err
	}
	return profile, nil
}

func (s *restaurantService) UpdateProfile(id int, patch RestaurantProfilePatch) (models.RestaurantProfile, error) {
	var profile models.RestaurantProfile
	if err := s.db.First(&profile, id).Error; err != nil {
		return models.RestaurantProfile{}, err
	}
	if patch.Location != nil {
		profile.Location = *patch.Location
	}
	if patch.Phone != nil {
		profile.Phone = *patch.Phone
	}
	if patch.OpeningHours != nil {
		profile.OpeningHours = *patch.OpeningHours
	}
	if err := s.db.Save(&profile).Error; err != nil {
		return models.RestaurantProfile{}, err
	}
	return profile, nil
}

func (s *restaurantService) DeleteProfile(id int) error {
	result := s.db.Delete(&models.RestaurantProfile{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
