package db

import (
	"errors"

	"weather-dashboard/internal/domain/entity"

	"gorm.io/gorm"
)

// GormCityGateway implements CityGateway on top of gorm. The connection must
// be opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormCityGateway struct {
	DB *gorm.DB
}

var _ CityGateway = (*GormCityGateway)(nil)

func NewGormCityGateway(db *gorm.DB) *GormCityGateway {
	return &GormCityGateway{DB: db}
}

// FindAll retrieves the full city catalog in catalog (id) order
func (gateway *GormCityGateway) FindAll() ([]entity.City, error) {
	cities := make([]entity.City, 0)
	if err := gateway.DB.Order("id ASC").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// FindByID retrieves a single catalog city; (nil, nil) when the id is unknown
func (gateway *GormCityGateway) FindByID(id int) (*entity.City, error) {
	var city entity.City
	err := gateway.DB.First(&city, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// SearchByName retrieves catalog cities whose name contains the query,
// case-insensitive, capped at limit rows
func (gateway *GormCityGateway) SearchByName(query string, limit int) ([]entity.City, error) {
	cities := make([]entity.City, 0)
	err := gateway.DB.
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

// FindSavedByUserID retrieves a user's saved cities, most recently saved first
func (gateway *GormCityGateway) FindSavedByUserID(userID string) ([]entity.City, error) {
	cities := make([]entity.City, 0)
	err := gateway.DB.
		Joins("JOIN user_saved_cities ON user_saved_cities.city_id = cities.id").
		Where("user_saved_cities.user_id = ?", userID).
		Order("user_saved_cities.created_at DESC").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

// SaveCity inserts a favorite pair, translating a unique violation into
// ErrCityAlreadySaved
func (gateway *GormCityGateway) SaveCity(userID string, cityID int) error {
	saved := entity.SavedCity{UserID: userID, CityID: cityID}
	err := gateway.DB.Create(&saved).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCityAlreadySaved
	}
	return err
}

// DeleteSavedCity removes a favorite pair by its composite key
func (gateway *GormCityGateway) DeleteSavedCity(userID string, cityID int) error {
	return gateway.DB.
		Where("user_id = ? AND city_id = ?", userID, cityID).
		Delete(&entity.SavedCity{}).Error
}
