package db

import (
	"errors"

	"weather-dashboard/internal/domain/entity"
)

// ErrCityAlreadySaved is returned when inserting a (user, city) favorite pair
// that already exists. Callers translate it to a user-facing message instead
// of a generic store failure.
var ErrCityAlreadySaved = errors.New("city already saved for user")

type CityGateway interface {
	// Catalog operations
	FindAll() ([]entity.City, error)
	FindByID(id int) (*entity.City, error)
	SearchByName(query string, limit int) ([]entity.City, error)

	// Favorites operations
	FindSavedByUserID(userID string) ([]entity.City, error)
	SaveCity(userID string, cityID int) error
	DeleteSavedCity(userID string, cityID int) error
}
