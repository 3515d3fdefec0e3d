package db

import (
	"database/sql"
	"errors"

	"weather-dashboard/internal/domain/entity"

	"github.com/lib/pq"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// SQLCityGateway implements CityGateway with hand-written SQL over database/sql.
type SQLCityGateway struct {
	DB *sql.DB
}

var _ CityGateway = (*SQLCityGateway)(nil)

func NewSQLCityGateway(db *sql.DB) *SQLCityGateway {
	return &SQLCityGateway{DB: db}
}

// FindAll retrieves the full city catalog in catalog (id) order
func (gateway *SQLCityGateway) FindAll() ([]entity.City, error) {
	rows, err := gateway.DB.Query(`
		SELECT id, name, country, lat, lon
		FROM cities
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCities(rows)
}

// FindByID retrieves a single catalog city; (nil, nil) when the id is unknown
func (gateway *SQLCityGateway) FindByID(id int) (*entity.City, error) {
	var city entity.City
	err := gateway.DB.QueryRow(`
		SELECT id, name, country, lat, lon
		FROM cities
		WHERE id = $1`, id).
		Scan(&city.ID, &city.Name, &city.Country, &city.Lat, &city.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// SearchByName retrieves catalog cities whose name contains the query,
// case-insensitive, capped at limit rows
func (gateway *SQLCityGateway) SearchByName(query string, limit int) ([]entity.City, error) {
	rows, err := gateway.DB.Query(`
		SELECT id, name, country, lat, lon
		FROM cities
		WHERE name ILIKE $1
		ORDER BY name ASC
		LIMIT $2`, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCities(rows)
}

// FindSavedByUserID retrieves a user's saved cities, most recently saved first
func (gateway *SQLCityGateway) FindSavedByUserID(userID string) ([]entity.City, error) {
	rows, err := gateway.DB.Query(`
		SELECT c.id, c.name, c.country, c.lat, c.lon
		FROM cities c
		JOIN user_saved_cities usc ON usc.city_id = c.id
		WHERE usc.user_id = $1
		ORDER BY usc.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCities(rows)
}

// SaveCity inserts a favorite pair, translating a unique violation into
// ErrCityAlreadySaved
func (gateway *SQLCityGateway) SaveCity(userID string, cityID int) error {
	_, err := gateway.DB.Exec(`
		INSERT INTO user_saved_cities (user_id, city_id, created_at)
		VALUES ($1, $2, NOW())`, userID, cityID)
	return translateSaveError(err)
}

// DeleteSavedCity removes a favorite pair by its composite key
func (gateway *SQLCityGateway) DeleteSavedCity(userID string, cityID int) error {
	_, err := gateway.DB.Exec(`
		DELETE FROM user_saved_cities
		WHERE user_id = $1 AND city_id = $2`, userID, cityID)
	return err
}

// translateSaveError maps the driver's unique_violation onto ErrCityAlreadySaved.
func translateSaveError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return ErrCityAlreadySaved
	}
	return err
}

func scanCities(rows *sql.Rows) ([]entity.City, error) {
	cities := make([]entity.City, 0)
	for rows.Next() {
		var city entity.City
		if err := rows.Scan(&city.ID, &city.Name, &city.Country, &city.Lat, &city.Lon); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}
