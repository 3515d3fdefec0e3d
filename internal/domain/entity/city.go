package entity

import "time"

// City is a row of the city catalog with its stored coordinates.
type City struct {
	ID      int     `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (City) TableName() string {
	return "cities"
}

// SavedCity is a row of the user-to-city favorites join.
type SavedCity struct {
	UserID    string    `json:"userId" gorm:"column:user_id;primaryKey"`
	CityID    int       `json:"cityId" gorm:"column:city_id;primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (SavedCity) TableName() string {
	return "user_saved_cities"
}
