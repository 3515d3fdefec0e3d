package model

// SaveCityDTO is the request body for adding a city to a user's saved list.
type SaveCityDTO struct {
	CityID int `json:"cityId" validate:"required,gt=0"`
}

// CredentialsDTO is the request body for password sign-in and sign-up.
type CredentialsDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
