package users

import "time"

// User es la cuenta de la app. PasswordHash nunca sale por la API.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	PhotoURL     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
