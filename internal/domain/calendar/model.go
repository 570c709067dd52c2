package calendar

import "time"

// Event es un evento del calendario de una mascota (vacuna, turno, paseo...).
type Event struct {
	ID    string
	PetID string

	Type  string
	Title string

	StartDate time.Time // solo fecha
	StartTime *string   // HH:MM:SS, opcional

	Description string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter: OwnerUserID siempre; PetID opcional.
type Filter struct {
	OwnerUserID string
	PetID       string
}
