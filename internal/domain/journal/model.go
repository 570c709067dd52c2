package journal

import "time"

// Entry es una entrada del diario de una mascota. CreatedAt lo fija el
// servidor y no se modifica nunca.
type Entry struct {
	ID    string
	PetID string

	Type        string
	Title       string
	Description string

	CreatedAt time.Time
}

type Filter struct {
	OwnerUserID string
	PetID       string
}
