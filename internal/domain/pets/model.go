package pets

import "time"

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func ParseSex(s string) (Sex, bool) {
	switch Sex(s) {
	case SexMale, SexFemale, SexUnknown:
		return Sex(s), true
	case "":
		return SexUnknown, true
	}
	return "", false
}

// Pet representa el perfil de una mascota de un usuario.
type Pet struct {
	ID          string
	OwnerUserID string

	Name  string
	Breed string
	Sex   Sex

	Birthday *time.Time // solo fecha
	PhotoURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
