// Package repo define los errores comunes que devuelven los adapters de persistencia
// (memory y postgres), para que los servicios no dependan de un adapter concreto.
package repo

import (
	"errors"

	"pet-care-service/internal/platform/apperr"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// AsAppErr traduce un error de repositorio: ErrNotFound => apperr.NotFound(what),
// un *apperr.Error pasa tal cual y el resto es interno.
func AsAppErr(what string, err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound(what)
	}
	return apperr.Internal(err)
}
