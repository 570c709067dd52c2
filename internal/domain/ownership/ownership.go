// Package ownership resuelve la cadena de pertenencia de una entidad
// (comentario → post → usuario, evento → mascota → usuario, ...) hasta el
// usuario dueño y la compara con el usuario autenticado.
package ownership

import (
	"context"
	"errors"
	"strings"

	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/ports/repo"
)

// Resolver devuelve el id del usuario dueño de la entidad id.
// Debe devolver un error que matchee apperr.ErrNotFound si la entidad no existe.
type Resolver interface {
	OwnerOf(ctx context.Context, id string) (string, error)
}

type ResolverFunc func(ctx context.Context, id string) (string, error)

func (f ResolverFunc) OwnerOf(ctx context.Context, id string) (string, error) { return f(ctx, id) }

// Loader carga una entidad de tipo T por id.
type Loader[T any] func(ctx context.Context, id string) (T, error)

// Direct: la entidad apunta directo a su usuario (pet.OwnerUserID, post.UserID).
func Direct[T any](what string, load Loader[T], ownerOf func(T) string) Resolver {
	return ResolverFunc(func(ctx context.Context, id string) (string, error) {
		e, err := load(ctx, id)
		if err != nil {
			return "", asNotFound(what, err)
		}
		return ownerOf(e), nil
	})
}

// Via: la entidad apunta a un padre, y el padre sabe resolver su dueño.
func Via[T any](what string, load Loader[T], parentOf func(T) string, parent Resolver) Resolver {
	return ResolverFunc(func(ctx context.Context, id string) (string, error) {
		e, err := load(ctx, id)
		if err != nil {
			return "", asNotFound(what, err)
		}
		return parent.OwnerOf(ctx, parentOf(e))
	})
}

// Authorize: NotFound si la cadena se corta, Forbidden si el dueño no es userID.
func Authorize(ctx context.Context, r Resolver, id, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.Unauthorized()
	}
	owner, err := r.OwnerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner == "" || owner != userID {
		return apperr.Forbidden()
	}
	return nil
}

// AnyOf autoriza si alguno de los resolvers da al usuario como dueño.
// NotFound del primero gana sobre Forbidden.
func AnyOf(ctx context.Context, id, userID string, rs ...Resolver) error {
	var last error = apperr.Forbidden()
	for _, r := range rs {
		err := Authorize(ctx, r, id, userID)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrUnauthorized) {
			return err
		}
		last = err
	}
	return last
}

func asNotFound(what string, err error) error {
	return repo.AsAppErr(what, err)
}
