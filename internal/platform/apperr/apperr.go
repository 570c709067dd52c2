// Package apperr define la taxonomía de errores visible para el cliente.
// Los servicios devuelven *Error; los handlers lo traducen a HTTP vía platform/web.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindStorage      Kind = "storage"
	KindInternal     Kind = "internal"
)

// Sentinels para errors.Is(err, apperr.ErrNotFound) sin mirar el Kind a mano.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrStorage      = &Error{Kind: KindStorage}
)

type Error struct {
	Kind    Kind
	Message string

	// Fields: detalle por campo (solo validation).
	Fields map[string]string

	cause error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// Is compara por Kind, así cualquier *Error de validación matchea ErrValidation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func Validation(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// Field es un atajo para un único campo inválido.
func Field(name, problem string) *Error {
	return Validation("validation error", map[string]string{name: problem})
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "unauthorized"}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "forbidden"}
}

func NotFound(what string) *Error {
	what = strings.TrimSpace(what)
	if what == "" {
		what = "resource"
	}
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func Storage(cause error) *Error {
	return &Error{Kind: KindStorage, Message: "storage error", cause: cause}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", cause: cause}
}

// KindOf devuelve el Kind del primer *Error de la cadena (internal si no hay).
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// IsAuth agrupa unauthorized y forbidden (AuthError).
func IsAuth(err error) bool {
	k := KindOf(err)
	return k == KindUnauthorized || k == KindForbidden
}

// Fields acumula errores de validación campo por campo.
type Fields map[string]string

func (f Fields) Add(name, problem string) {
	if _, exists := f[name]; exists {
		return
	}
	f[name] = problem
}

// Err devuelve nil si no hubo problemas.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return Validation("validation error", map[string]string(f))
}
