// Package web junta lo que todos los handlers repiten: respuesta JSON,
// traducción de apperr a status HTTP y lectura de payloads JSON o multipart.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/logger"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// StatusOf mapea el Kind a HTTP.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindStorage:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError responde con el error en JSON. Los internos y de storage se
// loguean con el logger del request y nunca exponen la causa.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Internal(err)
	}

	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"status": status,
			"kind":   string(ae.Kind),
			"err":    err,
		})
	}

	body := ErrorResponse{Error: ae.Message, Fields: ae.Fields}
	switch ae.Kind {
	case apperr.KindInternal:
		body = ErrorResponse{Error: "internal error"}
	case apperr.KindStorage:
		body = ErrorResponse{Error: "storage error"}
	}
	if body.Error == "" {
		body.Error = string(ae.Kind)
	}
	WriteJSON(w, status, body)
}
