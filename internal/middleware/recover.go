package middleware

import (
	"net/http"
	"runtime/debug"

	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/platform/web"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con el logger del
// request y responde el mismo JSON de error que el resto de la API.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				if rec != nil {
					panic(rec)
				}
				return
			}
			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"panic": rec,
				"stack": string(debug.Stack()),
			})
			web.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}()
		next.ServeHTTP(w, r)
	})
}
