package middleware

import (
	"context"
	"net/http"
	"time"

	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const requestUserKey ctxKey = "request_user"

// requestUser lo completa WithClaims para que el log de acceso, que corre
// antes que AuthContext, conozca al usuario.
type requestUser struct {
	id string
}

// RequestLogger deja en el contexto un logger con request_id y loguea
// una línea por request al terminar. Va después de chimw.RequestID.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLog := log.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})

			ru := &requestUser{}
			ctx := context.WithValue(logger.IntoContext(r.Context(), reqLog), requestUserKey, ru)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"route":       metrics.RoutePattern(r),
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if ru.id != "" {
				fields["user_id"] = ru.id
			}
			if status >= http.StatusInternalServerError {
				reqLog.Warn("http request", fields)
				return
			}
			reqLog.Info("http request", fields)
		})
	}
}
