package calendar

import (
	"net/http"
	"time"

	"pet-care-service/internal/middleware"
	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calendar", func(cr chi.Router) {
		cr.Get("/", listEventsHandler(svc))
		cr.Post("/", createEventHandler(svc))

		cr.Get("/{eventID}", getEventHandler(svc))
		cr.Put("/{eventID}", updateEventHandler(svc))
		cr.Patch("/{eventID}", updateEventHandler(svc))
		cr.Delete("/{eventID}", deleteEventHandler(svc))
	})
}

// eventRequest es el body para crear/editar un evento. "pet" se acepta como alias de "pet_id".
type eventRequest struct {
	PetID       string `json:"pet_id"`
	EventType   string `json:"event_type"`
	EventTitle  string `json:"event_title"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	StartTime   string `json:"start_time"` // HH:MM[:SS] opcional
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type eventResponse struct {
	ID          string  `json:"id"`
	PetID       string  `json:"pet_id"`
	EventType   string  `json:"event_type"`
	EventTitle  string  `json:"event_title"`
	StartDate   string  `json:"start_date"`
	StartTime   *string `json:"start_time"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
}

// listEventsHandler godoc
// @Summary Listar eventos de calendario
// @Description Lista los eventos de todas las mascotas del usuario, ordenados por fecha y hora. Con `pet_id` filtra por una mascota (debe ser del usuario).
// @Tags calendar
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param pet_id query string false "Filtrar por mascota"
// @Success 200 {array} eventResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "pet not found"
// @Router /calendar [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), userID, r.URL.Query().Get("pet_id"))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createEventHandler godoc
// @Summary Crear evento de calendario
// @Description Crea un evento para una mascota del usuario.
// @Tags calendar
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body eventRequest true "Datos del evento"
// @Success 201 {object} eventResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "la mascota no es del usuario"
// @Failure 404 {object} web.ErrorResponse "pet not found"
// @Router /calendar [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		p, err := web.ReadPayload(r, 0)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		startDate, _, err := p.Date("start_date")
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		completed, err := p.Bool("completed")
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		e, err := svc.Create(r.Context(), userID, CreateInput{
			PetID:       petIDFrom(p),
			Type:        p.String("event_type"),
			Title:       p.String("event_title"),
			StartDate:   startDate,
			StartTime:   p.String("start_time"),
			Description: p.String("description"),
			Completed:   completed != nil && *completed,
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// getEventHandler godoc
// @Summary Ver evento de calendario
// @Tags calendar
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "calendar event not found"
// @Router /calendar/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		e, err := svc.Get(r.Context(), chi.URLParam(r, "eventID"), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toEventResponse(e))
	}
}

// updateEventHandler godoc
// @Summary Actualizar evento de calendario
// @Description Actualización parcial. Cambiar `pet_id` solo se permite hacia otra mascota del mismo usuario.
// @Tags calendar
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Param payload body eventRequest false "Campos a modificar"
// @Success 200 {object} eventResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "calendar event not found"
// @Router /calendar/{eventID} [put]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		p, err := web.ReadPayload(r, 0)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		in := UpdateInput{
			Type:        p.Opt("event_type"),
			Title:       p.Opt("event_title"),
			StartTime:   p.Opt("start_time"),
			Description: p.Opt("description"),
		}
		if p.Has("pet_id") || p.Has("pet") {
			id := petIDFrom(p)
			in.PetID = &id
		}
		startDate, present, err := p.Date("start_date")
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		if present && startDate == nil {
			web.WriteError(w, r, apperr.Field("start_date", "may not be blank"))
			return
		}
		in.StartDate = startDate
		if in.Completed, err = p.Bool("completed"); err != nil {
			web.WriteError(w, r, err)
			return
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "eventID"), userID, in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toEventResponse(e))
	}
}

// deleteEventHandler godoc
// @Summary Borrar evento de calendario
// @Tags calendar
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "calendar event not found"
// @Router /calendar/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "eventID"), userID); err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.NoContent(w)
	}
}

func petIDFrom(p web.Payload) string {
	if p.Has("pet_id") {
		return p.String("pet_id")
	}
	return p.String("pet")
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		PetID:       e.PetID,
		EventType:   e.Type,
		EventTitle:  e.Title,
		StartDate:   e.StartDate.Format(time.DateOnly),
		StartTime:   e.StartTime,
		Description: e.Description,
		Completed:   e.Completed,
	}
}
