package journal

import (
	"net/http"
	"time"

	"pet-care-service/internal/middleware"
	"pet-care-service/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/journal", func(jr chi.Router) {
		jr.Get("/", listEntriesHandler(svc))
		jr.Post("/", createEntryHandler(svc))

		jr.Get("/{entryID}", getEntryHandler(svc))
		jr.Put("/{entryID}", updateEntryHandler(svc))
		jr.Patch("/{entryID}", updateEntryHandler(svc))
		jr.Delete("/{entryID}", deleteEntryHandler(svc))
	})
}

// entryRequest: created_at no se acepta, lo fija el servidor.
type entryRequest struct {
	PetID       string `json:"pet_id"`
	EntryType   string `json:"entry_type"`
	EntryTitle  string `json:"entry_title"`
	Description string `json:"description"`
}

type entryResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id"`
	EntryType   string    `json:"entry_type"`
	EntryTitle  string    `json:"entry_title"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
}

// listEntriesHandler godoc
// @Summary Listar diario
// @Description Entradas de todas las mascotas del usuario, más recientes primero. Con `pet_id` filtra por una mascota.
// @Tags journal
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param pet_id query string false "Filtrar por mascota"
// @Success 200 {array} entryResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Router /journal [get]
func listEntriesHandler(svc *Service) http.HandlerFunc {
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

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createEntryHandler godoc
// @Summary Crear entrada de diario
// @Tags journal
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body entryRequest true "Datos de la entrada"
// @Success 201 {object} entryResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "pet not found"
// @Router /journal [post]
func createEntryHandler(svc *Service) http.HandlerFunc {
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

		e, err := svc.Create(r.Context(), userID, CreateInput{
			PetID:       petIDFrom(p),
			Type:        p.String("entry_type"),
			Title:       p.String("entry_title"),
			Description: p.String("description"),
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

// getEntryHandler godoc
// @Summary Ver entrada de diario
// @Tags journal
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param entryID path string true "ID de la entrada"
// @Success 200 {object} entryResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "journal entry not found"
// @Router /journal/{entryID} [get]
func getEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		e, err := svc.Get(r.Context(), chi.URLParam(r, "entryID"), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toEntryResponse(e))
	}
}

// updateEntryHandler godoc
// @Summary Actualizar entrada de diario
// @Description Actualización parcial; created_at es inmutable.
// @Tags journal
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param entryID path string true "ID de la entrada"
// @Param payload body entryRequest false "Campos a modificar"
// @Success 200 {object} entryResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "journal entry not found"
// @Router /journal/{entryID} [put]
func updateEntryHandler(svc *Service) http.HandlerFunc {
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
			Type:        p.Opt("entry_type"),
			Title:       p.Opt("entry_title"),
			Description: p.Opt("description"),
		}
		if p.Has("pet_id") || p.Has("pet") {
			id := petIDFrom(p)
			in.PetID = &id
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "entryID"), userID, in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toEntryResponse(e))
	}
}

// deleteEntryHandler godoc
// @Summary Borrar entrada de diario
// @Tags journal
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param entryID path string true "ID de la entrada"
// @Success 204
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "journal entry not found"
// @Router /journal/{entryID} [delete]
func deleteEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "entryID"), userID); err != nil {
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

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		PetID:       e.PetID,
		EntryType:   e.Type,
		EntryTitle:  e.Title,
		CreatedAt:   e.CreatedAt,
		Description: e.Description,
	}
}
