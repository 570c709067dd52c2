package pets

import (
	"net/http"
	"time"

	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/middleware"
	"pet-care-service/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, maxBody int64) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc, maxBody))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc, maxBody))
		pr.Patch("/{petID}", updatePetHandler(svc, maxBody))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// petRequest documenta el body JSON; con multipart la foto va en "photo".
type petRequest struct {
	PetName  string `json:"pet_name"`
	Breed    string `json:"breed"`
	Sex      Sex    `json:"sex" enums:"male,female,unknown"`
	Birthday string `json:"birthday"` // YYYY-MM-DD opcional
}

type petResponse struct {
	ID       string  `json:"id"`
	PetName  string  `json:"pet_name"`
	Breed    string  `json:"breed"`
	Sex      Sex     `json:"sex"`
	Birthday *string `json:"birthday"`
	PhotoURL *string `json:"photo_url"`
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} petResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota del usuario autenticado. JSON o multipart/form-data (foto en `photo`). La foto se sube antes de guardar la mascota: si la subida falla no se crea nada.
// @Tags pets
// @Accept json,mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 502 {object} web.ErrorResponse "storage error"
// @Router /pets [post]
func createPetHandler(svc *Service, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		p, err := web.ReadPayload(r, maxBody)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		birthday, _, err := p.Date("birthday")
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		pet, err := svc.Create(r.Context(), userID, CreateInput{
			Name:     p.String("pet_name"),
			Breed:    p.String("breed"),
			Sex:      p.String("sex"),
			Birthday: birthday,
			Photo:    media.PhotoFrom(p.File("photo")),
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toPetResponse(pet))
	}
}

// getPetHandler godoc
// @Summary Ver mascota
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		pet, err := svc.Get(r.Context(), chi.URLParam(r, "petID"), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toPetResponse(pet))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Actualización parcial (solo campos enviados). `birthday` vacío o null limpia la fecha. Si viene `photo` se sube antes de guardar; si falla la subida la mascota queda como estaba.
// @Tags pets
// @Accept json,mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest false "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "pet not found"
// @Failure 502 {object} web.ErrorResponse "storage error"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		p, err := web.ReadPayload(r, maxBody)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		birthday, birthdaySet, err := p.Date("birthday")
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		pet, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), userID, UpdateInput{
			Name:        p.Opt("pet_name"),
			Breed:       p.Opt("breed"),
			Sex:         p.Opt("sex"),
			Birthday:    birthday,
			BirthdaySet: birthdaySet,
			Photo:       media.PhotoFrom(p.File("photo")),
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toPetResponse(pet))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota junto con sus eventos de calendario y entradas de diario.
// @Tags pets
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), userID); err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.NoContent(w)
	}
}

func toPetResponse(p Pet) petResponse {
	var birthday *string
	if p.Birthday != nil {
		s := p.Birthday.Format(time.DateOnly)
		birthday = &s
	}
	return petResponse{
		ID:       p.ID,
		PetName:  p.Name,
		Breed:    p.Breed,
		Sex:      p.Sex,
		Birthday: birthday,
		PhotoURL: p.PhotoURL,
	}
}
