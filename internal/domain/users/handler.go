package users

import (
	"net/http"
	"time"

	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/middleware"
	"pet-care-service/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, maxBody int64) {
	r.Post("/signup", signUpHandler(svc, maxBody))
	r.Post("/signin", signInHandler(svc))
	r.Post("/token/refresh", refreshHandler(svc))

	r.Route("/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Put("/", updateProfileHandler(svc, maxBody))
		pr.Patch("/", updateProfileHandler(svc, maxBody))
	})
}

// signUpRequest documenta el body JSON; con multipart se agrega el archivo "photo".
type signUpRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// userResponse es la representación pública del usuario (sin password).
type userResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	PhotoURL *string `json:"photo_url"`
}

type tokenPairResponse struct {
	Access           string    `json:"access"`
	Refresh          string    `json:"refresh"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type accessResponse struct {
	Access string `json:"access"`
}

// signUpHandler godoc
// @Summary Registrar usuario
// @Description Crea una cuenta nueva. Acepta JSON o multipart/form-data; en multipart se puede enviar la foto de perfil en el campo `photo`. El email es único (sin distinguir mayúsculas).
// @Tags auth
// @Accept json,mpfd
// @Produce json
// @Param payload body signUpRequest true "Datos del usuario"
// @Success 201 {object} userResponse
// @Failure 400 {object} web.ErrorResponse "validation error (email repetido, campos faltantes, imagen inválida)"
// @Failure 502 {object} web.ErrorResponse "storage error"
// @Router /signup [post]
func signUpHandler(svc *Service, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := web.ReadPayload(r, maxBody)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		u, err := svc.SignUp(r.Context(), SignUpInput{
			FullName: p.String("full_name"),
			Email:    p.String("email"),
			Password: p.String("password"),
			Photo:    media.PhotoFrom(p.File("photo")),
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// signInHandler godoc
// @Summary Iniciar sesión
// @Description Valida email y password y devuelve un par de tokens (access + refresh).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body signInRequest true "Credenciales"
// @Success 200 {object} tokenPairResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Router /signin [post]
func signInHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := web.ReadPayload(r, 0)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		pair, err := svc.SignIn(r.Context(), p.String("email"), p.String("password"))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, tokenPairResponse{
			Access:           pair.Access,
			Refresh:          pair.Refresh,
			AccessExpiresAt:  pair.AccessExpiresAt,
			RefreshExpiresAt: pair.RefreshExpiresAt,
		})
	}
}

// refreshHandler godoc
// @Summary Renovar access token
// @Description Recibe un refresh token vigente y devuelve un access token nuevo.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body refreshRequest true "Refresh token"
// @Success 200 {object} accessResponse
// @Failure 400 {object} web.ErrorResponse "refresh requerido"
// @Failure 401 {object} web.ErrorResponse "token inválido o vencido"
// @Router /token/refresh [post]
func refreshHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := web.ReadPayload(r, 0)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		access, err := svc.Refresh(r.Context(), p.String("refresh"))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, accessResponse{Access: access})
	}
}

// getProfileHandler godoc
// @Summary Ver mi perfil
// @Tags profile
// @Produce json
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} userResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		u, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// updateProfileHandler godoc
// @Summary Actualizar mi perfil
// @Description Actualización parcial: solo se modifican los campos enviados. Password vacía se ignora. Foto por multipart en `photo`.
// @Tags profile
// @Accept json,mpfd
// @Produce json
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body signUpRequest false "Campos a modificar"
// @Success 200 {object} userResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 502 {object} web.ErrorResponse "storage error"
// @Router /profile [put]
func updateProfileHandler(svc *Service, maxBody int64) http.HandlerFunc {
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

		u, err := svc.UpdateProfile(r.Context(), userID, UpdateProfileInput{
			FullName: p.Opt("full_name"),
			Email:    p.Opt("email"),
			Password: p.Opt("password"),
			Photo:    media.PhotoFrom(p.File("photo")),
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
	}
}
