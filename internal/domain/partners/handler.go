package partners

import (
	"net/http"
	"time"

	"pet-care-service/internal/middleware"
	"pet-care-service/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/partners", func(pr chi.Router) {
		pr.Get("/", listPartnersHandler(svc))

		pr.Get("/watchlist", listWatchlistHandler(svc))
		pr.Post("/watchlist", addWatchlistHandler(svc))
		pr.Delete("/watchlist/{partnerID}", removeWatchlistHandler(svc))
	})
}

type partnerResponse struct {
	ID          string  `json:"id"`
	SiteName    string  `json:"site_name"`
	SiteURL     string  `json:"site_url"`
	PartnerType string  `json:"partner_type"`
	Rating      float64 `json:"rating"`
	PhotoURL    *string `json:"photo_url"`
}

type watchlistRequest struct {
	PartnerID string `json:"partner_id"`
}

type watchlistResponse struct {
	PartnerID string    `json:"partner_id"`
	AddedAt   time.Time `json:"added_at"`
}

// listPartnersHandler godoc
// @Summary Catálogo de partners
// @Description Catálogo público, no requiere autenticación.
// @Tags partners
// @Produce json
// @Success 200 {array} partnerResponse
// @Router /partners [get]
func listPartnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		out := make([]partnerResponse, 0, len(items))
		for _, p := range items {
			out = append(out, partnerResponse{
				ID:          p.ID,
				SiteName:    p.SiteName,
				SiteURL:     p.SiteURL,
				PartnerType: p.PartnerType,
				Rating:      p.Rating,
				PhotoURL:    p.PhotoURL,
			})
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// listWatchlistHandler godoc
// @Summary Mi watchlist
// @Tags partners
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} watchlistResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Router /partners/watchlist [get]
func listWatchlistHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		items, err := svc.Watchlist(r.Context(), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		out := make([]watchlistResponse, 0, len(items))
		for _, it := range items {
			out = append(out, watchlistResponse{PartnerID: it.PartnerID, AddedAt: it.CreatedAt})
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// addWatchlistHandler godoc
// @Summary Agregar partner a mi watchlist
// @Description Un partner aparece una sola vez por usuario; repetirlo es 400.
// @Tags partners
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body watchlistRequest true "Partner"
// @Success 201 {object} watchlistResponse
// @Failure 400 {object} web.ErrorResponse "validation error / ya estaba en la watchlist"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 404 {object} web.ErrorResponse "partner not found"
// @Router /partners/watchlist [post]
func addWatchlistHandler(svc *Service) http.HandlerFunc {
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

		item, err := svc.AddToWatchlist(r.Context(), userID, p.String("partner_id"))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, watchlistResponse{PartnerID: item.PartnerID, AddedAt: item.CreatedAt})
	}
}

// removeWatchlistHandler godoc
// @Summary Quitar partner de mi watchlist
// @Tags partners
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param partnerID path string true "ID del partner"
// @Success 204
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 404 {object} web.ErrorResponse "watchlist entry not found"
// @Router /partners/watchlist/{partnerID} [delete]
func removeWatchlistHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		if err := svc.RemoveFromWatchlist(r.Context(), userID, chi.URLParam(r, "partnerID")); err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.NoContent(w)
	}
}
