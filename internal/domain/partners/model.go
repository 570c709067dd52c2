package partners

import "time"

// Partner es un sitio del catálogo (veterinarias, pet shops, refugios...).
// Solo lectura para los usuarios; se carga por seed.
type Partner struct {
	ID          string  `yaml:"id"`
	SiteName    string  `yaml:"site_name"`
	SiteURL     string  `yaml:"site_url"`
	PartnerType string  `yaml:"partner_type"`
	Rating      float64 `yaml:"rating"`
	PhotoURL    *string `yaml:"photo_url"`
}

// WatchlistItem une usuario y partner (uno por par).
type WatchlistItem struct {
	UserID    string
	PartnerID string
	CreatedAt time.Time
}
