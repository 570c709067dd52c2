package partners

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/ports/repo"

	"github.com/google/uuid"
)

type Service struct {
	repo      Repository
	watchlist WatchlistRepository
	log       logger.Logger
	now       func() time.Time
}

func NewService(r Repository, w WatchlistRepository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:      r,
		watchlist: w,
		log:       log,
		now:       time.Now,
	}
}

// List es público: no requiere usuario.
func (s *Service) List(ctx context.Context) ([]Partner, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *Service) Watchlist(ctx context.Context, userID string) ([]WatchlistItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Unauthorized()
	}
	items, err := s.watchlist.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *Service) AddToWatchlist(ctx context.Context, userID, partnerID string) (WatchlistItem, error) {
	if strings.TrimSpace(userID) == "" {
		return WatchlistItem{}, apperr.Unauthorized()
	}
	partnerID = strings.TrimSpace(partnerID)
	if partnerID == "" {
		return WatchlistItem{}, apperr.Field("partner_id", "required")
	}
	if _, err := s.repo.GetByID(ctx, partnerID); err != nil {
		return WatchlistItem{}, repo.AsAppErr("partner", err)
	}

	item := WatchlistItem{UserID: userID, PartnerID: partnerID, CreatedAt: s.now().UTC()}
	if err := s.watchlist.Add(ctx, item); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return WatchlistItem{}, apperr.Field("partner_id", "partner already in watchlist")
		}
		return WatchlistItem{}, repo.AsAppErr("partner", err)
	}
	return item, nil
}

func (s *Service) RemoveFromWatchlist(ctx context.Context, userID, partnerID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.Unauthorized()
	}
	return repo.AsAppErr("watchlist entry", s.watchlist.Remove(ctx, userID, strings.TrimSpace(partnerID)))
}

// Seed carga el catálogo. Sin id, el id se deriva de site_url (uuid v5), así
// correr el seed dos veces no duplica partners.
func (s *Service) Seed(ctx context.Context, items []Partner) (int, error) {
	n := 0
	for i, p := range items {
		p.SiteName = strings.TrimSpace(p.SiteName)
		p.SiteURL = strings.TrimSpace(p.SiteURL)
		if p.SiteName == "" || p.SiteURL == "" {
			return n, apperr.Validation("invalid partner seed", map[string]string{
				"partners": "entry " + strconv.Itoa(i) + " needs site_name and site_url",
			})
		}
		if u, err := url.Parse(p.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
			return n, apperr.Validation("invalid partner seed", map[string]string{
				"partners": "entry " + strconv.Itoa(i) + " has an invalid site_url",
			})
		}
		if p.Rating < 0 || p.Rating > 5 {
			return n, apperr.Validation("invalid partner seed", map[string]string{
				"partners": "entry " + strconv.Itoa(i) + " rating must be between 0 and 5",
			})
		}
		if strings.TrimSpace(p.ID) == "" {
			p.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(p.SiteURL)).String()
		}
		if err := s.repo.Upsert(ctx, p); err != nil {
			return n, apperr.Internal(err)
		}
		n++
	}
	s.log.Info("partners seeded", map[string]any{"count": n})
	return n, nil
}
