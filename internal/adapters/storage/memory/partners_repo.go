package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pet-care-service/internal/domain/partners"
	"pet-care-service/internal/ports/repo"
)

type partnerRepo struct {
	s *Store
}

func (r *partnerRepo) List(ctx context.Context) ([]partners.Partner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]partners.Partner, 0, len(r.s.partners))
	for _, p := range r.s.partners {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SiteName == out[j].SiteName {
			return out[i].ID < out[j].ID
		}
		return out[i].SiteName < out[j].SiteName
	})
	return out, nil
}

func (r *partnerRepo) GetByID(ctx context.Context, id string) (partners.Partner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.partners[id]
	if !ok {
		return partners.Partner{}, ErrNotFound
	}
	return p, nil
}

func (r *partnerRepo) Upsert(ctx context.Context, p partners.Partner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("partner id required")
	}
	r.s.partners[p.ID] = p
	return nil
}

type watchlistRepo struct {
	s *Store
}

func (r *watchlistRepo) ListByUser(ctx context.Context, userID string) ([]partners.WatchlistItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]partners.WatchlistItem, 0)
	for partnerID, at := range r.s.watch[userID] {
		out = append(out, partners.WatchlistItem{UserID: userID, PartnerID: partnerID, CreatedAt: at})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].PartnerID < out[j].PartnerID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *watchlistRepo) Add(ctx context.Context, item partners.WatchlistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.partners[item.PartnerID]; !ok {
		return ErrNotFound
	}
	byUser := r.s.watch[item.UserID]
	if byUser == nil {
		byUser = make(map[string]time.Time)
		r.s.watch[item.UserID] = byUser
	}
	if _, exists := byUser[item.PartnerID]; exists {
		return repo.ErrDuplicate
	}
	byUser[item.PartnerID] = item.CreatedAt
	return nil
}

func (r *watchlistRepo) Remove(ctx context.Context, userID, partnerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byUser := r.s.watch[userID]
	if _, ok := byUser[partnerID]; !ok {
		return ErrNotFound
	}
	delete(byUser, partnerID)
	return nil
}
