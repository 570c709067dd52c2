package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-care-service/internal/domain/journal"
)

type entryRepo struct {
	s *Store
}

func (r *entryRepo) Create(ctx context.Context, e journal.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("entry id required")
	}
	if _, ok := r.s.pets[e.PetID]; !ok {
		return ErrNotFound
	}
	r.s.entries[e.ID] = e
	return nil
}

func (r *entryRepo) Update(ctx context.Context, e journal.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.entries[e.ID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := r.s.pets[e.PetID]; !ok {
		return ErrNotFound
	}
	e.CreatedAt = cur.CreatedAt
	r.s.entries[e.ID] = e
	return nil
}

func (r *entryRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.entries, id)
	return nil
}

func (r *entryRepo) GetByID(ctx context.Context, id string) (journal.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.entries[id]
	if !ok {
		return journal.Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *entryRepo) List(ctx context.Context, f journal.Filter) ([]journal.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]journal.Entry, 0)
	for _, e := range r.s.entries {
		if f.PetID != "" && e.PetID != f.PetID {
			continue
		}
		if p, ok := r.s.pets[e.PetID]; !ok || p.OwnerUserID != f.OwnerUserID {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
