package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-care-service/internal/domain/calendar"
)

type eventRepo struct {
	s *Store
}

func (r *eventRepo) Create(ctx context.Context, e calendar.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	if _, ok := r.s.pets[e.PetID]; !ok {
		return ErrNotFound
	}
	r.s.events[e.ID] = e
	return nil
}

func (r *eventRepo) Update(ctx context.Context, e calendar.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[e.ID]; !ok {
		return ErrNotFound
	}
	if _, ok := r.s.pets[e.PetID]; !ok {
		return ErrNotFound
	}
	r.s.events[e.ID] = e
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.events, id)
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (calendar.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return calendar.Event{}, ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) List(ctx context.Context, f calendar.Filter) ([]calendar.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]calendar.Event, 0)
	for _, e := range r.s.events {
		if f.PetID != "" && e.PetID != f.PetID {
			continue
		}
		if p, ok := r.s.pets[e.PetID]; !ok || p.OwnerUserID != f.OwnerUserID {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		// sin hora va primero, como NULLS FIRST
		at, bt := timeKey(a.StartTime), timeKey(b.StartTime)
		if at != bt {
			return at < bt
		}
		return a.ID < b.ID
	})
	return out, nil
}

func timeKey(t *string) string {
	if t == nil {
		return ""
	}
	return *t
}
