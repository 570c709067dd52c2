package calendar

import (
	"context"
	"strings"
	"time"

	"pet-care-service/internal/domain/ownership"
	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/ports/repo"

	"github.com/google/uuid"
)

const (
	maxTypeLen  = 50
	maxTitleLen = 200
)

type Service struct {
	repo   Repository
	pets   ownership.Resolver
	owners ownership.Resolver
	log    logger.Logger
	now    func() time.Time
}

// NewService recibe el resolver de mascotas (pet -> usuario) para validar
// a qué mascota se asigna cada evento.
func NewService(r Repository, pets ownership.Resolver, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   r,
		pets:   pets,
		owners: ownership.Via("calendar event", r.GetByID, func(e Event) string { return e.PetID }, pets),
		log:    log,
		now:    time.Now,
	}
}

type CreateInput struct {
	PetID       string
	Type        string
	Title       string
	StartDate   *time.Time
	StartTime   string
	Description string
	Completed   bool
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Event, error) {
	if strings.TrimSpace(userID) == "" {
		return Event{}, apperr.Unauthorized()
	}

	fields := apperr.Fields{}
	petID := strings.TrimSpace(in.PetID)
	if petID == "" {
		fields.Add("pet_id", "required")
	}
	e := Event{
		ID:          uuid.NewString(),
		PetID:       petID,
		Type:        strings.TrimSpace(in.Type),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Completed:   in.Completed,
	}
	if in.StartDate == nil {
		fields.Add("start_date", "required")
	} else {
		e.StartDate = *in.StartDate
	}
	if st, err := ParseTime(in.StartTime); err != nil {
		fields.Add("start_time", "must be HH:MM or HH:MM:SS")
	} else {
		e.StartTime = st
	}
	checkText(fields, e)
	if err := fields.Err(); err != nil {
		return Event{}, err
	}

	if err := ownership.Authorize(ctx, s.pets, petID, userID); err != nil {
		return Event{}, err
	}

	now := s.now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, repo.AsAppErr("pet", err)
	}
	return e, nil
}

// List devuelve los eventos de todas las mascotas del usuario, o de una sola
// si petID no es vacío (debe ser suya).
func (s *Service) List(ctx context.Context, userID, petID string) ([]Event, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Unauthorized()
	}
	petID = strings.TrimSpace(petID)
	if petID != "" {
		if err := ownership.Authorize(ctx, s.pets, petID, userID); err != nil {
			return nil, err
		}
	}
	items, err := s.repo.List(ctx, Filter{OwnerUserID: userID, PetID: petID})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id, userID string) (Event, error) {
	if err := ownership.Authorize(ctx, s.owners, id, userID); err != nil {
		return Event{}, err
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Event{}, repo.AsAppErr("calendar event", err)
	}
	return e, nil
}

// UpdateInput: nil = no tocar. StartTime "" limpia la hora.
type UpdateInput struct {
	PetID       *string
	Type        *string
	Title       *string
	StartDate   *time.Time
	StartTime   *string
	Description *string
	Completed   *bool
}

func (s *Service) Update(ctx context.Context, id, userID string, in UpdateInput) (Event, error) {
	e, err := s.Get(ctx, id, userID)
	if err != nil {
		return Event{}, err
	}

	fields := apperr.Fields{}
	if in.Type != nil {
		e.Type = strings.TrimSpace(*in.Type)
	}
	if in.Title != nil {
		e.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.StartTime != nil {
		st, err := ParseTime(*in.StartTime)
		if err != nil {
			fields.Add("start_time", "must be HH:MM or HH:MM:SS")
		}
		e.StartTime = st
	}
	if in.Completed != nil {
		e.Completed = *in.Completed
	}
	var movedTo string
	if in.PetID != nil {
		movedTo = strings.TrimSpace(*in.PetID)
		if movedTo == "" {
			fields.Add("pet_id", "may not be blank")
		}
	}
	checkText(fields, e)
	if err := fields.Err(); err != nil {
		return Event{}, err
	}

	// Mover el evento a otra mascota solo si también es del usuario.
	if movedTo != "" && movedTo != e.PetID {
		if err := ownership.Authorize(ctx, s.pets, movedTo, userID); err != nil {
			return Event{}, err
		}
		e.PetID = movedTo
	}

	e.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, repo.AsAppErr("calendar event", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if err := ownership.Authorize(ctx, s.owners, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return repo.AsAppErr("calendar event", err)
	}
	return nil
}

// ParseTime acepta HH:MM o HH:MM:SS y normaliza a HH:MM:SS. "" => nil.
func ParseTime(raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.TimeOnly, "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			s := t.Format(time.TimeOnly)
			return &s, nil
		}
	}
	return nil, apperr.Field("start_time", "must be HH:MM or HH:MM:SS")
}

func checkText(fields apperr.Fields, e Event) {
	switch {
	case e.Title == "":
		fields.Add("event_title", "required")
	case len(e.Title) > maxTitleLen:
		fields.Add("event_title", "too long")
	}
	if len(e.Type) > maxTypeLen {
		fields.Add("event_type", "too long")
	}
}
