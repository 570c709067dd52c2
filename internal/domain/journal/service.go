package journal

import (
	"context"
	"strings"
	"time"

	"pet-care-service/internal/domain/ownership"
	"pet-care-service/internal/platform/apperr"
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
	now    func() time.Time
}

func NewService(r Repository, pets ownership.Resolver) *Service {
	return &Service{
		repo:   r,
		pets:   pets,
		owners: ownership.Via("journal entry", r.GetByID, func(e Entry) string { return e.PetID }, pets),
		now:    time.Now,
	}
}

type CreateInput struct {
	PetID       string
	Type        string
	Title       string
	Description string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Entry, error) {
	if strings.TrimSpace(userID) == "" {
		return Entry{}, apperr.Unauthorized()
	}

	e := Entry{
		ID:          uuid.NewString(),
		PetID:       strings.TrimSpace(in.PetID),
		Type:        strings.TrimSpace(in.Type),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
	}
	fields := apperr.Fields{}
	if e.PetID == "" {
		fields.Add("pet_id", "required")
	}
	validate(fields, e)
	if err := fields.Err(); err != nil {
		return Entry{}, err
	}

	if err := ownership.Authorize(ctx, s.pets, e.PetID, userID); err != nil {
		return Entry{}, err
	}

	e.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, repo.AsAppErr("pet", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, userID, petID string) ([]Entry, error) {
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

func (s *Service) Get(ctx context.Context, id, userID string) (Entry, error) {
	if err := ownership.Authorize(ctx, s.owners, id, userID); err != nil {
		return Entry{}, err
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Entry{}, repo.AsAppErr("journal entry", err)
	}
	return e, nil
}

type UpdateInput struct {
	PetID       *string
	Type        *string
	Title       *string
	Description *string
}

func (s *Service) Update(ctx context.Context, id, userID string, in UpdateInput) (Entry, error) {
	e, err := s.Get(ctx, id, userID)
	if err != nil {
		return Entry{}, err
	}

	if in.Type != nil {
		e.Type = strings.TrimSpace(*in.Type)
	}
	if in.Title != nil {
		e.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}
	fields := apperr.Fields{}
	var movedTo string
	if in.PetID != nil {
		if movedTo = strings.TrimSpace(*in.PetID); movedTo == "" {
			fields.Add("pet_id", "may not be blank")
		}
	}
	validate(fields, e)
	if err := fields.Err(); err != nil {
		return Entry{}, err
	}

	if movedTo != "" && movedTo != e.PetID {
		if err := ownership.Authorize(ctx, s.pets, movedTo, userID); err != nil {
			return Entry{}, err
		}
		e.PetID = movedTo
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return Entry{}, repo.AsAppErr("journal entry", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if err := ownership.Authorize(ctx, s.owners, id, userID); err != nil {
		return err
	}
	return repo.AsAppErr("journal entry", s.repo.Delete(ctx, id))
}

func validate(fields apperr.Fields, e Entry) {
	switch {
	case e.Title == "":
		fields.Add("entry_title", "required")
	case len(e.Title) > maxTitleLen:
		fields.Add("entry_title", "too long")
	}
	if len(e.Type) > maxTypeLen {
		fields.Add("entry_type", "too long")
	}
}
