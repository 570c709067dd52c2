package pets

import (
	"context"
	"strings"
	"time"

	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/domain/ownership"
	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/ports/repo"

	"github.com/google/uuid"
)

const (
	maxNameLen  = 100
	maxBreedLen = 100
)

type Service struct {
	repo   Repository
	photos *media.Uploader
	log    logger.Logger
	owners ownership.Resolver
	now    func() time.Time
}

func NewService(r Repository, photos *media.Uploader, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		repo:   r,
		photos: photos,
		log:    log,
		now:    time.Now,
	}
	s.owners = ownership.Direct("pet", r.GetByID, func(p Pet) string { return p.OwnerUserID })
	return s
}

// Owners resuelve pet -> usuario dueño. Lo usan calendar y journal.
func (s *Service) Owners() ownership.Resolver { return s.owners }

type CreateInput struct {
	Name     string
	Breed    string
	Sex      string
	Birthday *time.Time
	Photo    *media.Photo
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, apperr.Unauthorized()
	}

	fields := apperr.Fields{}
	name := strings.TrimSpace(in.Name)
	checkName(fields, name)
	breed := strings.TrimSpace(in.Breed)
	if len(breed) > maxBreedLen {
		fields.Add("breed", "too long")
	}
	sex, ok := ParseSex(strings.ToLower(strings.TrimSpace(in.Sex)))
	if !ok {
		fields.Add("sex", "must be one of male, female, unknown")
	}
	if err := fields.Err(); err != nil {
		return Pet{}, err
	}
	if err := s.photos.Validate(in.Photo); err != nil {
		return Pet{}, err
	}

	now := s.now().UTC()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        name,
		Breed:       breed,
		Sex:         sex,
		Birthday:    in.Birthday,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var up media.Uploaded
	if in.Photo != nil {
		var err error
		up, err = s.photos.Upload(ctx, media.PetPrefix(p.ID), in.Photo)
		if err != nil {
			return Pet{}, err
		}
		p.PhotoURL = &up.URL
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.photos.Discard(ctx, up)
		return Pet{}, apperr.Internal(err)
	}
	return p, nil
}

// Get exige que userID sea el dueño.
func (s *Service) Get(ctx context.Context, id, userID string) (Pet, error) {
	if err := ownership.Authorize(ctx, s.owners, id, userID); err != nil {
		return Pet{}, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, repo.AsAppErr("pet", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Pet, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Unauthorized()
	}
	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// UpdateInput: punteros nil = no tocar. BirthdaySet distingue "no enviado"
// de "enviado vacío/null" (limpia la fecha).
type UpdateInput struct {
	Name        *string
	Breed       *string
	Sex         *string
	Birthday    *time.Time
	BirthdaySet bool
	Photo       *media.Photo
}

// Update aplica cambios parciales. Si viene foto se sube primero; si la subida
// falla el registro queda intacto.
func (s *Service) Update(ctx context.Context, id, userID string, in UpdateInput) (Pet, error) {
	p, err := s.Get(ctx, id, userID)
	if err != nil {
		return Pet{}, err
	}

	fields := apperr.Fields{}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
		checkName(fields, p.Name)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
		if len(p.Breed) > maxBreedLen {
			fields.Add("breed", "too long")
		}
	}
	if in.Sex != nil {
		sex, ok := ParseSex(strings.ToLower(strings.TrimSpace(*in.Sex)))
		if !ok {
			fields.Add("sex", "must be one of male, female, unknown")
		}
		p.Sex = sex
	}
	if in.BirthdaySet {
		p.Birthday = in.Birthday
	}
	if err := fields.Err(); err != nil {
		return Pet{}, err
	}
	if err := s.photos.Validate(in.Photo); err != nil {
		return Pet{}, err
	}

	var up media.Uploaded
	if in.Photo != nil {
		up, err = s.photos.Upload(ctx, media.PetPrefix(p.ID), in.Photo)
		if err != nil {
			return Pet{}, err
		}
		p.PhotoURL = &up.URL
	}

	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		s.photos.Discard(ctx, up)
		return Pet{}, repo.AsAppErr("pet", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if err := ownership.Authorize(ctx, s.owners, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return repo.AsAppErr("pet", err)
	}
	s.log.Info("pet deleted", map[string]any{"pet_id": id, "user_id": userID})
	return nil
}

func checkName(fields apperr.Fields, name string) {
	switch {
	case name == "":
		fields.Add("pet_name", "required")
	case len(name) > maxNameLen:
		fields.Add("pet_name", "too long")
	}
}
