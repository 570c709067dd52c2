package users

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/ports/auth"
	"pet-care-service/internal/ports/repo"

	"github.com/google/uuid"
)

const (
	maxNameLen  = 255
	maxEmailLen = 254

	// bcrypt no acepta más de 72 bytes.
	maxPasswordLen = 72
)

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
	photos *media.Uploader
	log    logger.Logger
	now    func() time.Time
}

func NewService(r Repository, hasher auth.PasswordHasher, tokens auth.TokenIssuer, photos *media.Uploader, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   r,
		hasher: hasher,
		tokens: tokens,
		photos: photos,
		log:    log,
		now:    time.Now,
	}
}

type SignUpInput struct {
	FullName string
	Email    string
	Password string
	Photo    *media.Photo
}

// SignUp crea la cuenta. Si viene foto se sube antes del insert, así el
// usuario se persiste una sola vez y ya con photo_url.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (User, error) {
	fields := apperr.Fields{}
	name := strings.TrimSpace(in.FullName)
	switch {
	case name == "":
		fields.Add("full_name", "required")
	case len(name) > maxNameLen:
		fields.Add("full_name", "too long")
	}
	email, problem := normalizeEmail(in.Email)
	if problem != "" {
		fields.Add("email", problem)
	}
	switch {
	case in.Password == "":
		fields.Add("password", "required")
	case len(in.Password) > maxPasswordLen:
		fields.Add("password", "too long")
	}
	if err := s.photos.Validate(in.Photo); err != nil {
		return User{}, err
	}
	if err := fields.Err(); err != nil {
		return User{}, err
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, errEmailTaken()
	} else if !errors.Is(err, repo.ErrNotFound) {
		return User{}, apperr.Internal(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, apperr.Internal(err)
	}

	now := s.now().UTC()
	u := User{
		ID:           uuid.NewString(),
		FullName:     name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var up media.Uploaded
	if in.Photo != nil {
		up, err = s.photos.Upload(ctx, media.UserPrefix(u.ID), in.Photo)
		if err != nil {
			return User{}, err
		}
		u.PhotoURL = &up.URL
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.photos.Discard(ctx, up)
		if errors.Is(err, repo.ErrDuplicate) {
			return User{}, errEmailTaken()
		}
		return User{}, apperr.Internal(err)
	}

	s.log.Info("user signed up", map[string]any{"user_id": u.ID})
	return u, nil
}

// SignIn no distingue email desconocido de password incorrecta.
func (s *Service) SignIn(ctx context.Context, email, password string) (auth.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return auth.TokenPair{}, apperr.Unauthorized()
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return auth.TokenPair{}, apperr.Unauthorized()
		}
		return auth.TokenPair{}, apperr.Internal(err)
	}
	if !s.hasher.Compare(u.PasswordHash, password) {
		return auth.TokenPair{}, apperr.Unauthorized()
	}

	pair, err := s.tokens.Issue(ctx, auth.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		return auth.TokenPair{}, apperr.Internal(err)
	}
	return pair, nil
}

// Refresh devuelve un access token nuevo a partir de un refresh token válido.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", apperr.Field("refresh", "required")
	}
	access, err := s.tokens.Refresh(ctx, strings.TrimSpace(refreshToken))
	if err != nil {
		s.log.Debug("refresh rejected", map[string]any{"err": err})
		return "", apperr.Unauthorized()
	}
	return access, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, apperr.Unauthorized()
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, repo.AsAppErr("user", err)
	}
	return u, nil
}

// UpdateProfileInput: nil = no tocar.
type UpdateProfileInput struct {
	FullName *string
	Email    *string
	Password *string
	Photo    *media.Photo
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return User{}, err
	}

	fields := apperr.Fields{}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		switch {
		case name == "":
			fields.Add("full_name", "may not be blank")
		case len(name) > maxNameLen:
			fields.Add("full_name", "too long")
		}
		u.FullName = name
	}
	if in.Email != nil {
		email, problem := normalizeEmail(*in.Email)
		if problem != "" {
			fields.Add("email", problem)
		}
		if problem == "" && email != u.Email {
			other, err := s.repo.GetByEmail(ctx, email)
			switch {
			case err == nil && other.ID != u.ID:
				return User{}, errEmailTaken()
			case err != nil && !errors.Is(err, repo.ErrNotFound):
				return User{}, apperr.Internal(err)
			}
		}
		u.Email = email
	}
	if in.Password != nil && len(*in.Password) > maxPasswordLen {
		fields.Add("password", "too long")
	}
	if err := s.photos.Validate(in.Photo); err != nil {
		return User{}, err
	}
	if err := fields.Err(); err != nil {
		return User{}, err
	}

	// Password vacía se ignora (el form de perfil la manda en blanco).
	if in.Password != nil && *in.Password != "" {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return User{}, apperr.Internal(err)
		}
		u.PasswordHash = hash
	}

	var up media.Uploaded
	if in.Photo != nil {
		up, err = s.photos.Upload(ctx, media.UserPrefix(u.ID), in.Photo)
		if err != nil {
			return User{}, err
		}
		u.PhotoURL = &up.URL
	}

	u.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, u); err != nil {
		s.photos.Discard(ctx, up)
		if errors.Is(err, repo.ErrDuplicate) {
			return User{}, errEmailTaken()
		}
		return User{}, repo.AsAppErr("user", err)
	}
	return u, nil
}

func normalizeEmail(raw string) (string, string) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", "required"
	}
	if len(email) > maxEmailLen {
		return "", "too long"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", "enter a valid email address"
	}
	return email, ""
}

func errEmailTaken() error {
	return apperr.Field("email", "user with this email already exists")
}
