package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-service/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("jwt: secret not configured")
	ErrInvalidToken  = errors.New("jwt: invalid token")
	ErrWrongType     = errors.New("jwt: wrong token type")
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Config del emisor. Secret viene de config.JWTConfig.
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// tokenClaims es el payload firmado (HS256).
type tokenClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Issuer implementa auth.TokenIssuer y auth.AuthVerifier.
type Issuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewIssuer(cfg Config) (*Issuer, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, ErrNotConfigured
	}
	accessTTL := cfg.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 5 * time.Minute
	}
	refreshTTL := cfg.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &Issuer{
		secret:     []byte(cfg.Secret),
		issuer:     strings.TrimSpace(cfg.Issuer),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

func (i *Issuer) Issue(ctx context.Context, c auth.Claims) (auth.TokenPair, error) {
	if strings.TrimSpace(c.UserID) == "" {
		return auth.TokenPair{}, errors.New("jwt: user id required")
	}

	now := i.now()
	access, accessExp, err := i.sign(c, TypeAccess, now, i.accessTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refresh, refreshExp, err := i.sign(c, TypeRefresh, now, i.refreshTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}

	return auth.TokenPair{
		Access:           access,
		Refresh:          refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// Refresh valida un refresh token y emite un access token nuevo.
func (i *Issuer) Refresh(ctx context.Context, refreshToken string) (string, error) {
	tc, err := i.parse(refreshToken)
	if err != nil {
		return "", err
	}
	if tc.TokenType != TypeRefresh {
		return "", ErrWrongType
	}

	access, _, err := i.sign(auth.Claims{UserID: tc.UserID, Email: tc.Email}, TypeAccess, i.now(), i.accessTTL)
	return access, err
}

// Verify implementa auth.AuthVerifier: solo acepta access tokens.
func (i *Issuer) Verify(ctx context.Context, token string) (auth.Claims, error) {
	tc, err := i.parse(token)
	if err != nil {
		return auth.Claims{}, err
	}
	if tc.TokenType != TypeAccess {
		return auth.Claims{}, ErrWrongType
	}
	return auth.Claims{UserID: tc.UserID, Email: tc.Email}, nil
}

func (i *Issuer) sign(c auth.Claims, typ string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	exp := now.Add(ttl)
	claims := tokenClaims{
		UserID:    c.UserID,
		Email:     c.Email,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Subject:   c.UserID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, exp, nil
}

func (i *Issuer) parse(raw string) (*tokenClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}

	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || strings.TrimSpace(tc.UserID) == "" {
		return nil, ErrInvalidToken
	}
	return tc, nil
}
