package auth

import "context"

// AuthVerifier verifica un access token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite y rota tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, c Claims) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// PasswordHasher es opaco para el dominio (bcrypt en adapters/auth/password).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}
