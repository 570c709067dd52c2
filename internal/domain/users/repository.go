package users

import "context"

// Repository persiste usuarios. Email es único sin distinguir mayúsculas:
// Create/Update devuelven repo.ErrDuplicate si ya existe.
type Repository interface {
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
