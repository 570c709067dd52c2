package journal

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) error
	// Update nunca toca created_at.
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Entry, error)
	// List devuelve las más recientes primero.
	List(ctx context.Context, f Filter) ([]Entry, error)
}
