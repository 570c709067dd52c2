package partners

import "context"

type Repository interface {
	List(ctx context.Context) ([]Partner, error)
	GetByID(ctx context.Context, id string) (Partner, error)
	// Upsert inserta o reemplaza por id.
	Upsert(ctx context.Context, p Partner) error
}

type WatchlistRepository interface {
	ListByUser(ctx context.Context, userID string) ([]WatchlistItem, error)
	// Add devuelve repo.ErrDuplicate si el par ya existe.
	Add(ctx context.Context, item WatchlistItem) error
	// Remove devuelve repo.ErrNotFound si el par no existe.
	Remove(ctx context.Context, userID, partnerID string) error
}
