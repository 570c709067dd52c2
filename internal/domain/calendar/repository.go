package calendar

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Event, error)
	// List ordena por start_date, start_time.
	List(ctx context.Context, f Filter) ([]Event, error)
}
