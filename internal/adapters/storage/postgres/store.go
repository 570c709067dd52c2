package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-care-service/internal/domain/calendar"
	"pet-care-service/internal/domain/forum"
	"pet-care-service/internal/domain/journal"
	"pet-care-service/internal/domain/partners"
	"pet-care-service/internal/domain/pets"
	"pet-care-service/internal/domain/users"
)

// Store agrupa los repos sobre un mismo *sql.DB. Cada query corre con
// QueryTimeout salvo que el ctx del request venza antes.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

func New(db *sql.DB, queryTimeout time.Duration) *Store {
	return &Store{db: db, timeout: queryTimeout}
}

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Users() users.Repository                 { return &UsersRepo{s: s} }
func (s *Store) Pets() pets.Repository                   { return &PetsRepo{s: s} }
func (s *Store) Calendar() calendar.Repository           { return &CalendarRepo{s: s} }
func (s *Store) Journal() journal.Repository             { return &JournalRepo{s: s} }
func (s *Store) Partners() partners.Repository           { return &PartnersRepo{s: s} }
func (s *Store) Watchlist() partners.WatchlistRepository { return &WatchlistRepo{s: s} }
func (s *Store) Forum() forum.Repository                 { return &ForumRepo{s: s} }

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
