package memory

import (
	"sync"
	"time"

	"pet-care-service/internal/domain/calendar"
	"pet-care-service/internal/domain/forum"
	"pet-care-service/internal/domain/journal"
	"pet-care-service/internal/domain/partners"
	"pet-care-service/internal/domain/pets"
	"pet-care-service/internal/domain/users"
	"pet-care-service/internal/ports/repo"
)

var (
	ErrNotFound = repo.ErrNotFound
)

// Store guarda todo en memoria detrás de un único RWMutex, así los borrados
// en cascada (pet -> eventos/diario, post -> comentarios/likes) son atómicos.
// Es el backend por defecto cuando no hay DB_DSN.
type Store struct {
	mu sync.RWMutex

	users    map[string]users.User
	pets     map[string]pets.Pet
	events   map[string]calendar.Event
	entries  map[string]journal.Entry
	partners map[string]partners.Partner
	watch    map[string]map[string]time.Time // user -> partner -> alta
	posts    map[string]forum.Post
	comments map[string]forum.Comment
	likes    map[string]map[string]struct{} // post -> users
}

func New() *Store {
	return &Store{
		users:    make(map[string]users.User),
		pets:     make(map[string]pets.Pet),
		events:   make(map[string]calendar.Event),
		entries:  make(map[string]journal.Entry),
		partners: make(map[string]partners.Partner),
		watch:    make(map[string]map[string]time.Time),
		posts:    make(map[string]forum.Post),
		comments: make(map[string]forum.Comment),
		likes:    make(map[string]map[string]struct{}),
	}
}

func (s *Store) Users() users.Repository                 { return &userRepo{s: s} }
func (s *Store) Pets() pets.Repository                   { return &petRepo{s: s} }
func (s *Store) Calendar() calendar.Repository           { return &eventRepo{s: s} }
func (s *Store) Journal() journal.Repository             { return &entryRepo{s: s} }
func (s *Store) Partners() partners.Repository           { return &partnerRepo{s: s} }
func (s *Store) Watchlist() partners.WatchlistRepository { return &watchlistRepo{s: s} }
func (s *Store) Forum() forum.Repository                 { return &forumRepo{s: s} }
