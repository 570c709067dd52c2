package memory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"pet-care-service/internal/ports/storage"
)

var ErrInjected = errors.New("memory objectstore: injected failure")

// Store es un object store en memoria para modo dev y tests.
// FailPuts permite simular caídas del proveedor.
type Store struct {
	mu       sync.RWMutex
	baseURL  string
	objects  map[string][]byte
	failPuts bool
}

func New(baseURL string) *Store {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://dev-bucket.s3.local"
	}
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string][]byte),
	}
}

func (s *Store) FailPuts(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPuts = fail
}

func (s *Store) Put(ctx context.Context, obj storage.Object) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if obj.Body == nil {
		return "", errors.New("memory objectstore: nil body")
	}

	b, err := io.ReadAll(obj.Body)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failPuts {
		return "", ErrInjected
	}
	key := strings.TrimLeft(obj.Key, "/")
	s.objects[key] = bytes.Clone(b)
	return s.baseURL + "/" + key, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, strings.TrimLeft(key, "/"))
	return nil
}

func (s *Store) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

// Get devuelve el contenido guardado (solo tests).
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.objects[strings.TrimLeft(key, "/")]
	return b, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
