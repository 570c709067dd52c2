package storage

import (
	"context"
	"io"
)

// Object es lo que se sube al bucket.
type Object struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
}

// ObjectStorage sube/borra objetos y conoce la URL pública de cada key.
type ObjectStorage interface {
	Put(ctx context.Context, obj Object) (url string, err error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
