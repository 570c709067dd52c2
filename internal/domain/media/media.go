// Package media implementa el sub-flujo de subida de fotos: valida la imagen,
// genera una key única bajo un prefijo por entidad y la sube al object store
// antes de que el dueño del registro persista la URL.
package media

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/platform/metrics"
	"pet-care-service/internal/platform/web"
	"pet-care-service/internal/ports/storage"

	"github.com/google/uuid"
)

// Photo es la imagen ya leída del request.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Uploaded identifica un objeto subido (Key sirve para limpiar si falla el commit).
type Uploaded struct {
	Key string
	URL string
}

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Prefijos lógicos por entidad.
func PetPrefix(petID string) string   { return "pet_photos/pet_" + petID }
func PostPrefix(postID string) string { return "forum_posts/post_" + postID }
func UserPrefix(userID string) string { return "user_profile/user_" + userID }

type Uploader struct {
	store    storage.ObjectStorage
	log      logger.Logger
	maxBytes int64
	newToken func() string
}

func NewUploader(store storage.ObjectStorage, log logger.Logger, maxBytes int64) *Uploader {
	if log == nil {
		log = logger.Nop()
	}
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Uploader{
		store:    store,
		log:      log,
		maxBytes: maxBytes,
		// 128 bits aleatorios (uuid v4) en hex.
		newToken: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
	}
}

// Validate chequea tamaño y tipo (sniffing del contenido, no del header).
func (u *Uploader) Validate(p *Photo) error {
	if p == nil {
		return nil
	}
	if len(p.Data) == 0 {
		return apperr.Field("photo", "empty file")
	}
	if int64(len(p.Data)) > u.maxBytes {
		return apperr.Field("photo", "file too large")
	}
	if _, ok := allowedTypes[DetectContentType(p)]; !ok {
		return apperr.Field("photo", "unsupported image type")
	}
	return nil
}

// Upload sube la foto bajo prefix. Cualquier falla del proveedor es StorageError.
func (u *Uploader) Upload(ctx context.Context, prefix string, p *Photo) (Uploaded, error) {
	if err := u.Validate(p); err != nil {
		return Uploaded{}, err
	}
	if p == nil {
		return Uploaded{}, apperr.Field("photo", "required")
	}

	ct := DetectContentType(p)
	key := Key(prefix, u.newToken(), allowedTypes[ct])

	url, err := u.store.Put(ctx, storage.Object{
		Key:         key,
		Body:        bytes.NewReader(p.Data),
		Size:        int64(len(p.Data)),
		ContentType: ct,
	})
	if err != nil {
		metrics.RecordUpload(false)
		u.log.Error("photo upload failed", map[string]any{"key": key, "err": err})
		return Uploaded{}, apperr.Storage(err)
	}

	metrics.RecordUpload(true)
	u.log.Debug("photo uploaded", map[string]any{"key": key, "bytes": len(p.Data)})
	return Uploaded{Key: key, URL: url}, nil
}

// Discard borra best-effort un objeto cuyo registro no llegó a persistirse.
func (u *Uploader) Discard(ctx context.Context, up Uploaded) {
	if up.Key == "" {
		return
	}
	if err := u.store.Delete(context.WithoutCancel(ctx), up.Key); err != nil {
		u.log.Warn("orphan photo not removed", map[string]any{"key": up.Key, "err": err})
	}
}

// Key arma "{prefix}/image_{token}{ext}".
func Key(prefix, token, ext string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	name := "image_" + token + ext
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func DetectContentType(p *Photo) string {
	if p == nil || len(p.Data) == 0 {
		return ""
	}
	ct := http.DetectContentType(p.Data)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

// PhotoFrom adapta el archivo "photo" del payload; nil si no vino.
func PhotoFrom(f *web.File) *Photo {
	if f == nil {
		return nil
	}
	return &Photo{Filename: f.Filename, ContentType: f.ContentType, Data: f.Data}
}
