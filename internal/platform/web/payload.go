package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-service/internal/platform/apperr"
)

// File es un archivo recibido en multipart (campo "photo").
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Payload es el body ya leído, venga como JSON o como multipart/form-data.
// Guarda presencia de campos para que los PUT parciales solo toquen lo enviado.
type Payload struct {
	values map[string]*string
	files  map[string]*File
}

const defaultMaxBody = 10 << 20

// ReadPayload lee el body según Content-Type. maxBytes limita el tamaño total.
func ReadPayload(r *http.Request, maxBytes int64) (Payload, error) {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBody
	}
	p := Payload{values: map[string]*string{}, files: map[string]*File{}}

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "multipart/form-data":
		return p, p.readMultipart(r, maxBytes)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return p, apperr.Validation("invalid form", nil)
		}
		for k, vs := range r.PostForm {
			if len(vs) > 0 {
				v := vs[0]
				p.values[k] = &v
			}
		}
		return p, nil
	default:
		return p, p.readJSON(r, maxBytes)
	}
}

func (p Payload) readJSON(r *http.Request, maxBytes int64) error {
	if r.Body == nil {
		return nil
	}
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil {
		return apperr.Validation("invalid json", nil)
	}
	if int64(len(b)) > maxBytes {
		return apperr.Validation("request body too large", nil)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return apperr.Validation("invalid json", nil)
	}
	for k, v := range raw {
		txt := strings.TrimSpace(string(v))
		if txt == "null" {
			p.values[k] = nil
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			p.values[k] = &s
			continue
		}
		// números y booleanos quedan como su texto JSON
		p.values[k] = &txt
	}
	return nil
}

func (p Payload) readMultipart(r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes+(1<<20))
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return apperr.Field("photo", "file too large")
		}
		return apperr.Validation("invalid multipart form", nil)
	}
	for k, vs := range r.MultipartForm.Value {
		if len(vs) > 0 {
			v := vs[0]
			p.values[k] = &v
		}
	}
	for k, fhs := range r.MultipartForm.File {
		if len(fhs) == 0 {
			continue
		}
		fh := fhs[0]
		f, err := fh.Open()
		if err != nil {
			return apperr.Field(k, "unreadable file")
		}
		data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
		_ = f.Close()
		if err != nil {
			return apperr.Field(k, "unreadable file")
		}
		p.files[k] = &File{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		}
	}
	return nil
}

// Has indica si el campo vino en el body (aunque sea null).
func (p Payload) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// String devuelve el valor o "" (ausente o null).
func (p Payload) String(name string) string {
	if v := p.values[name]; v != nil {
		return *v
	}
	return ""
}

// Opt devuelve nil si el campo no vino; null se lee como "".
func (p Payload) Opt(name string) *string {
	v, ok := p.values[name]
	if !ok {
		return nil
	}
	s := ""
	if v != nil {
		s = *v
	}
	return &s
}

// Bool acepta true/false/1/0 (JSON o form).
func (p Payload) Bool(name string) (*bool, error) {
	s := p.Opt(name)
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(*s))
	if err != nil {
		return nil, apperr.Field(name, "must be a boolean")
	}
	return &b, nil
}

func (p Payload) File(name string) *File {
	return p.files[name]
}

const DateLayout = "2006-01-02"

// Date parsea YYYY-MM-DD. El segundo retorno indica presencia; "" o null limpia.
func (p Payload) Date(name string) (*time.Time, bool, error) {
	s := p.Opt(name)
	if s == nil {
		return nil, false, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, true, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, true, apperr.Field(name, "must be YYYY-MM-DD")
	}
	return &t, true, nil
}
