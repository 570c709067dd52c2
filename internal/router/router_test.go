package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-care-service/internal/adapters/auth/jwtauth"
	"pet-care-service/internal/adapters/auth/password"
	objmem "pet-care-service/internal/adapters/objectstore/memory"
	"pet-care-service/internal/domain/partners"
	"pet-care-service/internal/middleware"
	"pet-care-service/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type server struct {
	*httptest.Server
	objects *objmem.Store
}

func newServer(t *testing.T, devMode bool, seed ...partners.Partner) server {
	t.Helper()
	issuer, err := jwtauth.NewIssuer(jwtauth.Config{
		Secret:     "router-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	require.NoError(t, err)

	objects := objmem.New("https://bucket.test")
	opts := router.Options{
		AuthVerifier:   issuer,
		Tokens:         issuer,
		Hasher:         password.NewBcrypt(bcrypt.MinCost),
		Objects:        objects,
		MaxUploadBytes: 1 << 20,
		Partners:       seed,
	}
	if devMode {
		opts.AuthVerifier = nil
	}

	h, err := router.NewRouter(opts)
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return server{Server: ts, objects: objects}
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(t, req)
}

func doMultipart(t *testing.T, baseURL, method, path, token string, fields map[string]string, photo []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if photo != nil {
		fw, err := mw.CreateFormFile("photo", "photo.png")
		require.NoError(t, err)
		_, err = fw.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(method, baseURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(t, req)
}

func send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

// register crea la cuenta y devuelve (userID, access token).
func register(t *testing.T, ts server, name, email string) (string, string) {
	t.Helper()
	st, body := doReq(t, ts.URL, "POST", "/signup/", "", map[string]any{
		"full_name": name, "email": email, "password": "pw-" + name,
	})
	require.Equal(t, http.StatusCreated, st, string(body))
	u := decode[map[string]any](t, body)

	st, body = doReq(t, ts.URL, "POST", "/signin/", "", map[string]any{"email": email, "password": "pw-" + name})
	require.Equal(t, http.StatusOK, st, string(body))
	tokens := decode[map[string]any](t, body)
	return u["id"].(string), tokens["access"].(string)
}

func TestHTTP_AuthFlow(t *testing.T) {
	ts := newServer(t, false)

	st, body := doReq(t, ts.URL, "POST", "/signup", "", map[string]any{
		"full_name": "Ana", "email": "Ana@Example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, st, string(body))
	u := decode[map[string]any](t, body)
	assert.Equal(t, "ana@example.com", u["email"])
	assert.Nil(t, u["photo_url"])
	assert.NotContains(t, string(body), "s3cret")

	// email repetido
	st, body = doReq(t, ts.URL, "POST", "/signup", "", map[string]any{
		"full_name": "Otra", "email": "ana@example.com", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, st)
	errBody := decode[map[string]any](t, body)
	assert.Contains(t, errBody["fields"], "email")

	st, body = doReq(t, ts.URL, "POST", "/signup", "", map[string]any{
		"full_name": "Larga", "email": "larga@example.com", "password": strings.Repeat("x", 80),
	})
	assert.Equal(t, http.StatusBadRequest, st)
	assert.Contains(t, decode[map[string]any](t, body)["fields"], "password")

	st, _ = doReq(t, ts.URL, "POST", "/signin", "", map[string]any{"email": "ana@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, st)

	st, body = doReq(t, ts.URL, "POST", "/signin", "", map[string]any{"email": "ana@example.com", "password": "s3cret"})
	require.Equal(t, http.StatusOK, st, string(body))
	pair := decode[map[string]any](t, body)
	access := pair["access"].(string)

	st, body = doReq(t, ts.URL, "GET", "/profile/", access, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Equal(t, "Ana", decode[map[string]any](t, body)["full_name"])

	st, _ = doReq(t, ts.URL, "GET", "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, st)
	st, _ = doReq(t, ts.URL, "GET", "/profile", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, st)

	st, body = doReq(t, ts.URL, "POST", "/token/refresh/", "", map[string]any{"refresh": pair["refresh"]})
	require.Equal(t, http.StatusOK, st, string(body))
	assert.NotEmpty(t, decode[map[string]any](t, body)["access"])

	st, body = doMultipart(t, ts.URL, "PUT", "/profile", access, map[string]string{"full_name": "Ana M."}, pngBytes)
	require.Equal(t, http.StatusOK, st, string(body))
	prof := decode[map[string]any](t, body)
	assert.Equal(t, "Ana M.", prof["full_name"])
	assert.Contains(t, prof["photo_url"], "user_profile/user_")
}

func TestHTTP_PetsCalendarJournal(t *testing.T) {
	ts := newServer(t, false)
	_, alice := register(t, ts, "alice", "alice@example.com")
	_, bob := register(t, ts, "bob", "bob@example.com")

	st, body := doMultipart(t, ts.URL, "POST", "/pets/", alice, map[string]string{
		"pet_name": "Rex", "breed": "Beagle", "sex": "male", "birthday": "2020-02-29",
	}, pngBytes)
	require.Equal(t, http.StatusCreated, st, string(body))
	pet := decode[map[string]any](t, body)
	petID := pet["id"].(string)
	assert.Equal(t, "2020-02-29", pet["birthday"])
	assert.Contains(t, pet["photo_url"], "pet_photos/pet_"+petID+"/image_")

	st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, bob, nil)
	assert.Equal(t, http.StatusForbidden, st)
	st, _ = doReq(t, ts.URL, "PUT", "/pets/"+petID, bob, map[string]any{"pet_name": "Mine"})
	assert.Equal(t, http.StatusForbidden, st)

	st, body = doReq(t, ts.URL, "PATCH", "/pets/"+petID, alice, map[string]any{"breed": "Mestizo", "birthday": nil})
	require.Equal(t, http.StatusOK, st, string(body))
	pet = decode[map[string]any](t, body)
	assert.Equal(t, "Rex", pet["pet_name"])
	assert.Equal(t, "Mestizo", pet["breed"])
	assert.Nil(t, pet["birthday"])

	st, body = doReq(t, ts.URL, "POST", "/calendar/", alice, map[string]any{
		"pet_id": petID, "event_type": "vaccine", "event_title": "Rabia", "start_date": "2024-05-01", "start_time": "09:30",
	})
	require.Equal(t, http.StatusCreated, st, string(body))
	ev := decode[map[string]any](t, body)
	assert.Equal(t, "09:30:00", ev["start_time"])
	assert.Equal(t, false, ev["completed"])

	st, _ = doReq(t, ts.URL, "POST", "/calendar", bob, map[string]any{
		"pet_id": petID, "event_title": "x", "start_date": "2024-05-01",
	})
	assert.Equal(t, http.StatusForbidden, st)

	st, body = doReq(t, ts.URL, "PUT", "/calendar/"+ev["id"].(string), alice, map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Equal(t, true, decode[map[string]any](t, body)["completed"])

	st, body = doReq(t, ts.URL, "POST", "/journal", alice, map[string]any{
		"pet": petID, "entry_type": "salud", "entry_title": "Control", "description": "ok",
	})
	require.Equal(t, http.StatusCreated, st, string(body))

	st, body = doReq(t, ts.URL, "GET", "/journal?pet_id="+petID, alice, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Len(t, decode[[]map[string]any](t, body), 1)

	st, body = doReq(t, ts.URL, "GET", "/calendar", bob, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Len(t, decode[[]map[string]any](t, body), 0)

	// borrar la mascota se lleva eventos y diario
	st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID, alice, nil)
	require.Equal(t, http.StatusNoContent, st)

	st, body = doReq(t, ts.URL, "GET", "/calendar", alice, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]map[string]any](t, body), 0)
	st, body = doReq(t, ts.URL, "GET", "/journal", alice, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]map[string]any](t, body), 0)
	st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, alice, nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_PetUploadFailureIsAtomic(t *testing.T) {
	ts := newServer(t, false)
	_, alice := register(t, ts, "alice", "alice@example.com")

	ts.objects.FailPuts(true)
	st, body := doMultipart(t, ts.URL, "POST", "/pets", alice, map[string]string{"pet_name": "Rex"}, pngBytes)
	assert.Equal(t, http.StatusBadGateway, st)
	assert.Equal(t, "storage error", decode[map[string]any](t, body)["error"])

	st, body = doReq(t, ts.URL, "GET", "/pets", alice, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]map[string]any](t, body), 0)
}

func TestHTTP_Forum(t *testing.T) {
	ts := newServer(t, false)
	_, alice := register(t, ts, "alice", "alice@example.com")
	_, bob := register(t, ts, "bob", "bob@example.com")

	st, _ := doReq(t, ts.URL, "POST", "/forum", "", map[string]any{"post_text": "hola"})
	assert.Equal(t, http.StatusUnauthorized, st)

	st, body := doReq(t, ts.URL, "POST", "/forum/", alice, map[string]any{"post_text": "hola"})
	require.Equal(t, http.StatusCreated, st, string(body))
	post := decode[map[string]any](t, body)
	postID := post["id"].(string)
	assert.Nil(t, post["photo_url"])
	assert.Equal(t, "alice", post["user_full"])

	st, body = doReq(t, ts.URL, "POST", "/forum/"+postID+"/like/", bob, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Equal(t, map[string]any{"liked": true, "likes_count": float64(1)}, decode[map[string]any](t, body))

	st, body = doReq(t, ts.URL, "GET", "/forum", "", nil)
	require.Equal(t, http.StatusOK, st)
	anon := decode[[]map[string]any](t, body)
	require.Len(t, anon, 1)
	assert.Equal(t, false, anon[0]["has_liked"])
	assert.Equal(t, float64(1), anon[0]["likes_count"])

	st, body = doReq(t, ts.URL, "GET", "/forum/"+postID, bob, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, true, decode[map[string]any](t, body)["has_liked"])

	st, _ = doReq(t, ts.URL, "GET", "/forum/"+postID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, st)

	st, body = doReq(t, ts.URL, "POST", "/forum/"+postID+"/like", bob, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, map[string]any{"liked": false, "likes_count": float64(0)}, decode[map[string]any](t, body))

	st, body = doReq(t, ts.URL, "POST", "/forum/"+postID+"/comments", bob, map[string]any{"comment_text": "lindo"})
	require.Equal(t, http.StatusCreated, st, string(body))
	comment := decode[map[string]any](t, body)
	assert.Equal(t, "bob", comment["user_full"])
	commentID := comment["id"].(string)

	st, _ = doReq(t, ts.URL, "PUT", "/forum/"+postID+"/comments/"+commentID, alice, map[string]any{"comment_text": "x"})
	assert.Equal(t, http.StatusForbidden, st)

	st, _ = doReq(t, ts.URL, "DELETE", "/forum/"+postID, bob, nil)
	assert.Equal(t, http.StatusForbidden, st)

	st, _ = doReq(t, ts.URL, "DELETE", "/forum/"+postID+"/comments/"+commentID, alice, nil)
	assert.Equal(t, http.StatusNoContent, st)

	st, body = doMultipart(t, ts.URL, "PUT", "/forum/"+postID, alice, map[string]string{"post_text": ""}, pngBytes)
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Contains(t, decode[map[string]any](t, body)["photo_url"], "forum_posts/post_"+postID+"/image_")

	st, _ = doReq(t, ts.URL, "DELETE", "/forum/"+postID, alice, nil)
	assert.Equal(t, http.StatusNoContent, st)
	st, _ = doReq(t, ts.URL, "POST", "/forum/"+postID+"/like", bob, nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_PartnersWatchlist(t *testing.T) {
	ts := newServer(t, false,
		partners.Partner{ID: "vet-1", SiteName: "Vet Central", SiteURL: "https://vet.example", PartnerType: "vet", Rating: 4.5},
		partners.Partner{SiteName: "Animal Shop", SiteURL: "https://shop.example", PartnerType: "shop", Rating: 3},
	)
	_, alice := register(t, ts, "alice", "alice@example.com")

	st, body := doReq(t, ts.URL, "GET", "/partners/", "", nil)
	require.Equal(t, http.StatusOK, st)
	list := decode[[]map[string]any](t, body)
	require.Len(t, list, 2)
	assert.Equal(t, "Animal Shop", list[0]["site_name"])

	st, _ = doReq(t, ts.URL, "GET", "/partners/watchlist", "", nil)
	assert.Equal(t, http.StatusUnauthorized, st)

	st, body = doReq(t, ts.URL, "POST", "/partners/watchlist", alice, map[string]any{"partner_id": "vet-1"})
	require.Equal(t, http.StatusCreated, st, string(body))
	st, _ = doReq(t, ts.URL, "POST", "/partners/watchlist", alice, map[string]any{"partner_id": "vet-1"})
	assert.Equal(t, http.StatusBadRequest, st)
	st, _ = doReq(t, ts.URL, "POST", "/partners/watchlist", alice, map[string]any{"partner_id": "nope"})
	assert.Equal(t, http.StatusNotFound, st)

	st, body = doReq(t, ts.URL, "GET", "/partners/watchlist", alice, nil)
	require.Equal(t, http.StatusOK, st)
	wl := decode[[]map[string]any](t, body)
	require.Len(t, wl, 1)
	assert.Equal(t, "vet-1", wl[0]["partner_id"])

	st, _ = doReq(t, ts.URL, "DELETE", "/partners/watchlist/vet-1", alice, nil)
	assert.Equal(t, http.StatusNoContent, st)
	st, _ = doReq(t, ts.URL, "DELETE", "/partners/watchlist/vet-1", alice, nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_DevModeHeader(t *testing.T) {
	ts := newServer(t, true)

	req, err := http.NewRequest("POST", ts.URL+"/pets", strings.NewReader(`{"pet_name":"Milo"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.DebugUserHeader, "owner-1")
	st, body := send(t, req)
	require.Equal(t, http.StatusCreated, st, string(body))

	req, err = http.NewRequest("GET", ts.URL+"/pets", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.DebugUserHeader, "owner-2")
	st, body = send(t, req)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]map[string]any](t, body), 0)
}

func TestHTTP_HealthMetricsNotFound(t *testing.T) {
	ts := newServer(t, false)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, body = doReq(t, ts.URL, "GET", "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, st)
	assert.Equal(t, "not found", decode[map[string]any](t, body)["error"])

	st, body = doReq(t, ts.URL, "GET", "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "pet_care_http_requests_total")

	st, _ = doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, st)
}
