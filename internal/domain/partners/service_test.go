package partners_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"pet-care-service/internal/adapters/storage/memory"
	"pet-care-service/internal/domain/partners"
	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `partners:
  - site_name: Vet Central
    site_url: https://vetcentral.example
    partner_type: vet
    rating: 4.5
  - id: shop-1
    site_name: Animal Shop
    site_url: https://animalshop.example
    partner_type: shop
    rating: 3
    photo_url: https://cdn.example/shop.png
`

func seeded(t *testing.T) *partners.Service {
	t.Helper()
	store := memory.New()
	svc := partners.NewService(store.Partners(), store.Watchlist(), nil)

	path := filepath.Join(t.TempDir(), "partners.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))
	items, err := partners.LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	n, err := svc.Seed(context.Background(), items)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	return svc
}

func TestSeed_IdempotentAndSorted(t *testing.T) {
	svc := seeded(t)
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)

	// segunda corrida con los mismos datos
	_, err = svc.Seed(ctx, []partners.Partner{{SiteName: "Vet Central", SiteURL: "https://vetcentral.example", Rating: 5}})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Animal Shop", list[0].SiteName)
	assert.Equal(t, "shop-1", list[0].ID)
	assert.Equal(t, "https://cdn.example/shop.png", *list[0].PhotoURL)
	assert.Equal(t, first[1].ID, list[1].ID)
	assert.Equal(t, 5.0, list[1].Rating)
}

func TestSeed_Validation(t *testing.T) {
	store := memory.New()
	svc := partners.NewService(store.Partners(), store.Watchlist(), nil)
	ctx := context.Background()

	bad := [][]partners.Partner{
		{{SiteName: "", SiteURL: "https://x.example"}},
		{{SiteName: "X", SiteURL: "not a url"}},
		{{SiteName: "X", SiteURL: "https://x.example", Rating: 7}},
	}
	for _, items := range bad {
		_, err := svc.Seed(ctx, items)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestWatchlist(t *testing.T) {
	svc := seeded(t)
	ctx := context.Background()

	item, err := svc.AddToWatchlist(ctx, "alice", "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "shop-1", item.PartnerID)

	_, err = svc.AddToWatchlist(ctx, "alice", "shop-1")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.AddToWatchlist(ctx, "alice", "nope")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.AddToWatchlist(ctx, "", "shop-1")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	list, err := svc.Watchlist(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)

	others, err := svc.Watchlist(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, others)

	require.NoError(t, svc.RemoveFromWatchlist(ctx, "alice", "shop-1"))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(svc.RemoveFromWatchlist(ctx, "alice", "shop-1")))
}

func TestLoadSeed_FromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/partners.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"partners":[{"site_name":"Vet Norte","site_url":"https://vetnorte.example","rating":4}]}`))
	}))
	defer srv.Close()

	items, err := partners.LoadSeed(context.Background(), srv.URL+"/partners.json", httpclient.New(0))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Vet Norte", items[0].SiteName)
	assert.Equal(t, 4.0, items[0].Rating)

	_, err = partners.LoadSeed(context.Background(), srv.URL+"/missing.yaml", nil)
	assert.Error(t, err)
}
