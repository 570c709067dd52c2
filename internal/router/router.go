package router

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"pet-care-service/internal/adapters/auth/password"
	objmem "pet-care-service/internal/adapters/objectstore/memory"
	mem "pet-care-service/internal/adapters/storage/memory"
	pg "pet-care-service/internal/adapters/storage/postgres"
	"pet-care-service/internal/domain/calendar"
	"pet-care-service/internal/domain/forum"
	"pet-care-service/internal/domain/journal"
	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/domain/partners"
	"pet-care-service/internal/domain/pets"
	"pet-care-service/internal/domain/users"
	"pet-care-service/internal/middleware"
	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/platform/metrics"
	"pet-care-service/internal/platform/web"
	"pet-care-service/internal/ports/auth"
	"pet-care-service/internal/ports/storage"

	_ "pet-care-service/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev: X-Debug-User-ID)
	Tokens       auth.TokenIssuer  // requerido
	Hasher       auth.PasswordHasher

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB           *sql.DB
	QueryTimeout time.Duration

	// Opcional: si no viene, object store in-memory.
	Objects        storage.ObjectStorage
	MaxUploadBytes int64

	// Partners se cargan en el catálogo al armar el router.
	Partners []partners.Partner
}

// repositories lo cumplen tanto mem.Store como pg.Store.
type repositories interface {
	Users() users.Repository
	Pets() pets.Repository
	Calendar() calendar.Repository
	Journal() journal.Repository
	Partners() partners.Repository
	Watchlist() partners.WatchlistRepository
	Forum() forum.Repository
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.Tokens == nil {
		return nil, errors.New("router: token issuer required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	hasher := opts.Hasher
	if hasher == nil {
		hasher = password.NewBcrypt(0)
	}
	objects := opts.Objects
	if objects == nil {
		objects = objmem.New("")
	}

	var repos repositories
	if opts.DB != nil {
		repos = pg.New(opts.DB, opts.QueryTimeout)
	} else {
		repos = mem.New()
	}

	// Services por módulo
	photos := media.NewUploader(objects, log.With(map[string]any{"component": "media"}), opts.MaxUploadBytes)
	usersSvc := users.NewService(repos.Users(), hasher, opts.Tokens, photos, log)
	petsSvc := pets.NewService(repos.Pets(), photos, log)
	calendarSvc := calendar.NewService(repos.Calendar(), petsSvc.Owners(), log)
	journalSvc := journal.NewService(repos.Journal(), petsSvc.Owners())
	partnersSvc := partners.NewService(repos.Partners(), repos.Watchlist(), log)
	forumSvc := forum.NewService(repos.Forum(), photos, log)

	if len(opts.Partners) > 0 {
		if _, err := partnersSvc.Seed(context.Background(), opts.Partners); err != nil {
			return nil, err
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(chimw.StripSlashes)
	r.Use(metrics.Instrument)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", healthHandler(opts.DB))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusNotFound, web.ErrorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusMethodNotAllowed, web.ErrorResponse{Error: "method not allowed"})
	})

	// Rutas por módulo
	maxBody := opts.MaxUploadBytes
	users.RegisterRoutes(r, usersSvc, maxBody)
	pets.RegisterRoutes(r, petsSvc, maxBody)
	calendar.RegisterRoutes(r, calendarSvc)
	journal.RegisterRoutes(r, journalSvc)
	partners.RegisterRoutes(r, partnersSvc)
	forum.RegisterRoutes(r, forumSvc, maxBody)

	return r, nil
}

// healthHandler responde "ok"; con DB además hace ping.
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.FromContext(r.Context()).Warn("health: db ping failed", map[string]any{"err": err})
				web.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
