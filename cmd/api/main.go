// @title Pet Care Service API
// @version 1.0
// @description Backend de cuidado de mascotas: usuarios, mascotas, calendario, diario, partners y foro.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pet-care-service/internal/adapters/auth/jwtauth"
	"pet-care-service/internal/adapters/auth/password"
	"pet-care-service/internal/adapters/objectstore/s3"
	"pet-care-service/internal/adapters/storage/postgres"
	"pet-care-service/internal/config"
	"pet-care-service/internal/domain/partners"
	"pet-care-service/internal/platform/httpclient"
	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/ports/storage"
	"pet-care-service/internal/router"

	"github.com/rs/cors"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.Database.DSN != "" {
		var err error
		db, err = postgres.Open(cfg.Database.DSN, postgres.Pool{
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			MaxLifetime:  cfg.Database.MaxLifetime,
		})
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.Database.AutoMigrate {
			applied, err := postgres.Migrate(ctx, db)
			if err != nil {
				return err
			}
			log.Info("migrations applied", map[string]any{"files": applied})
		}
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	var objects storage.ObjectStorage
	if cfg.IsStorageConfigured() {
		client, err := s3.New(ctx, s3.Config{
			Bucket:          cfg.Storage.Bucket,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Endpoint:        cfg.Storage.Endpoint,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
			UseAccelerate:   cfg.Storage.UseAccelerate,
			UsePathStyle:    cfg.Storage.UsePathStyle,
			PublicRead:      cfg.Storage.PublicRead,
			Timeout:         cfg.Storage.Timeout,
		})
		if err != nil {
			return err
		}
		objects = client
	} else {
		log.Warn("S3_BUCKET not set, photos stay in memory", nil)
	}

	issuer, err := jwtauth.NewIssuer(jwtauth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTTL: cfg.JWT.RefreshTokenTTL,
	})
	if err != nil {
		return err
	}

	var seed []partners.Partner
	if cfg.Seed.PartnersFile != "" {
		seed, err = partners.LoadSeed(ctx, cfg.Seed.PartnersFile, httpclient.New(cfg.Seed.FetchTimeout))
		if err != nil {
			return err
		}
	}

	h, err := router.NewRouter(router.Options{
		Logger:         log,
		AuthVerifier:   issuer,
		Tokens:         issuer,
		Hasher:         password.NewBcrypt(bcrypt.DefaultCost),
		DB:             db,
		QueryTimeout:   cfg.Database.QueryTimeout,
		Objects:        objects,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		Partners:       seed,
	})
	if err != nil {
		return err
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      c.Handler(h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.App.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
