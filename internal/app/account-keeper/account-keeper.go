package accountkeeper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/account-keeper/internal/config"
	"github.com/magabrotheeeer/account-keeper/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/account-keeper/internal/services/auth"
	profileservice "github.com/magabrotheeeer/account-keeper/internal/services/profile"
	"github.com/magabrotheeeer/account-keeper/internal/storage"
	"github.com/magabrotheeeer/account-keeper/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	slot   *storage.Slot
	store  *repository.Store
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	slot, err := storage.New(ctx, cfg.RedisConnection, cfg.StorageKey)
	if err != nil {
		return nil, err
	}

	store, err := repository.New(ctx, slot)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(store, jwtMaker)
	profileService := profileservice.NewProfileService(store)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, profileService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		slot:   slot,
		store:  store,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.slot.Db.Close()
		return err
	}
}
