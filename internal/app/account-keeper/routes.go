// Package accountkeeper предоставляет маршруты для основного приложения.
package accountkeeper

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/account-keeper/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/account-keeper/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/account-keeper/internal/http/handlers/health"
	profileread "github.com/magabrotheeeer/account-keeper/internal/http/handlers/profile/read"
	profileupdate "github.com/magabrotheeeer/account-keeper/internal/http/handlers/profile/update"
	"github.com/magabrotheeeer/account-keeper/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/account-keeper/internal/services/auth"
	profileservice "github.com/magabrotheeeer/account-keeper/internal/services/profile"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, profileService *profileservice.ProfileService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/profile", profileread.New(logger, profileService).ServeHTTP)
			r.Put("/profile", profileupdate.New(logger, profileService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
