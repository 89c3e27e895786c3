package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/service"
)

// RouterConfig wires services into the HTTP API. Auth and Presets may be nil,
// in which case their routes are not mounted.
type RouterConfig struct {
	Generator *service.GeneratorService
	Panel     *service.Panel
	Auth      *service.AuthService
	Presets   *service.PresetService
	Tokens    *crypto.TokenIssuer

	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the API routes. ctx bounds background work such as rate
// limiter cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	limit := middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	genHandler := NewGeneratorHandler(cfg.Generator)
	r.Group(func(r chi.Router) {
		r.Use(limit)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
	})

	r.Get("/api/v1/live", NewLiveHandler(cfg.Panel).HandleLive)

	if cfg.Auth != nil {
		authHandler := NewAuthHandler(cfg.Auth)

		r.Group(func(r chi.Router) {
			r.Use(limit)
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.Tokens))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			if cfg.Presets != nil {
				presetHandler := NewPresetHandler(cfg.Presets)
				r.Get("/api/v1/presets", presetHandler.HandleList)
				r.Post("/api/v1/presets", presetHandler.HandleCreate)
				r.Put("/api/v1/presets/{id}", presetHandler.HandleUpdate)
				r.Delete("/api/v1/presets/{id}", presetHandler.HandleDelete)
				r.Post("/api/v1/presets/{id}/generate", presetHandler.HandleGenerate)
			}
		})
	}

	return r
}
