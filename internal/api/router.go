package api

import (
	"net/http"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/api/handlers"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/api/middleware"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/config"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	movieHandler := handlers.NewMovieHandler(services.Movie)
	omdbHandler := handlers.NewOMDBHandler(services.OMDB)

	authLimiter := rate.NewLimiter(rate.Limit(cfg.AuthRateRPS), cfg.AuthRateBurst)

	// Public auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimit(authLimiter))
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", movieHandler.List)
			r.Post("/", movieHandler.Create)
			r.Get("/{id}", movieHandler.Get)
			r.Put("/{id}", movieHandler.Update)
			r.Delete("/{id}", movieHandler.Delete)
		})

		r.Route("/omdb", func(r chi.Router) {
			r.Get("/search", omdbHandler.Search)
			r.Get("/movie/{imdbID}", omdbHandler.GetDetails)
		})
	})

	return r
}
