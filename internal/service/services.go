package service

import (
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/config"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/repository"
)

type Services struct {
	Auth  *AuthService
	OMDB  *OMDBService
	Movie *MovieService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	omdb := NewOMDBService(cfg)
	return &Services{
		Auth:  NewAuthService(repos.User, cfg),
		OMDB:  omdb,
		Movie: NewMovieService(repos.Movie, omdb),
	}
}
