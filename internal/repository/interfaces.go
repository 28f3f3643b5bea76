package repository

import (
	"context"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User  UserRepository
	Movie MovieRepository
}
