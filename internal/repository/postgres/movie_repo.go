package postgres

import (
	"context"
	"errors"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *movieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	err := r.db.WithContext(ctx).Create(movie).Error
	if isUniqueViolation(err) {
		return domain.ErrDuplicateMovie
	}
	return err
}

func (r *movieRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	var movie domain.Movie
	err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	err := r.db.WithContext(ctx).Save(movie).Error
	if isUniqueViolation(err) {
		return domain.ErrDuplicateMovie
	}
	return err
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Movie{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}
