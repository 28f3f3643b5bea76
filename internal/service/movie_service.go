package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/repository"
	"github.com/google/uuid"
)

type MovieService struct {
	movieRepo repository.MovieRepository
	omdb      *OMDBService
}

func NewMovieService(movieRepo repository.MovieRepository, omdb *OMDBService) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
		omdb:      omdb,
	}
}

type CreateMovieInput struct {
	Title    string
	Year     int
	Director string
	Genre    string
	IMDBID   string
	Plot     string
}

// UpdateMovieInput carries a partial update; nil fields are untouched.
type UpdateMovieInput struct {
	Title    *string
	Year     *int
	Director *string
	Genre    *string
	IMDBID   *string
	Plot     *string
}

func (s *MovieService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Movie, error) {
	return s.movieRepo.GetByUserID(ctx, userID)
}

// Get returns a movie after an existence check and then an ownership
// check. A non-owner probing someone else's valid id gets
// ErrNotMovieOwner rather than ErrMovieNotFound; this existence leak
// is the documented contract and is kept as-is.
func (s *MovieService) Get(ctx context.Context, userID, movieID uuid.UUID) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if movie.UserID != userID {
		return nil, domain.ErrNotMovieOwner
	}

	return movie, nil
}

func (s *MovieService) Create(ctx context.Context, userID uuid.UUID, input CreateMovieInput) (*domain.Movie, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Director = strings.TrimSpace(input.Director)
	input.Genre = strings.TrimSpace(input.Genre)
	input.IMDBID = strings.TrimSpace(input.IMDBID)
	input.Plot = strings.TrimSpace(input.Plot)

	if err := validateCreateMovie(input, time.Now()); err != nil {
		return nil, err
	}

	// Enrichment is strictly best-effort and always completes before
	// the write; anything but a found poster falls back to the default.
	poster := domain.DefaultPoster
	if lookup := s.omdb.LookupPoster(ctx, input.IMDBID); lookup.Outcome == PosterFound {
		poster = lookup.URL
	}

	movie := &domain.Movie{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		Year:      input.Year,
		Director:  input.Director,
		Genre:     input.Genre,
		Poster:    poster,
		IMDBID:    input.IMDBID,
		Plot:      input.Plot,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *MovieService) Update(ctx context.Context, userID, movieID uuid.UUID, input UpdateMovieInput) (*domain.Movie, error) {
	if err := validateUpdateMovie(input, time.Now()); err != nil {
		return nil, err
	}

	movie, err := s.Get(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		movie.Title = strings.TrimSpace(*input.Title)
	}
	if input.Year != nil {
		movie.Year = *input.Year
	}
	if input.Director != nil {
		movie.Director = strings.TrimSpace(*input.Director)
	}
	if input.Genre != nil {
		movie.Genre = strings.TrimSpace(*input.Genre)
	}
	if input.Plot != nil {
		movie.Plot = strings.TrimSpace(*input.Plot)
	}

	// A changed IMDb id re-runs enrichment like Create; an unchanged
	// one leaves the stored poster alone.
	if input.IMDBID != nil {
		newID := strings.TrimSpace(*input.IMDBID)
		if newID != "" && newID != movie.IMDBID {
			movie.Poster = domain.DefaultPoster
			if lookup := s.omdb.LookupPoster(ctx, newID); lookup.Outcome == PosterFound {
				movie.Poster = lookup.URL
			}
		}
		movie.IMDBID = newID
	}

	movie.UpdatedAt = time.Now()

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, userID, movieID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, movieID); err != nil {
		return err
	}

	return s.movieRepo.Delete(ctx, movieID)
}

func validateCreateMovie(input CreateMovieInput, now time.Time) error {
	var fields []domain.FieldError

	fields = appendTitleErrors(fields, input.Title, true)
	fields = appendYearErrors(fields, input.Year, now)
	fields = appendDirectorErrors(fields, input.Director, true)
	if input.Genre == "" {
		fields = append(fields, domain.FieldError{Field: "genre", Message: "genre is required"})
	}
	if input.IMDBID == "" {
		fields = append(fields, domain.FieldError{Field: "imdbID", Message: "imdbID is required"})
	}
	fields = appendPlotErrors(fields, input.Plot)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validateUpdateMovie(input UpdateMovieInput, now time.Time) error {
	var fields []domain.FieldError

	if input.Title != nil {
		fields = appendTitleErrors(fields, strings.TrimSpace(*input.Title), true)
	}
	if input.Year != nil {
		fields = appendYearErrors(fields, *input.Year, now)
	}
	if input.Director != nil {
		fields = appendDirectorErrors(fields, strings.TrimSpace(*input.Director), true)
	}
	if input.Genre != nil && strings.TrimSpace(*input.Genre) == "" {
		fields = append(fields, domain.FieldError{Field: "genre", Message: "genre must not be empty"})
	}
	if input.Plot != nil {
		fields = appendPlotErrors(fields, strings.TrimSpace(*input.Plot))
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func appendTitleErrors(fields []domain.FieldError, title string, required bool) []domain.FieldError {
	if required && title == "" {
		return append(fields, domain.FieldError{Field: "title", Message: "title is required"})
	}
	// Length bounds count characters, not bytes
	if utf8.RuneCountInString(title) > 200 {
		return append(fields, domain.FieldError{Field: "title", Message: "title must not exceed 200 characters"})
	}
	return fields
}

func appendYearErrors(fields []domain.FieldError, year int, now time.Time) []domain.FieldError {
	if max := domain.MaxReleaseYear(now); year < domain.MinReleaseYear || year > max {
		return append(fields, domain.FieldError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between %d and %d", domain.MinReleaseYear, max),
		})
	}
	return fields
}

func appendDirectorErrors(fields []domain.FieldError, director string, required bool) []domain.FieldError {
	if required && director == "" {
		return append(fields, domain.FieldError{Field: "director", Message: "director is required"})
	}
	if utf8.RuneCountInString(director) > 100 {
		return append(fields, domain.FieldError{Field: "director", Message: "director must not exceed 100 characters"})
	}
	return fields
}

func appendPlotErrors(fields []domain.FieldError, plot string) []domain.FieldError {
	if utf8.RuneCountInString(plot) > 1000 {
		return append(fields, domain.FieldError{Field: "plot", Message: "plot must not exceed 1000 characters"})
	}
	return fields
}
