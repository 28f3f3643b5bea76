package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPoster is stored whenever OMDb cannot supply a poster for a write.
const DefaultPoster = "https://via.placeholder.com/300x450?text=Sin+Poster"

// Movie is a single catalog entry. A user cannot have the same title
// and year twice; the composite unique index is the source of truth
// for duplicate detection, including under concurrent creates.
type Movie struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_movies_user_title_year"`
	Title     string    `json:"title" gorm:"not null;uniqueIndex:idx_movies_user_title_year"`
	Year      int       `json:"year" gorm:"not null;uniqueIndex:idx_movies_user_title_year"`
	Director  string    `json:"director" gorm:"not null"`
	Genre     string    `json:"genre" gorm:"not null"`
	Poster    string    `json:"poster"`
	IMDBID    string    `json:"imdbID" gorm:"column:imdb_id"`
	Plot      string    `json:"plot"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MinReleaseYear is the year of the first film ever made.
const MinReleaseYear = 1888

// MaxReleaseYear bounds how far into the future a release year may be.
// Computed from "now" at validation time so the bound never goes stale.
func MaxReleaseYear(now time.Time) int {
	return now.Year() + 5
}
