package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthData matches the data field of the API auth responses
type AuthData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type authEnvelope struct {
	Success bool     `json:"success"`
	Data    AuthData `json:"data"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.URL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var env authEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(env.Data.ID)
	user := &domain.User{
		ID:    userID,
		Name:  env.Data.Name,
		Email: env.Data.Email,
	}

	return user, env.Data.Token
}

// MovieBuilder creates test movies with a builder pattern
type MovieBuilder struct {
	owner    *domain.User
	title    string
	year     int
	director string
	genre    string
	poster   string
	imdbID   string
	plot     string
}

// NewMovieBuilder creates a new MovieBuilder with default values
func NewMovieBuilder(owner *domain.User) *MovieBuilder {
	return &MovieBuilder{
		owner:    owner,
		title:    fmt.Sprintf("Test Movie %s", uuid.New().String()[:8]),
		year:     2010,
		director: "Test Director",
		genre:    "Drama",
		poster:   domain.DefaultPoster,
		imdbID:   "tt0000001",
	}
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.title = title
	return b
}

func (b *MovieBuilder) WithYear(year int) *MovieBuilder {
	b.year = year
	return b
}

func (b *MovieBuilder) WithIMDBID(imdbID string) *MovieBuilder {
	b.imdbID = imdbID
	return b
}

func (b *MovieBuilder) WithPoster(poster string) *MovieBuilder {
	b.poster = poster
	return b
}

// Build creates the movie in the database
func (b *MovieBuilder) Build(t *testing.T, db *gorm.DB) *domain.Movie {
	t.Helper()

	movie := &domain.Movie{
		ID:        uuid.New(),
		UserID:    b.owner.ID,
		Title:     b.title,
		Year:      b.year,
		Director:  b.director,
		Genre:     b.genre,
		Poster:    b.poster,
		IMDBID:    b.imdbID,
		Plot:      b.plot,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(movie).Error; err != nil {
		t.Fatalf("failed to create movie: %v", err)
	}

	return movie
}
