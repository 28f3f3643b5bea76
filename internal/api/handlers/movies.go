package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/api/authctx"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

type CreateMovieRequest struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Director string `json:"director"`
	Genre    string `json:"genre"`
	IMDBID   string `json:"imdbID"`
	Plot     string `json:"plot"`
}

type UpdateMovieRequest struct {
	Title    *string `json:"title"`
	Year     *int    `json:"year"`
	Director *string `json:"director"`
	Genre    *string `json:"genre"`
	IMDBID   *string `json:"imdbID"`
	Plot     *string `json:"plot"`
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := authctx.GetUser(r.Context())
	if !ok {
		RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	movies, err := h.movieService.List(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR [movies.List] userID=%s: %v", user.ID, err)
		RespondError(w, http.StatusInternalServerError, "failed to list movies")
		return
	}

	RespondList(w, http.StatusOK, len(movies), movies)
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := authctx.GetUser(r.Context())
	if !ok {
		RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// Malformed ids are indistinguishable from missing ones.
		RespondError(w, http.StatusNotFound, "movie not found")
		return
	}

	movie, err := h.movieService.Get(r.Context(), user.ID, movieID)
	if err != nil {
		h.respondMovieError(w, "movies.Get", movieID, err)
		return
	}

	RespondData(w, http.StatusOK, movie)
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := authctx.GetUser(r.Context())
	if !ok {
		RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	movie, err := h.movieService.Create(r.Context(), user.ID, service.CreateMovieInput{
		Title:    req.Title,
		Year:     req.Year,
		Director: req.Director,
		Genre:    req.Genre,
		IMDBID:   req.IMDBID,
		Plot:     req.Plot,
	})
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			RespondValidationErrors(w, vErr.Fields)
		case errors.Is(err, domain.ErrDuplicateMovie):
			RespondError(w, http.StatusBadRequest, "movie already in your catalog")
		default:
			log.Printf("ERROR [movies.Create] userID=%s: %v", user.ID, err)
			RespondError(w, http.StatusInternalServerError, "failed to create movie")
		}
		return
	}

	RespondMessage(w, http.StatusCreated, "movie created", movie)
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := authctx.GetUser(r.Context())
	if !ok {
		RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, http.StatusNotFound, "movie not found")
		return
	}

	var req UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	movie, err := h.movieService.Update(r.Context(), user.ID, movieID, service.UpdateMovieInput{
		Title:    req.Title,
		Year:     req.Year,
		Director: req.Director,
		Genre:    req.Genre,
		IMDBID:   req.IMDBID,
		Plot:     req.Plot,
	})
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			RespondValidationErrors(w, vErr.Fields)
		case errors.Is(err, domain.ErrDuplicateMovie):
			RespondError(w, http.StatusBadRequest, "you already have a movie with that title and year")
		default:
			h.respondMovieError(w, "movies.Update", movieID, err)
		}
		return
	}

	RespondMessage(w, http.StatusOK, "movie updated", movie)
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := authctx.GetUser(r.Context())
	if !ok {
		RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, http.StatusNotFound, "movie not found")
		return
	}

	if err := h.movieService.Delete(r.Context(), user.ID, movieID); err != nil {
		h.respondMovieError(w, "movies.Delete", movieID, err)
		return
	}

	RespondMessage(w, http.StatusOK, "movie deleted", struct{}{})
}

func (h *MovieHandler) respondMovieError(w http.ResponseWriter, op string, movieID uuid.UUID, err error) {
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		RespondError(w, http.StatusNotFound, "movie not found")
	case errors.Is(err, domain.ErrNotMovieOwner):
		RespondError(w, http.StatusForbidden, "you do not have permission to access this movie")
	default:
		log.Printf("ERROR [%s] movieID=%s: %v", op, movieID, err)
		RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
