package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/service"
	"github.com/go-chi/chi/v5"
)

// OMDBHandler proxies read-only search and detail lookups to OMDb.
// Unlike the poster enrichment on writes, these have no fallback value
// and surface provider failures to the caller.
type OMDBHandler struct {
	omdbService *service.OMDBService
}

func NewOMDBHandler(omdbService *service.OMDBService) *OMDBHandler {
	return &OMDBHandler{omdbService: omdbService}
}

func (h *OMDBHandler) Search(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		RespondError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	results, err := h.omdbService.Search(r.Context(), title)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotFound) {
			RespondError(w, http.StatusNotFound, "no movies found")
			return
		}
		log.Printf("ERROR [omdb.Search] title=%q: %v", title, err)
		RespondError(w, http.StatusInternalServerError, "failed to search movies")
		return
	}

	RespondList(w, http.StatusOK, len(results), results)
}

func (h *OMDBHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	imdbID := chi.URLParam(r, "imdbID")

	details, err := h.omdbService.GetDetails(r.Context(), imdbID)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotFound) {
			RespondError(w, http.StatusNotFound, "movie not found")
			return
		}
		log.Printf("ERROR [omdb.GetDetails] imdbID=%s: %v", imdbID, err)
		RespondError(w, http.StatusInternalServerError, "failed to fetch movie details")
		return
	}

	RespondData(w, http.StatusOK, details)
}
