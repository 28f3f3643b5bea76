package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/config"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
)

// OMDb reports "no value" for a field as the literal string "N/A".
const omdbNotApplicable = "N/A"

// Inline placeholder served on the detail path when OMDb has no poster,
// so the frontend never renders a broken image.
const detailPlaceholderPoster = `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="300" height="450"%3E%3Crect fill="%23e5e7eb" width="300" height="450"/%3E%3Ctext x="50%25" y="50%25" dominant-baseline="middle" text-anchor="middle" font-family="Arial, sans-serif" font-size="18" fill="%236b7280"%3ESin Póster%3C/text%3E%3C/svg%3E`

type OMDBService struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewOMDBService(cfg *config.Config) *OMDBService {
	return &OMDBService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// PosterOutcome classifies the result of a best-effort poster lookup.
type PosterOutcome int

const (
	// PosterFound means the provider returned a usable poster URL.
	PosterFound PosterOutcome = iota
	// PosterAbsent means the provider answered but has no poster
	// (unknown id, or the "N/A" sentinel).
	PosterAbsent
	// PosterUnavailable means the call itself failed (transport,
	// decode). Callers treat it the same as PosterAbsent.
	PosterUnavailable
)

// PosterLookup is the result of LookupPoster. The write path collapses
// anything but PosterFound into the default placeholder.
type PosterLookup struct {
	Outcome PosterOutcome
	URL     string
}

// SearchResult is one entry of an OMDb title search. Field names are
// passed through as OMDb sends them; this endpoint is a plain proxy.
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// MovieDetails is a full OMDb record normalized to the catalog shape.
// Year is omitted when the provider has no parseable year ("N/A").
type MovieDetails struct {
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	Director string `json:"director"`
	Genre    string `json:"genre"`
	Poster   string `json:"poster"`
	IMDBID   string `json:"imdbID"`
	Plot     string `json:"plot"`
}

type omdbSearchResponse struct {
	Response string         `json:"Response"`
	Error    string         `json:"Error"`
	Search   []SearchResult `json:"Search"`
}

type omdbDetailResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Director string `json:"Director"`
	Genre    string `json:"Genre"`
	Plot     string `json:"Plot"`
	Poster   string `json:"Poster"`
	IMDBID   string `json:"imdbID"`
}

// LookupPoster fetches the poster for an exact IMDb id. It never
// returns an error: any failure is downgraded so a catalog write can
// proceed with the default placeholder.
func (s *OMDBService) LookupPoster(ctx context.Context, imdbID string) PosterLookup {
	var body omdbDetailResponse
	if err := s.get(url.Values{"i": {imdbID}}, &body); err != nil {
		log.Printf("ERROR [omdb.LookupPoster] imdbID=%s: %v", imdbID, err)
		return PosterLookup{Outcome: PosterUnavailable}
	}

	if body.Response != "True" || body.Poster == omdbNotApplicable || body.Poster == "" {
		return PosterLookup{Outcome: PosterAbsent}
	}

	return PosterLookup{Outcome: PosterFound, URL: body.Poster}
}

// Search runs a title search against OMDb. Unlike LookupPoster this is
// user-facing and allowed to fail the request.
func (s *OMDBService) Search(ctx context.Context, title string) ([]SearchResult, error) {
	var body omdbSearchResponse
	if err := s.get(url.Values{"s": {title}, "type": {"movie"}}, &body); err != nil {
		log.Printf("ERROR [omdb.Search] title=%q: %v", title, err)
		return nil, domain.ErrProviderUnavailable
	}

	if body.Response != "True" {
		return nil, domain.ErrProviderNotFound
	}

	return body.Search, nil
}

// GetDetails fetches a full record by IMDb id and normalizes the
// provider's field names and "N/A" sentinels into the catalog shape.
func (s *OMDBService) GetDetails(ctx context.Context, imdbID string) (*MovieDetails, error) {
	var body omdbDetailResponse
	if err := s.get(url.Values{"i": {imdbID}, "plot": {"full"}}, &body); err != nil {
		log.Printf("ERROR [omdb.GetDetails] imdbID=%s: %v", imdbID, err)
		return nil, domain.ErrProviderUnavailable
	}

	if body.Response != "True" {
		return nil, domain.ErrProviderNotFound
	}

	details := &MovieDetails{
		Title:    body.Title,
		Year:     parseYear(body.Year),
		Director: body.Director,
		Genre:    body.Genre,
		Poster:   body.Poster,
		IMDBID:   body.IMDBID,
		Plot:     body.Plot,
	}
	if details.Poster == omdbNotApplicable {
		details.Poster = detailPlaceholderPoster
	}
	if details.Plot == omdbNotApplicable {
		details.Plot = ""
	}

	return details, nil
}

// parseYear handles OMDb year strings like "2010" and series ranges
// like "2010–2012" by taking the leading run of digits.
func parseYear(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	year, _ := strconv.Atoi(s[:end])
	return year
}

func (s *OMDBService) get(params url.Values, out any) error {
	params.Set("apikey", s.cfg.OMDBAPIKey)

	resp, err := s.httpClient.Get(s.cfg.OMDBBaseURL + "/?" + params.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
