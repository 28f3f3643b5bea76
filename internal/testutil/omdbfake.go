package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// OMDBRecord is a canned provider record served by the fake. Zero-value
// string fields are reported as OMDb's "N/A" sentinel.
type OMDBRecord struct {
	Title    string
	Year     string
	Director string
	Genre    string
	Plot     string
	Poster   string
}

// FakeOMDB is an httptest stand-in for the OMDb API. Tests register
// records by IMDb id and search results by title; everything else gets
// the provider's Response:"False" envelope. Close the underlying
// server to simulate a transport failure.
type FakeOMDB struct {
	server *httptest.Server

	mu       sync.Mutex
	records  map[string]OMDBRecord
	searches map[string][]OMDBRecord
}

func NewFakeOMDB(t *testing.T) *FakeOMDB {
	t.Helper()

	f := &FakeOMDB{
		records:  make(map[string]OMDBRecord),
		searches: make(map[string][]OMDBRecord),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeOMDB) URL() string {
	return f.server.URL
}

// Close shuts the fake down mid-test to exercise transport failures.
func (f *FakeOMDB) Close() {
	f.server.Close()
}

// AddRecord registers a detail record under its IMDb id.
func (f *FakeOMDB) AddRecord(imdbID string, rec OMDBRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[imdbID] = rec
}

// AddSearch registers results for an exact title query.
func (f *FakeOMDB) AddSearch(title string, recs []OMDBRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches[title] = recs
}

func (f *FakeOMDB) handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if imdbID := q.Get("i"); imdbID != "" {
		rec, ok := f.records[imdbID]
		if !ok {
			json.NewEncoder(w).Encode(map[string]string{
				"Response": "False",
				"Error":    "Incorrect IMDb ID.",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"Response": "True",
			"Title":    orNA(rec.Title),
			"Year":     orNA(rec.Year),
			"Director": orNA(rec.Director),
			"Genre":    orNA(rec.Genre),
			"Plot":     orNA(rec.Plot),
			"Poster":   orNA(rec.Poster),
			"imdbID":   imdbID,
		})
		return
	}

	if title := q.Get("s"); title != "" {
		recs, ok := f.searches[title]
		if !ok {
			json.NewEncoder(w).Encode(map[string]string{
				"Response": "False",
				"Error":    "Movie not found!",
			})
			return
		}
		search := make([]map[string]string, len(recs))
		for i, rec := range recs {
			search[i] = map[string]string{
				"Title":  rec.Title,
				"Year":   rec.Year,
				"imdbID": "tt-search-result",
				"Type":   "movie",
				"Poster": orNA(rec.Poster),
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"Response": "True",
			"Search":   search,
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"Response": "False",
		"Error":    "Something went wrong.",
	})
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
