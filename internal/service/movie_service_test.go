package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/repository/postgres"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/service"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovieService(t *testing.T, testDB *testutil.TestDB) (*service.MovieService, *testutil.FakeOMDB) {
	t.Helper()
	cfg := testutil.TestConfig()
	fake := testutil.NewFakeOMDB(t)
	cfg.OMDBBaseURL = fake.URL()
	repos := postgres.NewRepositories(testDB.DB)
	return service.NewMovieService(repos.Movie, service.NewOMDBService(cfg)), fake
}

func str(s string) *string { return &s }

func intp(i int) *int { return &i }

func TestMovieService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc, fake := newMovieService(t, testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	valid := service.CreateMovieInput{
		Title:    "Inception",
		Year:     2010,
		Director: "Christopher Nolan",
		Genre:    "Sci-Fi",
		IMDBID:   "tt1375666",
	}

	t.Run("poster enriched from provider", func(t *testing.T) {
		fake.AddRecord("tt1375666", testutil.OMDBRecord{
			Title:  "Inception",
			Poster: "https://example.com/inception.jpg",
		})

		movie, err := svc.Create(ctx, owner.ID, valid)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/inception.jpg", movie.Poster)
		assert.Equal(t, owner.ID, movie.UserID)
	})

	t.Run("duplicate title and year rejected", func(t *testing.T) {
		input := valid
		input.Director = "Someone Else" // other fields differing changes nothing
		_, err := svc.Create(ctx, owner.ID, input)
		assert.ErrorIs(t, err, domain.ErrDuplicateMovie)
	})

	t.Run("provider N/A poster falls back to placeholder", func(t *testing.T) {
		fake.AddRecord("tt0000010", testutil.OMDBRecord{Title: "No Poster Film"}) // Poster => N/A

		input := valid
		input.Title = "No Poster Film"
		input.IMDBID = "tt0000010"
		movie, err := svc.Create(ctx, owner.ID, input)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPoster, movie.Poster)
	})

	t.Run("provider outage never blocks the write", func(t *testing.T) {
		brokenDB := testDB // same database, broken provider
		broken, deadFake := newMovieService(t, brokenDB)
		deadFake.Close()

		input := valid
		input.Title = "Created During Outage"
		movie, err := broken.Create(ctx, owner.ID, input)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPoster, movie.Poster)
	})

	t.Run("validation failures reported before any write", func(t *testing.T) {
		input := service.CreateMovieInput{
			Title:    "",
			Year:     1700,
			Director: "",
			Genre:    "",
			IMDBID:   "",
		}
		_, err := svc.Create(ctx, owner.ID, input)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		var got []string
		for _, f := range vErr.Fields {
			got = append(got, f.Field)
		}
		assert.ElementsMatch(t, []string{"title", "year", "director", "genre", "imdbID"}, got)
	})

	t.Run("length bounds count runes not bytes", func(t *testing.T) {
		fake.AddRecord("tt0000012", testutil.OMDBRecord{Title: "Accented Film"})

		// 150 two-byte runes: over 200 bytes but well under 200 characters
		input := valid
		input.Title = strings.Repeat("á", 150)
		input.IMDBID = "tt0000012"
		_, err := svc.Create(ctx, owner.ID, input)
		require.NoError(t, err)

		over := valid
		over.Title = "Campos Largos"
		over.IMDBID = "tt0000013"
		over.Director = strings.Repeat("é", 101)
		over.Plot = strings.Repeat("ñ", 1001)
		_, err = svc.Create(ctx, owner.ID, over)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		var got []string
		for _, f := range vErr.Fields {
			got = append(got, f.Field)
		}
		assert.ElementsMatch(t, []string{"director", "plot"}, got)
	})

	t.Run("year bound follows the clock", func(t *testing.T) {
		fake.AddRecord("tt0000011", testutil.OMDBRecord{Title: "Future Film"})

		input := valid
		input.Title = "Future Film"
		input.IMDBID = "tt0000011"
		input.Year = domain.MaxReleaseYear(time.Now()) + 1
		_, err := svc.Create(ctx, owner.ID, input)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}

func TestMovieService_Get(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc, _ := newMovieService(t, testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	movie := testutil.NewMovieBuilder(owner).Build(t, testDB.DB)

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.Get(ctx, owner.ID, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, movie.ID, got.ID)
	})

	t.Run("non-owner gets forbidden, not missing", func(t *testing.T) {
		_, err := svc.Get(ctx, stranger.ID, movie.ID)
		assert.ErrorIs(t, err, domain.ErrNotMovieOwner)
	})

	t.Run("unknown id is missing for everyone", func(t *testing.T) {
		_, err := svc.Get(ctx, owner.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrMovieNotFound)
	})
}

func TestMovieService_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc, fake := newMovieService(t, testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		movie := testutil.NewMovieBuilder(owner).
			WithTitle("Original Title").
			WithPoster("https://example.com/old.jpg").
			Build(t, testDB.DB)

		updated, err := svc.Update(ctx, owner.ID, movie.ID, service.UpdateMovieInput{
			Plot: str("A new synopsis."),
		})
		require.NoError(t, err)
		assert.Equal(t, "Original Title", updated.Title)
		assert.Equal(t, "A new synopsis.", updated.Plot)
		assert.Equal(t, "https://example.com/old.jpg", updated.Poster)
	})

	t.Run("unchanged imdbID keeps the stored poster", func(t *testing.T) {
		movie := testutil.NewMovieBuilder(owner).
			WithIMDBID("tt0000020").
			WithPoster("https://example.com/keep.jpg").
			Build(t, testDB.DB)

		updated, err := svc.Update(ctx, owner.ID, movie.ID, service.UpdateMovieInput{
			IMDBID: str("tt0000020"),
			Genre:  str("Thriller"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/keep.jpg", updated.Poster)
	})

	t.Run("changed imdbID re-runs enrichment", func(t *testing.T) {
		fake.AddRecord("tt0000021", testutil.OMDBRecord{
			Title:  "Replacement",
			Poster: "https://example.com/new.jpg",
		})
		movie := testutil.NewMovieBuilder(owner).
			WithIMDBID("tt0000022").
			WithPoster("https://example.com/old.jpg").
			Build(t, testDB.DB)

		updated, err := svc.Update(ctx, owner.ID, movie.ID, service.UpdateMovieInput{
			IMDBID: str("tt0000021"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/new.jpg", updated.Poster)
		assert.Equal(t, "tt0000021", updated.IMDBID)
	})

	t.Run("changed imdbID with failed lookup falls back to placeholder", func(t *testing.T) {
		movie := testutil.NewMovieBuilder(owner).
			WithIMDBID("tt0000023").
			WithPoster("https://example.com/old.jpg").
			Build(t, testDB.DB)

		updated, err := svc.Update(ctx, owner.ID, movie.ID, service.UpdateMovieInput{
			IMDBID: str("tt-unknown"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPoster, updated.Poster)
	})

	t.Run("update into a duplicate triple", func(t *testing.T) {
		testutil.NewMovieBuilder(owner).WithTitle("Taken Title").WithYear(2001).Build(t, testDB.DB)
		movie := testutil.NewMovieBuilder(owner).WithTitle("Free Title").WithYear(2002).Build(t, testDB.DB)

		_, err := svc.Update(ctx, owner.ID, movie.ID, service.UpdateMovieInput{
			Title: str("Taken Title"),
			Year:  intp(2001),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateMovie)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		movie := testutil.NewMovieBuilder(owner).Build(t, testDB.DB)

		_, err := svc.Update(ctx, stranger.ID, movie.ID, service.UpdateMovieInput{
			Genre: str("Horror"),
		})
		assert.ErrorIs(t, err, domain.ErrNotMovieOwner)
	})

	t.Run("supplied fields are revalidated", func(t *testing.T) {
		movie := testutil.NewMovieBuilder(owner).Build(t, testDB.DB)

		_, err := svc.Update(ctx, owner.ID, movie.ID, service.UpdateMovieInput{
			Title: str(""),
			Year:  intp(1500),
		})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}

func TestMovieService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc, _ := newMovieService(t, testDB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	movie := testutil.NewMovieBuilder(owner).Build(t, testDB.DB)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := svc.Delete(ctx, stranger.ID, movie.ID)
		assert.ErrorIs(t, err, domain.ErrNotMovieOwner)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, owner.ID, movie.ID))

		_, err := svc.Get(ctx, owner.ID, movie.ID)
		assert.ErrorIs(t, err, domain.ErrMovieNotFound)
	})

	t.Run("repeat delete is not found", func(t *testing.T) {
		err := svc.Delete(ctx, owner.ID, movie.ID)
		assert.ErrorIs(t, err, domain.ErrMovieNotFound)
	})
}
