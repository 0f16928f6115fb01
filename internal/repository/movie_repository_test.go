package repository

import (
	"context"
	"testing"
	"time"

	"videoteca-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRepositoryCreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	genre := &models.Genre{Name: "Drama"}
	require.NoError(t, NewGenreRepository(db).Create(ctx, genre))

	runtime := 130
	rating := 8.7
	movie := testMovie("Cidade de Deus", "AB12CD34")
	movie.Runtime = &runtime
	movie.Rating = &rating
	movie.Genres = []models.Genre{*genre}

	require.NoError(t, repo.Create(ctx, movie))
	require.NotZero(t, movie.ID)

	found, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cidade de Deus", found.Title)
	assert.Equal(t, "AB12CD34", found.UniqueCode)
	assert.Equal(t, 130, *found.Runtime)
	assert.InDelta(t, 8.7, *found.Rating, 0.001)
	require.Len(t, found.Genres, 1)
	assert.Equal(t, "Drama", found.Genres[0].Name)
}

func TestMovieRepositoryFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMovieRepositorySoftDeleteHidesMovie(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := testMovie("Bacurau", "BC99XY11")
	require.NoError(t, repo.Create(ctx, movie))

	require.NoError(t, repo.SoftDelete(ctx, movie.ID))

	_, err := repo.FindByID(ctx, movie.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	movies, total, err := repo.FindAll(ctx, 1, 20, false)
	require.NoError(t, err)
	assert.Empty(t, movies)
	assert.Zero(t, total)

	assert.ErrorIs(t, repo.SoftDelete(ctx, movie.ID), ErrNotFound)
}

func TestMovieRepositoryFindAllPaginationAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testMovie("Central do Brasil", "CC000001")))
	require.NoError(t, repo.Create(ctx, testMovie("Aquarius", "AA000001")))
	require.NoError(t, repo.Create(ctx, testMovie("Bacurau", "BB000001")))

	page1, total, err := repo.FindAll(ctx, 1, 2, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "Aquarius", page1[0].Title)
	assert.Equal(t, "Bacurau", page1[1].Title)

	page2, total, err := repo.FindAll(ctx, 2, 2, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page2, 1)
	assert.Equal(t, "Central do Brasil", page2[0].Title)
}

func TestMovieRepositoryFindAllUnwatchedFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, watched(testMovie("Aquarius", "AA000001"), time.Now().UTC())))
	require.NoError(t, repo.Create(ctx, testMovie("Bacurau", "BB000001")))

	movies, total, err := repo.FindAll(ctx, 1, 20, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, movies, 1)
	assert.Equal(t, "Bacurau", movies[0].Title)
}

func TestMovieRepositorySetWatchedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := testMovie("Aquarius", "AA000001")
	require.NoError(t, repo.Create(ctx, movie))

	now := time.Now().UTC()
	require.NoError(t, repo.SetWatchedAt(ctx, movie.ID, &now))

	found, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, found.WatchedAt)

	require.NoError(t, repo.SetWatchedAt(ctx, movie.ID, nil))

	found, err = repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, found.WatchedAt)
}

func TestMovieRepositoryCodeExistsIncludesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := testMovie("Bacurau", "BC99XY11")
	require.NoError(t, repo.Create(ctx, movie))
	require.NoError(t, repo.SoftDelete(ctx, movie.ID))

	exists, err := repo.CodeExists(ctx, "BC99XY11")
	require.NoError(t, err)
	assert.True(t, exists, "codes of soft-deleted movies stay reserved")

	exists, err = repo.CodeExists(ctx, "ZZ99ZZ99")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMovieRepositoryUpdateReplacesGenres(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	genreRepo := NewGenreRepository(db)
	ctx := context.Background()

	drama := &models.Genre{Name: "Drama"}
	comedy := &models.Genre{Name: "Comédia"}
	require.NoError(t, genreRepo.Create(ctx, drama))
	require.NoError(t, genreRepo.Create(ctx, comedy))

	movie := testMovie("Aquarius", "AA000001")
	movie.Genres = []models.Genre{*drama}
	require.NoError(t, repo.Create(ctx, movie))

	updated := testMovie("Aquarius (2016)", "AA000001")
	updated.ID = movie.ID
	require.NoError(t, repo.Update(ctx, updated, []models.Genre{*comedy}))

	found, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aquarius (2016)", found.Title)
	require.Len(t, found.Genres, 1)
	assert.Equal(t, "Comédia", found.Genres[0].Name)
}

func TestMovieRepositoryCollectStatsEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	stats, err := repo.CollectStats(context.Background(), now)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalMovies)
	assert.Zero(t, stats.Watched)
	assert.Zero(t, stats.HighRated)
	assert.Zero(t, stats.WatchedLast30Days)
	assert.Empty(t, stats.ByMediaType)
	assert.Empty(t, stats.ByGenre)
	assert.Zero(t, stats.Runtime.Count)
	assert.Zero(t, stats.Runtime.TotalMinutes)
	assert.Empty(t, stats.RatingHistogram)

	require.Len(t, stats.WatchedByMonth, 12)
	assert.Equal(t, "2025-09", stats.WatchedByMonth[0].Month)
	assert.Equal(t, "2026-08", stats.WatchedByMonth[11].Month)
	for _, m := range stats.WatchedByMonth {
		assert.Zero(t, m.Count)
	}
}

func TestMovieRepositoryCollectStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	genreRepo := NewGenreRepository(db)
	ctx := context.Background()

	drama := &models.Genre{Name: "Drama"}
	require.NoError(t, genreRepo.Create(ctx, drama))

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	rHigh := 9.2
	rLow := 3.5
	rTen := 10.0
	run1 := 100
	run2 := 140

	a := testMovie("Aquarius", "AA000001")
	a.Rating = &rHigh
	a.Runtime = &run1
	a.Country = "Brasil"
	a.OriginalLanguage = "pt"
	a.Genres = []models.Genre{*drama}
	watched(a, now.AddDate(0, 0, -5))
	require.NoError(t, repo.Create(ctx, a))

	b := testMovie("Bacurau", "BB000001")
	b.MediaType = models.MediaTypeBluRay
	b.Rating = &rLow
	b.Runtime = &run2
	b.Country = "Brasil"
	b.OriginalLanguage = "pt"
	watched(b, now.AddDate(0, -3, 0))
	require.NoError(t, repo.Create(ctx, b))

	c := testMovie("Central do Brasil", "CC000001")
	c.Rating = &rTen
	require.NoError(t, repo.Create(ctx, c))

	deleted := testMovie("Excluído", "DD000001")
	require.NoError(t, repo.Create(ctx, deleted))
	require.NoError(t, repo.SoftDelete(ctx, deleted.ID))

	stats, err := repo.CollectStats(ctx, now)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalMovies, "soft-deleted movies are excluded")
	assert.EqualValues(t, 2, stats.Watched)
	assert.EqualValues(t, 2, stats.HighRated, "ratings >= 8 including 10")
	assert.EqualValues(t, 1, stats.WatchedLast30Days)

	mediaCounts := bucketMap(stats.ByMediaType)
	assert.EqualValues(t, 2, mediaCounts[models.MediaTypeDVD])
	assert.EqualValues(t, 1, mediaCounts[models.MediaTypeBluRay])

	genreCounts := bucketMap(stats.ByGenre)
	assert.EqualValues(t, 1, genreCounts["Drama"])

	countryCounts := bucketMap(stats.ByCountry)
	assert.EqualValues(t, 2, countryCounts["Brasil"])

	assert.EqualValues(t, 2, stats.Runtime.Count)
	assert.EqualValues(t, 240, stats.Runtime.TotalMinutes)
	assert.InDelta(t, 120, stats.Runtime.AverageMinutes, 0.001)
	assert.EqualValues(t, 100, stats.Runtime.ShortestMinutes)
	assert.EqualValues(t, 140, stats.Runtime.LongestMinutes)

	bands := map[int]int64{}
	for _, band := range stats.RatingHistogram {
		bands[band.Band] = band.Count
	}
	assert.EqualValues(t, 2, bands[9], "9.2 and 10 share the top band")
	assert.EqualValues(t, 1, bands[3])

	months := map[string]int64{}
	for _, m := range stats.WatchedByMonth {
		months[m.Month] = m.Count
	}
	assert.EqualValues(t, 1, months["2026-08"])
	assert.EqualValues(t, 1, months["2026-05"])
}

func bucketMap(buckets []models.StatBucket) map[string]int64 {
	out := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		out[b.Label] = b.Value
	}
	return out
}
