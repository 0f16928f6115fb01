package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"videoteca-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTMDBSearchFiltersUnusableResults(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "cidade de deus", r.URL.Query().Get("query"))
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 1, "title": "Cidade de Deus", "release_date": "2002-08-30"},
				{"id": 2, "title": "", "release_date": "2002-08-30"},
				{"id": 3, "title": "Sem Data", "release_date": ""},
				{"id": 4, "title": "Data Curta", "release_date": "20"}
			],
			"total_results": 4
		}`))
	}))
	defer server.Close()

	svc := NewTMDBService(&config.TMDBConfig{
		BearerToken: "test-token",
		BaseURL:     server.URL,
		HTTPTimeout: 5 * time.Second,
	}, testLogger())

	resp, err := svc.SearchMovies(context.Background(), "cidade de deus")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Cidade de Deus", resp.Results[0].Title)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestTMDBUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_message": "Invalid API key"}`))
	}))
	defer server.Close()

	svc := NewTMDBService(&config.TMDBConfig{
		BaseURL:     server.URL,
		HTTPTimeout: 5 * time.Second,
	}, testLogger())

	_, err := svc.SearchMovies(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestTMDBMovieDetailPassthrough(t *testing.T) {
	payload := `{"id": 598, "title": "Cidade de Deus", "runtime": 130}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/598", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	svc := NewTMDBService(&config.TMDBConfig{
		BaseURL:     server.URL,
		HTTPTimeout: 5 * time.Second,
	}, testLogger())

	detail, err := svc.GetMovieDetail(context.Background(), 598)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(detail))
}

func TestYouTubeSearchMapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "trailer cidade de deus", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": {"videoId": "abc123"},
					"snippet": {
						"title": "Trailer Oficial",
						"channelTitle": "Canal",
						"thumbnails": {"medium": {"url": "http://img/1.jpg"}}
					}
				},
				{
					"id": {"videoId": ""},
					"snippet": {"title": "Playlist sem vídeo"}
				}
			]
		}`))
	}))
	defer server.Close()

	svc := NewYouTubeService(&config.YouTubeConfig{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		HTTPTimeout: 5 * time.Second,
	}, testLogger())

	results, err := svc.SearchVideos(context.Background(), "trailer cidade de deus")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc123", results[0].ID)
	assert.Equal(t, "Trailer Oficial", results[0].Title)
	assert.Equal(t, "http://img/1.jpg", results[0].Thumbnail)
	assert.Equal(t, "Canal", results[0].ChannelTitle)
}

func TestYouTubeUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	svc := NewYouTubeService(&config.YouTubeConfig{
		BaseURL:     server.URL,
		HTTPTimeout: 5 * time.Second,
	}, testLogger())

	_, err := svc.SearchVideos(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUpstream)
}
