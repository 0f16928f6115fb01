package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"videoteca-backend/internal/config"
	"videoteca-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// ErrUpstream is surfaced for any non-success response from an external API;
// the upstream status and body stay in the server-side log.
var ErrUpstream = errors.New("upstream API failure")

type TMDBService interface {
	SearchMovies(ctx context.Context, query string) (*models.TMDBSearchResponse, error)
	GetMovieDetail(ctx context.Context, id int) (json.RawMessage, error)
}

type tmdbService struct {
	config     *config.TMDBConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewTMDBService(cfg *config.TMDBConfig, logger *logrus.Logger) TMDBService {
	return &tmdbService{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// SearchMovies proxies the TMDB search endpoint, dropping entries without a
// usable title or release date.
func (s *tmdbService) SearchMovies(ctx context.Context, query string) (*models.TMDBSearchResponse, error) {
	endpoint := fmt.Sprintf("%s/search/movie?query=%s&language=pt-BR", s.config.BaseURL, url.QueryEscape(query))

	body, err := s.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response models.TMDBSearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		s.logger.WithError(err).Error("Failed to decode TMDB search response")
		return nil, ErrUpstream
	}

	filtered := response.Results[:0]
	for _, result := range response.Results {
		if result.Title == "" || len(result.ReleaseDate) < 4 {
			continue
		}
		filtered = append(filtered, result)
	}
	response.Results = filtered

	return &response, nil
}

// GetMovieDetail passes the upstream detail payload through unchanged.
func (s *tmdbService) GetMovieDetail(ctx context.Context, id int) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/movie/%d?language=pt-BR", s.config.BaseURL, id)
	return s.fetch(ctx, endpoint)
}

func (s *tmdbService) fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.BearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.WithError(err).Error("TMDB request failed")
		return nil, ErrUpstream
	}
	defer resp.Body.Close()

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		s.logger.WithError(err).Error("Failed to read TMDB response")
		return nil, ErrUpstream
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"url":    endpoint,
		}).Error("TMDB returned non-success status")
		return nil, ErrUpstream
	}

	return body, nil
}
