package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"videoteca-backend/internal/config"
	"videoteca-backend/internal/models"

	"github.com/sirupsen/logrus"
)

const maxVideoResults = 5

type YouTubeService interface {
	SearchVideos(ctx context.Context, query string) ([]models.VideoResult, error)
}

type youtubeService struct {
	config     *config.YouTubeConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewYouTubeService(cfg *config.YouTubeConfig, logger *logrus.Logger) YouTubeService {
	return &youtubeService{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// SearchVideos proxies the upstream search endpoint and reduces each entry to
// the shape the trailer picker consumes, keeping only the top matches.
func (s *youtubeService) SearchVideos(ctx context.Context, query string) ([]models.VideoResult, error) {
	endpoint := fmt.Sprintf("%s/search?part=snippet&type=video&maxResults=%d&q=%s&key=%s",
		s.config.BaseURL, maxVideoResults, url.QueryEscape(query), s.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.WithError(err).Error("YouTube request failed")
		return nil, ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WithField("status", resp.StatusCode).Error("YouTube returned non-success status")
		return nil, ErrUpstream
	}

	var response models.YouTubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		s.logger.WithError(err).Error("Failed to decode YouTube response")
		return nil, ErrUpstream
	}

	results := make([]models.VideoResult, 0, maxVideoResults)
	for _, item := range response.Items {
		if len(results) == maxVideoResults {
			break
		}
		if item.ID.VideoID == "" {
			continue
		}
		results = append(results, models.VideoResult{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}

	return results, nil
}
