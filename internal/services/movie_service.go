package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"videoteca-backend/internal/config"
	"videoteca-backend/internal/models"
	"videoteca-backend/internal/repository"
	"videoteca-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

// ErrDuplicateCode is returned when the supplied display code is already taken.
var ErrDuplicateCode = errors.New("unique code already in use")

type MovieService interface {
	ListMovies(ctx context.Context, page, limit int, unwatchedOnly bool) ([]models.Movie, int64, error)
	GetMovie(ctx context.Context, id uint) (*models.Movie, error)
	CreateMovie(ctx context.Context, movie *models.Movie, genreIDs []uint) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id uint, movie *models.Movie, genreID uint) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error
	ToggleWatched(ctx context.Context, id uint) (*models.Movie, error)

	// ReserveUniqueCode generates display codes until one is collision-free.
	ReserveUniqueCode(ctx context.Context) (string, error)

	GetCollectionStats(ctx context.Context) (*models.CollectionStats, error)
}

type movieService struct {
	repo         repository.MovieRepository
	genreRepo    repository.GenreRepository
	config       *config.Config
	logger       *logrus.Logger
	minioService *MinIOService
}

func NewMovieService(repo repository.MovieRepository, genreRepo repository.GenreRepository, minioService *MinIOService, cfg *config.Config, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:         repo,
		genreRepo:    genreRepo,
		minioService: minioService,
		config:       cfg,
		logger:       logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context, page, limit int, unwatchedOnly bool) ([]models.Movie, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return s.repo.FindAll(ctx, page, limit, unwatchedOnly)
}

func (s *movieService) GetMovie(ctx context.Context, id uint) (*models.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie, genreIDs []uint) (*models.Movie, error) {
	if err := validateMovie(movie); err != nil {
		return nil, err
	}
	if len(genreIDs) == 0 {
		return nil, fmt.Errorf("at least one genre is required")
	}

	exists, err := s.repo.CodeExists(ctx, movie.UniqueCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check unique code: %w", err)
	}
	if exists {
		return nil, ErrDuplicateCode
	}

	genres, err := s.genreRepo.FindByIDs(ctx, genreIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}
	if len(genres) != len(genreIDs) {
		return nil, fmt.Errorf("one or more genres do not exist")
	}

	movie.Genres = genres
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// UpdateMovie replaces every field and swaps the genre set for the single
// genre given; this mirrors the edit form, which submits one genre.
func (s *movieService) UpdateMovie(ctx context.Context, id uint, movie *models.Movie, genreID uint) (*models.Movie, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The display code is not editable.
	movie.UniqueCode = existing.UniqueCode

	if err := validateMovie(movie); err != nil {
		return nil, err
	}

	genres, err := s.genreRepo.FindByIDs(ctx, []uint{genreID})
	if err != nil {
		return nil, fmt.Errorf("failed to load genre: %w", err)
	}
	if len(genres) == 0 {
		return nil, fmt.Errorf("genre does not exist")
	}

	s.cleanupReplacedCover(existing.CoverURL, movie.CoverURL)

	movie.ID = id
	movie.CreatedAt = existing.CreatedAt
	movie.WatchedAt = existing.WatchedAt

	if err := s.repo.Update(ctx, movie, genres); err != nil {
		return nil, err
	}
	movie.Genres = genres
	return movie, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.cleanupReplacedCover(existing.CoverURL, "")

	return s.repo.SoftDelete(ctx, id)
}

// ToggleWatched flips the watched timestamp based on its value at read time.
// Two concurrent toggles on the same row can race; the last write wins.
func (s *movieService) ToggleWatched(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var watchedAt *time.Time
	if movie.WatchedAt == nil {
		now := time.Now().UTC()
		watchedAt = &now
	}

	if err := s.repo.SetWatchedAt(ctx, id, watchedAt); err != nil {
		return nil, err
	}
	movie.WatchedAt = watchedAt
	return movie, nil
}

// ReserveUniqueCode loops until an unused code comes up. The loop is unbounded
// on purpose: at 8 base-36 characters the collision probability is negligible.
func (s *movieService) ReserveUniqueCode(ctx context.Context) (string, error) {
	for {
		code := utils.GenerateUniqueCode()
		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check unique code: %w", err)
		}
		if !exists {
			return code, nil
		}
		s.logger.WithField("code", code).Warn("Unique code collision, regenerating")
	}
}

func (s *movieService) GetCollectionStats(ctx context.Context) (*models.CollectionStats, error) {
	now := time.Now().UTC()

	stats, err := s.repo.CollectStats(ctx, now)
	if err != nil {
		return nil, err
	}

	stats.Unwatched = stats.TotalMovies - stats.Watched
	if stats.TotalMovies > 0 {
		stats.WatchedPercentage = int(math.Round(100 * float64(stats.Watched) / float64(stats.TotalMovies)))
	}
	stats.GeneratedAt = now

	return stats, nil
}

// cleanupReplacedCover removes the old cover object when a MinIO-hosted cover
// is replaced or its movie deleted. Failures only log; the catalog write is
// not held hostage to storage housekeeping.
func (s *movieService) cleanupReplacedCover(oldURL, newURL string) {
	if s.minioService == nil || oldURL == "" || oldURL == newURL {
		return
	}
	if !strings.Contains(oldURL, "http") || !strings.Contains(oldURL, s.config.MinIO.BucketName) {
		return
	}

	parts := strings.Split(oldURL, "/")
	filename := parts[len(parts)-1]
	if idx := strings.Index(filename, "?"); idx != -1 {
		filename = filename[:idx]
	}
	if err := s.minioService.DeleteFile(filename); err != nil {
		s.logger.WithError(err).Warn("Failed to delete old cover from MinIO")
	}
}

func validateMovie(movie *models.Movie) error {
	if movie.Title == "" {
		return fmt.Errorf("movie title is required")
	}
	if movie.Year < 1900 {
		return fmt.Errorf("invalid year: must be 1900 or later")
	}
	if !models.ValidMediaType(movie.MediaType) {
		return fmt.Errorf("invalid media type: must be DVD, BluRay or VHS")
	}
	if len(movie.UniqueCode) != 8 {
		return fmt.Errorf("unique code must be exactly 8 characters")
	}
	if movie.Rating != nil && (*movie.Rating < 0 || *movie.Rating > 10) {
		return fmt.Errorf("rating must be between 0 and 10")
	}
	if movie.Runtime != nil && *movie.Runtime <= 0 {
		return fmt.Errorf("runtime must be positive")
	}
	return nil
}
