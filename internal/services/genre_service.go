package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"videoteca-backend/internal/models"
	"videoteca-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	// ErrDuplicateName is returned on a case-insensitive genre name collision.
	ErrDuplicateName = errors.New("genre name already in use")
	// ErrGenreInUse blocks deletion while catalog items reference the genre.
	ErrGenreInUse = errors.New("genre is referenced by catalog items")
)

type GenreService interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
	CreateGenre(ctx context.Context, name string) (*models.Genre, error)
	UpdateGenre(ctx context.Context, id uint, name string) (*models.Genre, error)
	DeleteGenre(ctx context.Context, id uint) error
}

type genreService struct {
	repo   repository.GenreRepository
	logger *logrus.Logger
}

func NewGenreService(repo repository.GenreRepository, logger *logrus.Logger) GenreService {
	return &genreService{
		repo:   repo,
		logger: logger,
	}
}

func (s *genreService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.repo.FindAll(ctx)
}

func (s *genreService) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("genre name is required")
	}

	exists, err := s.repo.NameExists(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check genre name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateName
	}

	genre := &models.Genre{Name: name}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, id uint, name string) (*models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("genre name is required")
	}

	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.NameExists(ctx, name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check genre name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateName
	}

	genre.Name = name
	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountMovies(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count genre references: %w", err)
	}
	if count > 0 {
		return ErrGenreInUse
	}

	return s.repo.Delete(ctx, id)
}
