package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"videoteca-backend/internal/database"
	"videoteca-backend/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)

	// NameExists compares lowercased, trimmed names; excludeID skips the genre
	// being renamed.
	NameExists(ctx context.Context, name string, excludeID uint) (bool, error)

	// CountMovies counts active catalog items referencing the genre.
	CountMovies(ctx context.Context, genreID uint) (int64, error)
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *genreRepository) Update(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(genre).Error
}

func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Genre{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Find(&genres, ids).Error
	return genres, err
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error
	return genres, err
}

func (r *genreRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	normalized := strings.ToLower(strings.TrimSpace(name))

	var count int64
	query := r.db.WithContext(ctx).Model(&models.Genre{}).
		Where("LOWER(TRIM(name)) = ?", normalized)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *genreRepository) CountMovies(ctx context.Context, genreID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Joins("JOIN movie_genres ON movie_genres.movie_id = movies.id").
		Where("movie_genres.genre_id = ?", genreID).
		Count(&count).Error
	return count, err
}
