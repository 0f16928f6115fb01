package repository

import (
	"context"
	"errors"
	"time"

	"videoteca-backend/internal/database"
	"videoteca-backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the referenced row is absent or soft-deleted.
var ErrNotFound = errors.New("record not found")

// ratingBandExpr buckets ratings into whole-point bands; ratings of exactly 10
// fold into the [9,10] band.
const ratingBandExpr = "CASE " +
	"WHEN rating < 1 THEN 0 " +
	"WHEN rating < 2 THEN 1 " +
	"WHEN rating < 3 THEN 2 " +
	"WHEN rating < 4 THEN 3 " +
	"WHEN rating < 5 THEN 4 " +
	"WHEN rating < 6 THEN 5 " +
	"WHEN rating < 7 THEN 6 " +
	"WHEN rating < 8 THEN 7 " +
	"WHEN rating < 9 THEN 8 " +
	"ELSE 9 END"

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie, genres []models.Genre) error
	SoftDelete(ctx context.Context, id uint) error
	SetWatchedAt(ctx context.Context, id uint, watchedAt *time.Time) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindAll(ctx context.Context, page, limit int, unwatchedOnly bool) ([]models.Movie, int64, error)

	// CodeExists checks the display code against every row, soft-deleted
	// included, matching the reservation semantics of the original system.
	CodeExists(ctx context.Context, code string) (bool, error)

	CollectStats(ctx context.Context, now time.Time) (*models.CollectionStats, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

// Update saves the movie fields and replaces its genre set atomically.
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie, genres []models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres").Save(movie).Error; err != nil {
			return err
		}
		return tx.Model(movie).Association("Genres").Replace(&genres)
	})
}

func (r *movieRepository) SoftDelete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) SetWatchedAt(ctx context.Context, id uint, watchedAt *time.Time) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Update("watched_at", watchedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

// FindAll returns one page ordered by title together with the total matching
// count. Both reads run in a single transaction so they observe the same
// snapshot.
func (r *movieRepository) FindAll(ctx context.Context, page, limit int, unwatchedOnly bool) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Movie{})
		if unwatchedOnly {
			query = query.Where("watched_at IS NULL")
		}

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		offset := (page - 1) * limit
		return query.Preload("Genres").
			Order("title ASC").
			Offset(offset).
			Limit(limit).
			Find(&movies).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&models.Movie{}).
		Where("unique_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CollectStats runs the fixed battery of aggregate reads in one transaction.
// Any failing query aborts the whole report.
func (r *movieRepository) CollectStats(ctx context.Context, now time.Time) (*models.CollectionStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stats := &models.CollectionStats{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Movie{}).Count(&stats.TotalMovies).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Where("watched_at IS NOT NULL").
			Count(&stats.Watched).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Select("media_type AS label, COUNT(*) AS value").
			Group("media_type").
			Order("value DESC").
			Find(&stats.ByMediaType).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Select("CAST(year AS TEXT) AS label, COUNT(*) AS value").
			Group("year").
			Order("value DESC").
			Limit(10).
			Find(&stats.ByYear).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Where("rating >= ?", 8.0).
			Count(&stats.HighRated).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Where("watched_at >= ?", now.AddDate(0, 0, -30)).
			Count(&stats.WatchedLast30Days).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Genre{}).
			Select("genres.name AS label, COUNT(movies.id) AS value").
			Joins("JOIN movie_genres ON movie_genres.genre_id = genres.id").
			Joins("JOIN movies ON movies.id = movie_genres.movie_id AND movies.deleted_at IS NULL").
			Group("genres.name").
			Order("value DESC").
			Limit(10).
			Find(&stats.ByGenre).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Select("country AS label, COUNT(*) AS value").
			Where("country <> ''").
			Group("country").
			Order("value DESC").
			Limit(10).
			Find(&stats.ByCountry).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Select("original_language AS label, COUNT(*) AS value").
			Where("original_language <> ''").
			Group("original_language").
			Order("value DESC").
			Limit(10).
			Find(&stats.ByLanguage).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Select("COALESCE(SUM(runtime), 0) AS total_minutes, " +
				"COALESCE(AVG(runtime), 0) AS average_minutes, " +
				"COALESCE(MIN(runtime), 0) AS shortest_minutes, " +
				"COALESCE(MAX(runtime), 0) AS longest_minutes, " +
				"COUNT(runtime) AS count").
			Where("runtime IS NOT NULL").
			Scan(&stats.Runtime).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Movie{}).
			Select(ratingBandExpr+" AS band, COUNT(*) AS count").
			Where("rating IS NOT NULL").
			Group("band").
			Order("count DESC, band DESC").
			Find(&stats.RatingHistogram).Error; err != nil {
			return err
		}

		return collectWatchedByMonth(tx, now, stats)
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// collectWatchedByMonth builds the trailing 12-month watched series, including
// months with zero watches.
func collectWatchedByMonth(tx *gorm.DB, now time.Time, stats *models.CollectionStats) error {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	var watchedTimes []time.Time
	err := tx.Model(&models.Movie{}).
		Where("watched_at IS NOT NULL AND watched_at >= ?", start).
		Pluck("watched_at", &watchedTimes).Error
	if err != nil {
		return err
	}

	counts := make(map[string]int64)
	for _, t := range watchedTimes {
		counts[t.UTC().Format("2006-01")]++
	}

	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		stats.WatchedByMonth = append(stats.WatchedByMonth, models.MonthlyCount{
			Month: month,
			Count: counts[month],
		})
	}
	return nil
}
