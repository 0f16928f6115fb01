package repository

import (
	"testing"
	"time"

	"videoteca-backend/internal/config"
	"videoteca-backend/internal/database"
	"videoteca-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB opens a fresh in-memory SQLite database per test so the
// repositories run against a real GORM backend without Postgres.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	dialector := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Genre{},
		&models.Movie{},
		&models.MovieGenre{},
	))

	return database.NewFromGorm(db, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
}

func testMovie(title, code string) *models.Movie {
	return &models.Movie{
		Title:      title,
		UniqueCode: code,
		Year:       2002,
		MediaType:  models.MediaTypeDVD,
	}
}

func watched(m *models.Movie, at time.Time) *models.Movie {
	m.WatchedAt = &at
	return m
}
