package services

import (
	"context"
	"time"

	"videoteca-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockMovieRepo struct {
	mock.Mock
}

func (m *mockMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *mockMovieRepo) Update(ctx context.Context, movie *models.Movie, genres []models.Genre) error {
	return m.Called(ctx, movie, genres).Error(0)
}

func (m *mockMovieRepo) SoftDelete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMovieRepo) SetWatchedAt(ctx context.Context, id uint, watchedAt *time.Time) error {
	return m.Called(ctx, id, watchedAt).Error(0)
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if movie, ok := args.Get(0).(*models.Movie); ok {
		return movie, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) FindAll(ctx context.Context, page, limit int, unwatchedOnly bool) ([]models.Movie, int64, error) {
	args := m.Called(ctx, page, limit, unwatchedOnly)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockMovieRepo) CollectStats(ctx context.Context, now time.Time) (*models.CollectionStats, error) {
	args := m.Called(ctx, now)
	if stats, ok := args.Get(0).(*models.CollectionStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGenreRepo struct {
	mock.Mock
}

func (m *mockGenreRepo) Create(ctx context.Context, genre *models.Genre) error {
	return m.Called(ctx, genre).Error(0)
}

func (m *mockGenreRepo) Update(ctx context.Context, genre *models.Genre) error {
	return m.Called(ctx, genre).Error(0)
}

func (m *mockGenreRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGenreRepo) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if genre, ok := args.Get(0).(*models.Genre); ok {
		return genre, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGenreRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Genre, error) {
	args := m.Called(ctx, ids)
	genres, _ := args.Get(0).([]models.Genre)
	return genres, args.Error(1)
}

func (m *mockGenreRepo) FindAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]models.Genre)
	return genres, args.Error(1)
}

func (m *mockGenreRepo) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockGenreRepo) CountMovies(ctx context.Context, genreID uint) (int64, error) {
	args := m.Called(ctx, genreID)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) SoftDelete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) UsernameExists(ctx context.Context, username string, excludeID uint) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}
