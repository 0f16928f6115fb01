package services

import (
	"context"
	"errors"
	"fmt"

	"videoteca-backend/internal/models"
	"videoteca-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned when the username collides with a non-deleted
// account.
var ErrUsernameTaken = errors.New("username already in use")

// ErrAccountsExist blocks the one-time admin bootstrap endpoint once any
// account has been created.
var ErrAccountsExist = errors.New("accounts already exist")

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User, password string) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, user *models.User, password string) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error

	// CreateFirstAdmin serves the one-time bootstrap endpoint; it fails once
	// any account exists.
	CreateFirstAdmin(ctx context.Context, user *models.User, password string) (*models.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, user *models.User, password string) (*models.User, error) {
	if user.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	exists, err := s.repo.UsernameExists(ctx, user.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the profile fields; the password is re-hashed only when
// a new one is supplied.
func (s *userService) UpdateUser(ctx context.Context, id uint, user *models.User, password string) (*models.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Username == "" {
		return nil, fmt.Errorf("username is required")
	}

	exists, err := s.repo.UsernameExists(ctx, user.Username, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	user.ID = id
	user.CreatedAt = existing.CreatedAt
	user.PasswordHash = existing.PasswordHash
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *userService) CreateFirstAdmin(ctx context.Context, user *models.User, password string) (*models.User, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil, ErrAccountsExist
	}

	user.IsAdmin = true
	return s.CreateUser(ctx, user, password)
}
