package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"videoteca-backend/internal/config"
	"videoteca-backend/internal/models"
	"videoteca-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown-user and wrong-password failures
// at the HTTP boundary; the distinction stays in the server-side log only.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionClaims is the signed claim set carried by the session cookie.
type SessionClaims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// EnsureBootstrapAdmin creates the well-known administrator account when
	// no account exists yet. Called once from process initialization.
	EnsureBootstrapAdmin(ctx context.Context) error

	Authorize(ctx context.Context, username, password string) (*models.User, error)
	IssueSession(user *models.User) (string, error)
	ParseSession(token string) (*SessionClaims, error)
	RenderSession(claims *SessionClaims) models.SessionView
}

type authService struct {
	userRepo repository.UserRepository
	config   *config.AuthConfig
	logger   *logrus.Logger
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.AuthConfig, logger *logrus.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
		logger:   logger,
	}
}

func (s *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.config.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := &models.User{
		Username:     s.config.BootstrapUsername,
		PasswordHash: string(hash),
		Name:         "Administrador",
		IsAdmin:      true,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.logger.WithField("username", admin.Username).Info("Bootstrap administrator created")
	return nil
}

func (s *authService) Authorize(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.WithField("username", username).Debug("Login failed: user not found")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("username", username).Debug("Login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) IssueSession(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func (s *authService) ParseSession(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

func (s *authService) RenderSession(claims *SessionClaims) models.SessionView {
	name := claims.Name
	if name == "" {
		name = "Usuário"
	}
	return models.SessionView{
		UserID:   claims.UserID,
		Username: claims.Username,
		Name:     name,
		IsAdmin:  claims.IsAdmin,
	}
}
