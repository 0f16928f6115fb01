package services

import (
	"context"
	"io"
	"testing"
	"time"

	"videoteca-backend/internal/config"
	"videoteca-backend/internal/models"
	"videoteca-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:         "test-secret",
		SessionTTL:        30 * 24 * time.Hour,
		BootstrapUsername: "admin",
		BootstrapPassword: "admin123",
	}
}

func TestEnsureBootstrapAdminCreatesFirstAccount(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Count", mock.Anything).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		if u.Username != "admin" || !u.IsAdmin {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")) == nil
	})).Return(nil)

	svc := NewAuthService(repo, testAuthConfig(), testLogger())
	require.NoError(t, svc.EnsureBootstrapAdmin(context.Background()))
	repo.AssertExpectations(t)
}

func TestEnsureBootstrapAdminSkipsWhenAccountsExist(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Count", mock.Anything).Return(int64(3), nil)

	svc := NewAuthService(repo, testAuthConfig(), testLogger())
	require.NoError(t, svc.EnsureBootstrapAdmin(context.Background()))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthorizeSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("FindByUsername", mock.Anything, "maria").Return(&models.User{
		ID:           7,
		Username:     "maria",
		PasswordHash: string(hash),
	}, nil)

	svc := NewAuthService(repo, testAuthConfig(), testLogger())
	user, err := svc.Authorize(context.Background(), "maria", "s3cret")
	require.NoError(t, err)
	assert.EqualValues(t, 7, user.ID)
}

func TestAuthorizeWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("FindByUsername", mock.Anything, "maria").Return(&models.User{
		Username:     "maria",
		PasswordHash: string(hash),
	}, nil)

	svc := NewAuthService(repo, testAuthConfig(), testLogger())
	_, err = svc.Authorize(context.Background(), "maria", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthorizeUnknownUser(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	svc := NewAuthService(repo, testAuthConfig(), testLogger())
	_, err := svc.Authorize(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionRoundtrip(t *testing.T) {
	svc := NewAuthService(new(mockUserRepo), testAuthConfig(), testLogger())

	user := &models.User{ID: 7, Username: "maria", Name: "Maria", IsAdmin: true}
	token, err := svc.IssueSession(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseSession(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseSessionRejectsForgedToken(t *testing.T) {
	issuer := NewAuthService(new(mockUserRepo), &config.AuthConfig{
		JWTSecret:  "other-secret",
		SessionTTL: time.Hour,
	}, testLogger())
	token, err := issuer.IssueSession(&models.User{ID: 1, Username: "maria"})
	require.NoError(t, err)

	svc := NewAuthService(new(mockUserRepo), testAuthConfig(), testLogger())
	_, err = svc.ParseSession(token)
	assert.Error(t, err)
}

func TestParseSessionRejectsGarbage(t *testing.T) {
	svc := NewAuthService(new(mockUserRepo), testAuthConfig(), testLogger())
	_, err := svc.ParseSession("not-a-token")
	assert.Error(t, err)
}

func TestRenderSessionDefaultsName(t *testing.T) {
	svc := NewAuthService(new(mockUserRepo), testAuthConfig(), testLogger())

	view := svc.RenderSession(&SessionClaims{UserID: 1, Username: "maria"})
	assert.Equal(t, "Usuário", view.Name)

	view = svc.RenderSession(&SessionClaims{UserID: 1, Username: "maria", Name: "Maria"})
	assert.Equal(t, "Maria", view.Name)
}
