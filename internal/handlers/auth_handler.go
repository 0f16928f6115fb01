package handlers

import (
	"errors"
	"time"

	"videoteca-backend/internal/config"
	"videoteca-backend/internal/middleware"
	"videoteca-backend/internal/services"
	"videoteca-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	config  *config.AuthConfig
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, cfg *config.AuthConfig, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  cfg,
		logger:  logger,
	}
}

// Login godoc
// @Summary Authenticate and open a session
// @Description Validates credentials and sets the signed session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} models.SessionView
// @Failure 401 {object} utils.StandardResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Authorize(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		h.logger.WithError(err).Error("Login failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed")
	}

	token, err := h.service.IssueSession(user)
	if err != nil {
		h.logger.WithError(err).Error("Failed to issue session token")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.config.SessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	claims, err := h.service.ParseSession(token)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render session")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(h.service.RenderSession(claims))
}

// Logout godoc
// @Summary Close the session
// @Tags auth
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "Logged out", nil)
}

// GetSession godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionView
// @Failure 401 {object} utils.StandardResponse
// @Router /api/auth/session [get]
func (h *AuthHandler) GetSession(c *fiber.Ctx) error {
	claims := middleware.SessionFromContext(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}
	return c.JSON(h.service.RenderSession(claims))
}
