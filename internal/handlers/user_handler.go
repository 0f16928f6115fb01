package handlers

import (
	"errors"
	"strconv"

	"videoteca-backend/internal/models"
	"videoteca-backend/internal/repository"
	"videoteca-backend/internal/services"
	"videoteca-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

func (r *UserRequest) toModel() *models.User {
	return &models.User{
		Username: r.Username,
		Name:     r.Name,
		Phone:    r.Phone,
		Address:  r.Address,
		IsAdmin:  r.IsAdmin,
	}
}

// GetUsers godoc
// @Summary List accounts
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /api/users [get]
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}
	return c.JSON(users)
}

// GetUser godoc
// @Summary Get an account
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.StandardResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.service.GetUser(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	return c.JSON(user)
}

// CreateUser godoc
// @Summary Create an account
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User payload"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.StandardResponse
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.CreateUser(c.Context(), req.toModel(), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username already in use")
		}
		h.logger.WithError(err).Error("Failed to create user")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser godoc
// @Summary Update an account
// @Description Password is re-hashed only when a new one is supplied
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UserRequest true "User payload"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.UpdateUser(c.Context(), uint(id), req.toModel(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrUsernameTaken):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username already in use")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update user")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(user)
}

// DeleteUser godoc
// @Summary Remove an account
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.service.DeleteUser(c.Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User deleted successfully", nil)
}

// CreateAdmin godoc
// @Summary One-time administrator bootstrap
// @Description Creates the first account with the admin flag; fails once any account exists
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User payload"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.StandardResponse
// @Router /api/users/create-admin [post]
func (h *UserHandler) CreateAdmin(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.CreateFirstAdmin(c.Context(), req.toModel(), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountsExist) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Accounts already exist")
		}
		h.logger.WithError(err).Error("Failed to bootstrap admin")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}
