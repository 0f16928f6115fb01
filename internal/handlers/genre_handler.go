package handlers

import (
	"errors"
	"strconv"

	"videoteca-backend/internal/repository"
	"videoteca-backend/internal/services"
	"videoteca-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.GenreService
	logger  *logrus.Logger
}

func NewGenreHandler(service services.GenreService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

// GetGenres godoc
// @Summary List genres
// @Tags generos
// @Produce json
// @Success 200 {array} models.Genre
// @Router /api/generos [get]
func (h *GenreHandler) GetGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve genres")
	}
	return c.JSON(genres)
}

// CreateGenre godoc
// @Summary Create a genre
// @Description Genre names are unique ignoring case and surrounding whitespace
// @Tags generos
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre payload"
// @Success 201 {object} models.Genre
// @Failure 400 {object} utils.StandardResponse
// @Router /api/generos [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, err := h.service.CreateGenre(c.Context(), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Genre name already in use")
		}
		h.logger.WithError(err).Error("Failed to create genre")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(genre)
}

// UpdateGenre godoc
// @Summary Rename a genre
// @Tags generos
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body GenreRequest true "Genre payload"
// @Success 200 {object} models.Genre
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /api/generos/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, err := h.service.UpdateGenre(c.Context(), uint(id), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found")
		case errors.Is(err, services.ErrDuplicateName):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Genre name already in use")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update genre")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(genre)
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description Fails while any catalog item still references the genre
// @Tags generos
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /api/generos/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.DeleteGenre(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found")
		case errors.Is(err, services.ErrGenreInUse):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Genre is referenced by catalog items")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete genre")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete genre")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre deleted successfully", nil)
}
