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

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetMovies godoc
// @Summary List catalog items
// @Description List the collection with pagination and an optional unwatched-only filter; soft-deleted items are never returned
// @Tags filmes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param unwatched query bool false "Only unwatched items"
// @Success 200 {object} map[string]interface{} "movies and totalMovies"
// @Failure 500 {object} utils.StandardResponse
// @Router /api/filmes [get]
func (h *MovieHandler) GetMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	unwatchedOnly := c.Query("unwatched") == "true"

	movies, total, err := h.service.ListMovies(ctx, page, limit, unwatchedOnly)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	if movies == nil {
		movies = []models.Movie{}
	}

	return c.JSON(fiber.Map{
		"movies":      movies,
		"totalMovies": total,
	})
}

// GetMovie godoc
// @Summary Get a catalog item
// @Tags filmes
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} utils.StandardResponse
// @Router /api/filmes/{id} [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovie(ctx, uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}

	return c.JSON(movie)
}

// CreateMovie godoc
// @Summary Register a catalog item
// @Tags filmes
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie payload"
// @Success 201 {object} models.Movie
// @Failure 400 {object} utils.StandardResponse
// @Router /api/filmes [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.CreateMovie(ctx, req.toModel(), req.GenreIDs)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateCode) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unique code already in use")
		}
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

// UpdateMovie godoc
// @Summary Update a catalog item
// @Description Full replace of the item fields; the genre set is replaced with the single genreId supplied
// @Tags filmes
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieUpdateRequest true "Movie payload"
// @Success 200 {object} models.Movie
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /api/filmes/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.UpdateMovie(ctx, uint(id), req.toModel(), req.GenreID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(movie)
}

// DeleteMovie godoc
// @Summary Remove a catalog item
// @Description Marks the item deleted; the row and its genre associations are kept
// @Tags filmes
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /api/filmes/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(ctx, uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// ToggleWatched godoc
// @Summary Toggle the watched state
// @Tags filmes
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} utils.StandardResponse
// @Router /api/filmes/{id}/watched [post]
func (h *MovieHandler) ToggleWatched(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.ToggleWatched(ctx, uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to toggle watched state")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to toggle watched state")
	}

	return c.JSON(movie)
}

// GenerateCode godoc
// @Summary Reserve a unique display code
// @Tags filmes
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} utils.StandardResponse
// @Router /api/filmes/generate-code [get]
func (h *MovieHandler) GenerateCode(c *fiber.Ctx) error {
	ctx := c.Context()

	code, err := h.service.ReserveUniqueCode(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to reserve unique code")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate unique code")
	}

	return c.JSON(fiber.Map{"uniqueCode": code})
}

// GetStats godoc
// @Summary Collection statistics report
// @Description Aggregates over non-deleted items; either the whole report succeeds or a generic error is returned
// @Tags filmes
// @Produce json
// @Success 200 {object} models.CollectionStats
// @Failure 500 {object} utils.StandardResponse
// @Router /api/filmes/stats [get]
func (h *MovieHandler) GetStats(c *fiber.Ctx) error {
	ctx := c.Context()

	stats, err := h.service.GetCollectionStats(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute collection stats")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Statistics unavailable")
	}

	return c.JSON(stats)
}
