package handlers

import (
	"errors"
	"strconv"

	"videoteca-backend/internal/services"
	"videoteca-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ExternalHandler proxies the movie-metadata and video-search providers.
type ExternalHandler struct {
	tmdb    services.TMDBService
	youtube services.YouTubeService
	logger  *logrus.Logger
}

func NewExternalHandler(tmdb services.TMDBService, youtube services.YouTubeService, logger *logrus.Logger) *ExternalHandler {
	return &ExternalHandler{
		tmdb:    tmdb,
		youtube: youtube,
		logger:  logger,
	}
}

// SearchTMDB godoc
// @Summary Search movie metadata
// @Tags tmdb
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} models.TMDBSearchResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /api/tmdb/search [get]
func (h *ExternalHandler) SearchTMDB(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "query is required")
	}

	response, err := h.tmdb.SearchMovies(c.Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrUpstream) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Metadata provider unavailable")
		}
		h.logger.WithError(err).Error("TMDB search failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Metadata provider unavailable")
	}

	return c.JSON(response)
}

// GetTMDBMovie godoc
// @Summary Movie metadata detail
// @Tags tmdb
// @Produce json
// @Param id path int true "TMDB movie ID"
// @Success 200 {object} object
// @Failure 500 {object} utils.StandardResponse
// @Router /api/tmdb/movie/{id} [get]
func (h *ExternalHandler) GetTMDBMovie(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	detail, err := h.tmdb.GetMovieDetail(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("TMDB detail failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Metadata provider unavailable")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(detail)
}

// SearchYouTube godoc
// @Summary Search trailer videos
// @Tags youtube
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.VideoResult
// @Failure 500 {object} utils.StandardResponse
// @Router /api/youtube/search [get]
func (h *ExternalHandler) SearchYouTube(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "q is required")
	}

	results, err := h.youtube.SearchVideos(c.Context(), query)
	if err != nil {
		h.logger.WithError(err).Error("YouTube search failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Video provider unavailable")
	}

	return c.JSON(results)
}
