package handlers

import (
	"videoteca-backend/internal/services"
	"videoteca-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	minioService *services.MinIOService
	logger       *logrus.Logger
}

func NewUploadHandler(minioService *services.MinIOService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		minioService: minioService,
		logger:       logger,
	}
}

// PresignCoverUpload godoc
// @Summary Presign a cover image upload
// @Description Returns a short-lived PUT URL for the cover file and the public URL it will be served from
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /api/upload/presign [get]
func (h *UploadHandler) PresignCoverUpload(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.minioService.PresignCoverUpload(c.Context(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to presign cover upload")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to presign cover upload")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
