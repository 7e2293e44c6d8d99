package http

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
)

// objectFetcher is the minimal contract the image proxy needs from the
// object store. *storage.S3Client implements it.
type objectFetcher interface {
	Fetch(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// ImageHandler proxies stored images (passport scans, attachments) so the
// bucket never has to be public.
type ImageHandler struct {
	store objectFetcher
}

// NewImageHandler builds the image proxy handler.
func NewImageHandler(store objectFetcher) *ImageHandler {
	return &ImageHandler{store: store}
}

// Serve godoc
// @Summary      Stream a stored image
// @Tags         images
// @Security     BearerAuth
// @Param        key  path  string  true  "object key"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/images/{key} [get]
func (h *ImageHandler) Serve(c *fiber.Ctx) error {
	key := c.Params("+")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "object key is required"})
	}
	body, contentType, err := h.store.Fetch(c.Context(), key)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(body)
}
