package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/application/usecase"
)

// TripHandler serves the trip catalog.
type TripHandler struct {
	uc *usecase.TripUseCase
}

// NewTripHandler builds the trip handler.
func NewTripHandler(uc *usecase.TripUseCase) *TripHandler {
	return &TripHandler{uc: uc}
}

// Create godoc
// @Summary      Create a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TripRequest  true  "trip fields"
// @Success      201   {object}  dto.TripResponse
// @Router       /api/trips [post]
func (h *TripHandler) Create(c *fiber.Ctx) error {
	var in dto.TripRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TripResponse
// @Router       /api/trips [get]
func (h *TripHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "trip id"
// @Success      200  {object}  dto.TripResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trips/{id} [get]
func (h *TripHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "trip id"
// @Param        body  body  dto.TripRequest  true  "trip fields"
// @Success      200   {object}  dto.TripResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trips/{id} [put]
func (h *TripHandler) Update(c *fiber.Ctx) error {
	var in dto.TripRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a trip
// @Tags         trips
// @Security     BearerAuth
// @Param        id  path  string  true  "trip id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trips/{id} [delete]
func (h *TripHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
