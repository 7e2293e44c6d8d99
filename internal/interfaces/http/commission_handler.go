package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tripdesk/tripdesk-api/internal/application/commission"
	"github.com/tripdesk/tripdesk-api/internal/application/dto"
)

// CommissionHandler serves the self-service commission view plus the
// admin per-agent detail.
type CommissionHandler struct {
	uc *commission.UseCase
}

// NewCommissionHandler builds the commission handler.
func NewCommissionHandler(uc *commission.UseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// MyCommission godoc
// @Summary      Own commission summary
// @Description  Aggregated live over the caller's confirmed and completed bookings.
// @Tags         commissions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MyCommissionResponse
// @Router       /api/auth/my-commission [get]
func (h *CommissionHandler) MyCommission(c *fiber.Ctx) error {
	out, err := h.uc.MyCommission(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MyCommissionPDF godoc
// @Summary      Own commission statement as PDF
// @Tags         commissions
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/auth/my-commission/pdf [get]
func (h *CommissionHandler) MyCommissionPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.Statement(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// AgentDetail godoc
// @Summary      Per-agent commission detail
// @Description  Reads persisted commission records; optional from/to window (YYYY-MM-DD).
// @Tags         commissions
// @Produce      json
// @Security     BearerAuth
// @Param        agentId  path   string  true   "agent user id"
// @Param        from     query  string  false  "window start"
// @Param        to       query  string  false  "window end (inclusive)"
// @Success      200  {array}  dto.AgentCommissionRow
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/commissions/{agentId} [get]
func (h *CommissionHandler) AgentDetail(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c.Query("to"), true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be YYYY-MM-DD"})
	}
	out, err := h.uc.AgentDetail(c.Context(), c.Params("agentId"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseDateQuery parses a YYYY-MM-DD query value. endOfDay pushes the
// instant to the last nanosecond so "to" stays inclusive.
func parseDateQuery(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
