package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/ports"
)

// PayoutHandler handles HTTP requests for videographer payouts.
type PayoutHandler struct {
	service ports.PayoutService
}

func NewPayoutHandler(service ports.PayoutService) *PayoutHandler {
	return &PayoutHandler{service: service}
}

type createPayoutRequest struct {
	VideographerID string  `json:"videographer_id" validate:"required"`
	ProjectID      string  `json:"project_id"      validate:"required"`
	AssignmentID   string  `json:"assignment_id"`
	AmountUSD      float64 `json:"amount_usd"      validate:"required,gt=0"`
	PaymentMethod  string  `json:"payment_method"  validate:"required"`
}

type markPayoutPaidRequest struct {
	TransactionID string `json:"transaction_id"`
}

// Create handles POST /v1/admin/payouts — opens a pending payout.
//
// @Summary      Open a pending payout
// @Tags         payouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPayoutRequest  true  "Payout details"
// @Success      201   {object}  domain.Payout
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/payouts [post]
func (h *PayoutHandler) Create(c echo.Context) error {
	var req createPayoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	payout, err := h.service.Create(c.Request().Context(), ports.CreatePayoutInput{
		VideographerID: req.VideographerID,
		ProjectID:      req.ProjectID,
		AssignmentID:   req.AssignmentID,
		AmountUSD:      req.AmountUSD,
		PaymentMethod:  req.PaymentMethod,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payout)
}

// Approve handles POST /v1/admin/payouts/:id/approve.
//
// @Summary      Approve a pending payout
// @Tags         payouts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Payout id"
// @Success      200  {object}  domain.Payout
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/admin/payouts/{id}/approve [post]
func (h *PayoutHandler) Approve(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	payout, err := h.service.Approve(c.Request().Context(), c.Param("id"), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payout)
}

// MarkPaid handles POST /v1/admin/payouts/:id/pay.
//
// @Summary      Settle an approved payout
// @Tags         payouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true   "Payout id"
// @Param        body  body      markPayoutPaidRequest  false  "Optional transaction id"
// @Success      200   {object}  domain.Payout
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/payouts/{id}/pay [post]
func (h *PayoutHandler) MarkPaid(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req markPayoutPaidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	payout, err := h.service.MarkPaid(c.Request().Context(), c.Param("id"), principal.ID, req.TransactionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payout)
}

// ListMine handles GET /v1/videographer/payouts — the caller's own payouts.
//
// @Summary      List the caller's payouts
// @Tags         payouts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Payout
// @Router       /v1/videographer/payouts [get]
func (h *PayoutHandler) ListMine(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	payouts, err := h.service.ListForVideographer(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payouts)
}

// ListAll handles GET /v1/admin/payouts.
//
// @Summary      List all payouts
// @Tags         payouts
// @Produce      json
// @Security     BearerAuth
// @Param        status  query    string  false  "Filter by status (pending, approved, paid)"
// @Success      200     {array}  domain.Payout
// @Router       /v1/admin/payouts [get]
func (h *PayoutHandler) ListAll(c echo.Context) error {
	payouts, err := h.service.ListAll(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payouts)
}
