package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/ports"
)

// UsageHandler handles HTTP requests for metered usage.
type UsageHandler struct {
	service ports.UsageService
}

func NewUsageHandler(service ports.UsageService) *UsageHandler {
	return &UsageHandler{service: service}
}

type usageTotalsResponse struct {
	StorageUsedGB  float64 `json:"storage_used_gb"`
	TransferUsedGB float64 `json:"transfer_used_gb"`
	TotalCostUSD   float64 `json:"total_cost_usd"`
	Customers      int64   `json:"customers"`
}

// Summary handles GET /v1/dashboard/usage — the caller's monthly records.
//
// @Summary      Monthly usage summary for the caller
// @Tags         usage
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.UsageRecord
// @Router       /v1/dashboard/usage [get]
func (h *UsageHandler) Summary(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	records, err := h.service.Summary(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// History handles GET /v1/dashboard/usage/history — point-in-time samples
// feeding the dashboard charts.
//
// @Summary      Usage sample history for the caller
// @Tags         usage
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Max samples (default 90)"
// @Success      200    {array}  domain.UsageSample
// @Router       /v1/dashboard/usage/history [get]
func (h *UsageHandler) History(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	samples, err := h.service.History(c.Request().Context(), principal.ID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, samples)
}

// Totals handles GET /v1/admin/usage — the platform-wide aggregate.
//
// @Summary      Platform-wide usage totals
// @Tags         usage
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usageTotalsResponse
// @Router       /v1/admin/usage [get]
func (h *UsageHandler) Totals(c echo.Context) error {
	totals, err := h.service.Totals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usageTotalsResponse{
		StorageUsedGB:  totals.StorageUsedGB,
		TransferUsedGB: totals.TransferUsedGB,
		TotalCostUSD:   totals.TotalCostUSD,
		Customers:      totals.Customers,
	})
}
