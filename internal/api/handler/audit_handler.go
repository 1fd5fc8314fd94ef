package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

// AuditHandler serves the admin system log listing.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type listAuditResponse struct {
	Data       []*domain.AuditEvent `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}

// List handles GET /v1/admin/logs.
//
// @Summary      List system log entries
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        event_type  query     string  false  "Filter by event type (auth, storage, billing, system)"
// @Param        actor_id    query     string  false  "Filter by actor id"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Page size (default 20, max 100)"
// @Success      200         {object}  listAuditResponse
// @Router       /v1/admin/logs [get]
func (h *AuditHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.AuditFilter{
		EventType: c.QueryParam("event_type"),
		ActorID:   c.QueryParam("actor_id"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAuditResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}
