package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

// TicketHandler handles HTTP requests for support tickets.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

type createTicketRequest struct {
	Subject       string `json:"subject"        validate:"required"`
	Description   string `json:"description"    validate:"required"`
	Category      string `json:"category"       validate:"required,oneof=project billing account technical other"`
	Priority      string `json:"priority"       validate:"omitempty,oneof=low normal high urgent"`
	AttachmentURL string `json:"attachment_url" validate:"omitempty,url"`
}

type setTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

// Create handles POST /v1/support/tickets.
//
// @Summary      Open a support ticket
// @Tags         support
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTicketRequest  true  "Support request"
// @Success      201   {object}  domain.SupportTicket
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/support/tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ticket, err := h.service.Create(c.Request().Context(), ports.CreateTicketInput{
		Subject:       req.Subject,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		AttachmentURL: req.AttachmentURL,
		Role:          principal.Role,
		ActorID:       principal.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}

// List handles GET /v1/support/tickets. Customers and videographers see
// their own tickets; admins see everything.
//
// @Summary      List support tickets
// @Tags         support
// @Produce      json
// @Security     BearerAuth
// @Param        status  query    string  false  "Filter by status (admin only)"
// @Success      200     {array}  domain.SupportTicket
// @Router       /v1/support/tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	tickets, err := h.service.List(c.Request().Context(), principal.Role, principal.ID, c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// Assign handles POST /v1/admin/tickets/:id/assign — the admin takes the ticket.
//
// @Summary      Take ownership of a ticket
// @Tags         support
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Ticket id"
// @Success      204  "assigned"
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/admin/tickets/{id}/assign [post]
func (h *TicketHandler) Assign(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Assign(c.Request().Context(), c.Param("id"), principal.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetStatus handles PATCH /v1/admin/tickets/:id/status.
//
// @Summary      Apply a ticket status transition
// @Tags         support
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Ticket id"
// @Param        body  body      setTicketStatusRequest  true  "Target status"
// @Success      204   "status updated"
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/tickets/{id}/status [patch]
func (h *TicketHandler) SetStatus(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req setTicketStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.service.SetStatus(c.Request().Context(), c.Param("id"),
		domain.TicketStatus(req.Status), principal.ID)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
