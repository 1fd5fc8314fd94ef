package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

type createInvoiceRequest struct {
	ProjectID  string     `json:"project_id"  validate:"required"`
	CustomerID string     `json:"customer_id" validate:"required"`
	AmountUSD  float64    `json:"amount_usd"  validate:"required,gt=0"`
	DueAt      *time.Time `json:"due_at"`
}

// Create handles POST /v1/admin/invoices.
//
// @Summary      Issue an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in := ports.CreateInvoiceInput{
		ProjectID:  req.ProjectID,
		CustomerID: req.CustomerID,
		AmountUSD:  req.AmountUSD,
	}
	if req.DueAt != nil {
		in.DueAt = *req.DueAt
	}

	invoice, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, invoice)
}

// ListMine handles GET /v1/dashboard/invoices — the customer's own invoices.
//
// @Summary      List the caller's invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Invoice
// @Router       /v1/dashboard/invoices [get]
func (h *InvoiceHandler) ListMine(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	invoices, err := h.service.ListForCustomer(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// ListAll handles GET /v1/admin/invoices.
//
// @Summary      List all invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Invoice
// @Router       /v1/admin/invoices [get]
func (h *InvoiceHandler) ListAll(c echo.Context) error {
	invoices, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// MarkPaid handles POST /v1/admin/invoices/:id/pay.
//
// @Summary      Mark an invoice paid
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Invoice id"
// @Success      204  "marked paid"
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/admin/invoices/{id}/pay [post]
func (h *InvoiceHandler) MarkPaid(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkPaid(c.Request().Context(), c.Param("id"), principal.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
