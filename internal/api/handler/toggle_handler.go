package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/ports"
)

// ToggleHandler handles HTTP requests for feature toggles.
type ToggleHandler struct {
	service ports.ToggleService
}

func NewToggleHandler(service ports.ToggleService) *ToggleHandler {
	return &ToggleHandler{service: service}
}

type setToggleRequest struct {
	Enabled bool `json:"enabled"`
}

// List handles GET /v1/admin/toggles.
//
// @Summary      List feature toggles
// @Tags         toggles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.FeatureToggle
// @Router       /v1/admin/toggles [get]
func (h *ToggleHandler) List(c echo.Context) error {
	toggles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggles)
}

// Set handles PUT /v1/admin/toggles/:name.
//
// @Summary      Enable or disable a feature
// @Tags         toggles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string            true  "Feature name"
// @Param        body  body      setToggleRequest  true  "Desired state"
// @Success      200   {object}  domain.FeatureToggle
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/toggles/{name} [put]
func (h *ToggleHandler) Set(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req setToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	toggle, err := h.service.Set(c.Request().Context(), c.Param("name"), req.Enabled, principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggle)
}
