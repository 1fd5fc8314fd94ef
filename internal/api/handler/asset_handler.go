package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/ports"
)

// AssetHandler handles HTTP requests for asset metadata.
type AssetHandler struct {
	service ports.AssetService
}

func NewAssetHandler(service ports.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

type registerAssetRequest struct {
	Name    string  `json:"name"     validate:"required"`
	Type    string  `json:"type"     validate:"required"`
	FileURL string  `json:"file_url" validate:"required,url"`
	SizeGB  float64 `json:"size_gb"  validate:"required,gt=0"`
	Source  string  `json:"source"   validate:"required,oneof=customer north_bound"`
}

// Register handles POST /v1/{dashboard,videographer}/projects/:id/assets.
//
// @Summary      Register uploaded asset metadata on a project
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      registerAssetRequest  true  "Asset metadata"
// @Success      201   {object}  domain.Asset
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/dashboard/projects/{id}/assets [post]
func (h *AssetHandler) Register(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req registerAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	asset, err := h.service.Register(c.Request().Context(), ports.RegisterAssetInput{
		ProjectID: c.Param("id"),
		Name:      req.Name,
		Type:      req.Type,
		FileURL:   req.FileURL,
		SizeGB:    req.SizeGB,
		Source:    req.Source,
		Role:      principal.Role,
		ActorID:   principal.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, asset)
}

// ListForProject handles GET /v1/{dashboard,videographer,admin}/projects/:id/assets.
//
// @Summary      List a project's assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Project id"
// @Success      200  {array}  domain.Asset
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/dashboard/projects/{id}/assets [get]
func (h *AssetHandler) ListForProject(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	assets, err := h.service.ListForProject(c.Request().Context(), c.Param("id"), principal.Role, principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assets)
}

// Remove handles DELETE /v1/admin/assets/:id.
//
// @Summary      Delete asset metadata
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Asset id"
// @Success      204  "deleted"
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/assets/{id} [delete]
func (h *AssetHandler) Remove(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), c.Param("id"), principal.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
