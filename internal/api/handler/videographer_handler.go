package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/core/ports"
)

// VideographerHandler handles HTTP requests for the videographer directory.
type VideographerHandler struct {
	service ports.VideographerService
}

func NewVideographerHandler(service ports.VideographerService) *VideographerHandler {
	return &VideographerHandler{service: service}
}

// createVideographerRequest adds a directory entry for an existing
// videographer account; user_id is that account's id.
type createVideographerRequest struct {
	UserID         string `json:"user_id"         validate:"required"`
	Name           string `json:"name"            validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	PortfolioURL   string `json:"portfolio_url"   validate:"omitempty,url"`
	Certifications string `json:"certifications"`
	GearList       string `json:"gear_list"`
}

func (r createVideographerRequest) toInput() ports.UpsertVideographerInput {
	return ports.UpsertVideographerInput{
		UserID:         r.UserID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Location:       r.Location,
		PortfolioURL:   r.PortfolioURL,
		Certifications: r.Certifications,
		GearList:       r.GearList,
	}
}

type videographerProfileRequest struct {
	Name           string `json:"name"            validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	PortfolioURL   string `json:"portfolio_url"   validate:"omitempty,url"`
	Certifications string `json:"certifications"`
	GearList       string `json:"gear_list"`
}

func (r videographerProfileRequest) toInput() ports.UpsertVideographerInput {
	return ports.UpsertVideographerInput{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Location:       r.Location,
		PortfolioURL:   r.PortfolioURL,
		Certifications: r.Certifications,
		GearList:       r.GearList,
	}
}

// Create handles POST /v1/admin/videographers.
//
// @Summary      Add a directory entry
// @Tags         videographers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVideographerRequest  true  "Profile"
// @Success      201   {object}  domain.VideographerProfile
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/videographers [post]
func (h *VideographerHandler) Create(c echo.Context) error {
	var req createVideographerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// Get handles GET /v1/admin/videographers/:id.
//
// @Summary      Get a directory entry
// @Tags         videographers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Videographer id"
// @Success      200  {object}  domain.VideographerProfile
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/videographers/{id} [get]
func (h *VideographerHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// List handles GET /v1/admin/videographers.
//
// @Summary      Browse the videographer directory
// @Tags         videographers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.VideographerProfile
// @Router       /v1/admin/videographers [get]
func (h *VideographerHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// Profile handles GET /v1/videographer/profile.
//
// @Summary      Get the caller's directory entry
// @Tags         videographers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.VideographerProfile
// @Failure      404  {object}  errorResponse
// @Router       /v1/videographer/profile [get]
func (h *VideographerHandler) Profile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /v1/videographer/profile — the videographer
// maintains their own directory entry.
//
// @Summary      Update the caller's directory entry
// @Tags         videographers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      videographerProfileRequest  true  "Profile"
// @Success      200   {object}  domain.VideographerProfile
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/videographer/profile [put]
func (h *VideographerHandler) UpdateProfile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req videographerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.service.UpdateProfile(c.Request().Context(), principal.ID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
