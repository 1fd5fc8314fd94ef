package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/northbound/studio-api/internal/api/metrics"
	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for production projects.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /v1/dashboard/projects — opens a draft project.
//
// @Summary      Create a draft project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project brief"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/dashboard/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		CustomerID: principal.ID,
		Title:      req.Title,
		Script:     req.Script,
		Deadline:   req.Deadline,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, project)
}

// Submit handles POST /v1/dashboard/projects/:id/submit.
//
// @Summary      Submit a draft project for estimation
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/dashboard/projects/{id}/submit [post]
func (h *ProjectHandler) Submit(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	project, err := h.service.Submit(c.Request().Context(), c.Param("id"), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Get handles GET /v1/{dashboard,videographer,admin}/projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/dashboard/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), c.Param("id"), principal.Role, principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// List handles GET /v1/{dashboard,videographer,admin}/projects. Results are
// scoped by the caller's role: customers see their own projects,
// videographers their assignments, admins everything.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        search  query     string  false  "Partial match on title"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 20, max 100)"
// @Success      200     {object}  listProjectsResponse
// @Router       /v1/dashboard/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListProjectsInput{
		Role:    principal.Role,
		ActorID: principal.ID,
		Status:  c.QueryParam("status"),
		Search:  c.QueryParam("search"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProjectsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Assign handles POST /v1/admin/projects/:id/assign.
//
// @Summary      Assign a videographer to an approved project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Project id"
// @Param        body  body      assignVideographerRequest  true  "Videographer to assign"
// @Success      204   "assigned"
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/projects/{id}/assign [post]
func (h *ProjectHandler) Assign(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req assignVideographerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.Assign(c.Request().Context(), c.Param("id"), req.VideographerID, principal.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetStatus handles PATCH /v1/{videographer,admin}/projects/:id/status.
//
// @Summary      Apply a project status transition
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Project id"
// @Param        body  body      setProjectStatusRequest  true  "Target status"
// @Success      204   "status updated"
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/projects/{id}/status [patch]
func (h *ProjectHandler) SetStatus(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req setProjectStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.service.SetStatus(c.Request().Context(), c.Param("id"),
		domain.ProjectStatus(req.Status), principal.Role, principal.ID)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
