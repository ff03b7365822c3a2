package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// ProjectHandler serves the owner-scoped project endpoints.
type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type createProjectRequest struct {
	Name     string     `json:"name" validate:"required"`
	Status   string     `json:"status"`
	DueDate  *time.Time `json:"dueDate"`
	Location string     `json:"location"`
	Currency string     `json:"currency"`
	Timezone string     `json:"timezone"`
}

type updateProjectRequest struct {
	Name     *string    `json:"name"`
	Status   *string    `json:"status"`
	DueDate  *time.Time `json:"dueDate"`
	Location *string    `json:"location"`
	Currency *string    `json:"currency"`
	Timezone *string    `json:"timezone"`
}

// Create adds a project owned by the caller.
//
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateProjectInput{
		UserID:   claims.UserID,
		Name:     req.Name,
		Status:   domain.TaskStatus(req.Status),
		Location: req.Location,
		Currency: req.Currency,
		Timezone: req.Timezone,
	}
	if req.DueDate != nil {
		in.DueDate = *req.DueDate
	}

	project, err := h.projectService.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// List returns the caller's projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns one of the caller's projects by id.
//
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.Get(c.Request().Context(), c.Param("id"), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update applies a partial update to one of the caller's projects.
//
// @Summary      Update project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project ID"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.UpdateProjectInput{
		Name:     req.Name,
		DueDate:  req.DueDate,
		Location: req.Location,
		Currency: req.Currency,
		Timezone: req.Timezone,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		in.Status = &status
	}

	project, err := h.projectService.Update(c.Request().Context(), c.Param("id"), claims.UserID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete removes one of the caller's projects.
//
// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "project deleted"})
}

// Earnings sums the paid invoices attached to one of the caller's projects.
//
// @Summary      Project earnings
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.ProjectEarnings
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/earnings [get]
func (h *ProjectHandler) Earnings(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	earnings, err := h.projectService.Earnings(c.Request().Context(), c.Param("id"), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, earnings)
}
