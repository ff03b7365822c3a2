package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// WorkspaceHandler serves the workspace search and saved-workspace endpoints.
type WorkspaceHandler struct {
	workspaceService ports.WorkspaceService
}

func NewWorkspaceHandler(workspaceService ports.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

type saveWorkspaceRequest struct {
	PlaceID   string  `json:"placeId" validate:"required"`
	Name      string  `json:"name"    validate:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Rating    float64 `json:"rating"`
}

// Search finds coworking spots near a free-text location.
//
// @Summary      Search workspaces
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Param        location  query     string  true  "Free-text location"
// @Success      200       {array}   ports.Place
// @Failure      400       {object}  map[string]string
// @Router       /workspaces/search [get]
func (h *WorkspaceHandler) Search(c echo.Context) error {
	location := c.QueryParam("location")
	if location == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location query parameter is required")
	}

	places, err := h.workspaceService.Search(c.Request().Context(), location)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, places)
}

// Save stores a workspace from a search result for the caller.
//
// @Summary      Save workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveWorkspaceRequest  true  "Workspace"
// @Success      201   {object}  domain.Workspace
// @Failure      400   {object}  map[string]string
// @Router       /workspaces [post]
func (h *WorkspaceHandler) Save(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req saveWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	workspace, err := h.workspaceService.Save(c.Request().Context(), ports.SaveWorkspaceInput{
		UserID:    claims.UserID,
		PlaceID:   req.PlaceID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Rating:    req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, workspace)
}

// List returns the caller's saved workspaces.
//
// @Summary      List saved workspaces
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Workspace
// @Router       /workspaces [get]
func (h *WorkspaceHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	workspaces, err := h.workspaceService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workspaces)
}

// Get returns one of the caller's saved workspaces by id.
//
// @Summary      Get saved workspace
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workspace ID"
// @Success      200  {object}  domain.Workspace
// @Failure      404  {object}  map[string]string
// @Router       /workspaces/{id} [get]
func (h *WorkspaceHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	workspace, err := h.workspaceService.Get(c.Request().Context(), c.Param("id"), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workspace)
}

// Delete removes one of the caller's saved workspaces.
//
// @Summary      Delete saved workspace
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workspace ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workspaces/{id} [delete]
func (h *WorkspaceHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.workspaceService.Delete(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "workspace deleted"})
}
