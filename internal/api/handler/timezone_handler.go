package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// TimezoneHandler serves the timezone lookup endpoint.
type TimezoneHandler struct {
	timezoneService ports.TimezoneService
}

func NewTimezoneHandler(timezoneService ports.TimezoneService) *TimezoneHandler {
	return &TimezoneHandler{timezoneService: timezoneService}
}

// Lookup resolves a free-text location to its timezone.
//
// @Summary      Lookup timezone for a location
// @Tags         timezones
// @Produce      json
// @Security     BearerAuth
// @Param        location  query     string  true  "Free-text location"
// @Success      200       {object}  ports.TimezoneResult
// @Failure      400       {object}  map[string]string
// @Router       /timezones [get]
func (h *TimezoneHandler) Lookup(c echo.Context) error {
	location := c.QueryParam("location")
	if location == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location query parameter is required")
	}

	result, err := h.timezoneService.Lookup(c.Request().Context(), location)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
