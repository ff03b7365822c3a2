package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// CurrencyHandler serves the conversion lookup and saved-conversion endpoints.
type CurrencyHandler struct {
	currencyService ports.CurrencyService
}

func NewCurrencyHandler(currencyService ports.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

type saveConversionRequest struct {
	FromCurrency string  `json:"fromCurrency" validate:"required,len=3"`
	ToCurrency   string  `json:"toCurrency"   validate:"required,len=3"`
	Amount       float64 `json:"amount"       validate:"required,gt=0"`
}

// Convert performs a one-off currency conversion without persisting it.
//
// @Summary      Convert currency
// @Tags         currency
// @Produce      json
// @Security     BearerAuth
// @Param        from    query     string  true  "Source currency code"
// @Param        to      query     string  true  "Target currency code"
// @Param        amount  query     number  true  "Amount to convert"
// @Success      200     {object}  ports.ConversionResult
// @Failure      400     {object}  map[string]string
// @Router       /currency [get]
func (h *CurrencyHandler) Convert(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to query parameters are required")
	}

	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must be a number")
	}

	result, err := h.currencyService.Convert(c.Request().Context(), from, to, amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// SaveConversion converts and stores the record for the caller.
//
// @Summary      Save currency conversion
// @Tags         currency
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveConversionRequest  true  "Conversion"
// @Success      201   {object}  domain.CurrencyConversion
// @Failure      400   {object}  map[string]string
// @Router       /currency-conversions [post]
func (h *CurrencyHandler) SaveConversion(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req saveConversionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conversion, err := h.currencyService.SaveConversion(c.Request().Context(),
		claims.UserID, req.FromCurrency, req.ToCurrency, req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, conversion)
}

// ListConversions returns the caller's saved conversions.
//
// @Summary      List saved conversions
// @Tags         currency
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CurrencyConversion
// @Router       /currency-conversions [get]
func (h *CurrencyHandler) ListConversions(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	conversions, err := h.currencyService.ListConversions(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversions)
}

// DeleteConversion removes one of the caller's saved conversions.
//
// @Summary      Delete saved conversion
// @Tags         currency
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Conversion ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /currency-conversions/{id} [delete]
func (h *CurrencyHandler) DeleteConversion(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.currencyService.DeleteConversion(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "conversion deleted"})
}
