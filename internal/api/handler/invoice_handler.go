package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// InvoiceHandler serves the owner-scoped invoice endpoints.
type InvoiceHandler struct {
	invoiceService ports.InvoiceService
}

func NewInvoiceHandler(invoiceService ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

type createInvoiceRequest struct {
	ProjectID  string     `json:"projectId"`
	ClientName string     `json:"clientName" validate:"required"`
	Services   string     `json:"services"`
	Amount     float64    `json:"amount" validate:"required,gt=0"`
	DueDate    *time.Time `json:"dueDate"`
	Status     string     `json:"status"`
}

type updateInvoiceRequest struct {
	ClientName *string    `json:"clientName"`
	Services   *string    `json:"services"`
	Amount     *float64   `json:"amount"`
	DueDate    *time.Time `json:"dueDate"`
	Status     *string    `json:"status"`
}

// Create adds an invoice owned by the caller.
//
// @Summary      Create invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateInvoiceInput{
		UserID:     claims.UserID,
		ProjectID:  req.ProjectID,
		ClientName: req.ClientName,
		Services:   req.Services,
		Amount:     req.Amount,
		Status:     domain.InvoiceStatus(req.Status),
	}
	if req.DueDate != nil {
		in.DueDate = *req.DueDate
	}

	invoice, err := h.invoiceService.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, invoice)
}

// List returns the caller's invoices, optionally filtered by project or status.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  query    string  false  "Filter by project"
// @Param        status     query    string  false  "Filter by status"
// @Success      200  {array}  domain.Invoice
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	invoices, err := h.invoiceService.List(c.Request().Context(), claims.UserID,
		c.QueryParam("projectId"), domain.InvoiceStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Get returns one of the caller's invoices by id.
//
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  domain.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	invoice, err := h.invoiceService.Get(c.Request().Context(), c.Param("id"), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// Update applies a partial update to one of the caller's invoices.
//
// @Summary      Update invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Invoice ID"
// @Param        body  body      updateInvoiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Invoice
// @Failure      404   {object}  map[string]string
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.UpdateInvoiceInput{
		ClientName: req.ClientName,
		Services:   req.Services,
		Amount:     req.Amount,
		DueDate:    req.DueDate,
	}
	if req.Status != nil {
		status := domain.InvoiceStatus(*req.Status)
		in.Status = &status
	}

	invoice, err := h.invoiceService.Update(c.Request().Context(), c.Param("id"), claims.UserID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// Delete removes one of the caller's invoices.
//
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.invoiceService.Delete(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "invoice deleted"})
}
