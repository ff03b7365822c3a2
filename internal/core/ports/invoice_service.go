package ports

import (
	"context"
	"time"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// CreateInvoiceInput carries the fields for a new invoice.
type CreateInvoiceInput struct {
	UserID     string
	ProjectID  string
	ClientName string
	Services   string
	Amount     float64
	DueDate    time.Time
	Status     domain.InvoiceStatus
}

// UpdateInvoiceInput carries a partial update; nil fields are left unchanged.
type UpdateInvoiceInput struct {
	ClientName *string
	Services   *string
	Amount     *float64
	DueDate    *time.Time
	Status     *domain.InvoiceStatus
}

// InvoiceService defines use-case operations for invoices.
type InvoiceService interface {
	Create(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error)
	Get(ctx context.Context, id, userID string) (*domain.Invoice, error)
	List(ctx context.Context, userID, projectID string, status domain.InvoiceStatus) ([]*domain.Invoice, error)
	Update(ctx context.Context, id, userID string, in UpdateInvoiceInput) (*domain.Invoice, error)
	Delete(ctx context.Context, id, userID string) error
}
