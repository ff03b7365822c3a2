package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// InvoiceFilter narrows invoice listings. Zero values mean no filter.
type InvoiceFilter struct {
	UserID    string
	ProjectID string
	Status    domain.InvoiceStatus
}

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id, userID string) (*domain.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	Delete(ctx context.Context, id, userID string) error
	CountByStatus(ctx context.Context, status domain.InvoiceStatus) (int64, error)
	SumPaidAmount(ctx context.Context) (float64, error)
}
