package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// InvoiceService implements invoice CRUD with ownership scoping.
type InvoiceService struct {
	repo ports.InvoiceRepository
	log  zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, log zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, log: log}
}

func (s *InvoiceService) Create(ctx context.Context, in ports.CreateInvoiceInput) (*domain.Invoice, error) {
	if in.ClientName == "" {
		return nil, fmt.Errorf("%w: client_name is required", domain.ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = domain.InvoicePending
	}
	if !domain.ValidInvoiceStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}

	invoice := &domain.Invoice{
		UserID:     in.UserID,
		ProjectID:  in.ProjectID,
		ClientName: in.ClientName,
		Services:   in.Services,
		Amount:     in.Amount,
		Date:       time.Now().UTC(),
		DueDate:    in.DueDate,
		Status:     in.Status,
	}

	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("invoice_id", created.ID).Str("user_id", in.UserID).Msg("invoice created")
	return created, nil
}

func (s *InvoiceService) Get(ctx context.Context, id, userID string) (*domain.Invoice, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *InvoiceService) List(ctx context.Context, userID, projectID string, status domain.InvoiceStatus) ([]*domain.Invoice, error) {
	if status != "" && !domain.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	return s.repo.List(ctx, ports.InvoiceFilter{UserID: userID, ProjectID: projectID, Status: status})
}

func (s *InvoiceService) Update(ctx context.Context, id, userID string, in ports.UpdateInvoiceInput) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.ClientName != nil {
		if *in.ClientName == "" {
			return nil, fmt.Errorf("%w: client_name is required", domain.ErrInvalidInput)
		}
		invoice.ClientName = *in.ClientName
	}
	if in.Services != nil {
		invoice.Services = *in.Services
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
		}
		invoice.Amount = *in.Amount
	}
	if in.DueDate != nil {
		invoice.DueDate = *in.DueDate
	}
	if in.Status != nil {
		if !domain.ValidInvoiceStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *in.Status)
		}
		invoice.Status = *in.Status
	}

	return s.repo.Update(ctx, invoice)
}

func (s *InvoiceService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
