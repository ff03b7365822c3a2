package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

func TestProjectService_Earnings(t *testing.T) {
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id, userID string) (*domain.Project, error) {
			return &domain.Project{ID: id, UserID: userID, Name: "Website"}, nil
		},
	}
	var gotFilter ports.InvoiceFilter
	invoices := &stubInvoiceRepo{
		listFn: func(ctx context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, error) {
			gotFilter = filter
			return []*domain.Invoice{
				{ID: "inv_1", Amount: 100.50, Status: domain.InvoicePaid},
				{ID: "inv_2", Amount: 249.50, Status: domain.InvoicePaid},
			}, nil
		},
	}
	svc := NewProjectService(projects, invoices, zerolog.Nop())

	earnings, err := svc.Earnings(context.Background(), "proj_1", "user_1")
	if err != nil {
		t.Fatalf("earnings: %v", err)
	}
	if earnings.TotalEarnings != 350 || earnings.PaidInvoiceCount != 2 {
		t.Fatalf("unexpected earnings: %+v", earnings)
	}
	if gotFilter.Status != domain.InvoicePaid || gotFilter.ProjectID != "proj_1" || gotFilter.UserID != "user_1" {
		t.Fatalf("unexpected invoice filter: %+v", gotFilter)
	}
}

func TestProjectService_Earnings_NoInvoices(t *testing.T) {
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id, userID string) (*domain.Project, error) {
			return &domain.Project{ID: id, UserID: userID}, nil
		},
	}
	invoices := &stubInvoiceRepo{
		listFn: func(ctx context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, error) {
			return nil, nil
		},
	}
	svc := NewProjectService(projects, invoices, zerolog.Nop())

	earnings, err := svc.Earnings(context.Background(), "proj_1", "user_1")
	if err != nil {
		t.Fatalf("earnings: %v", err)
	}
	if earnings.TotalEarnings != 0 || earnings.PaidInvoiceCount != 0 {
		t.Fatalf("expected zero earnings, got %+v", earnings)
	}
}

func TestProjectService_Earnings_ProjectNotFound(t *testing.T) {
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id, userID string) (*domain.Project, error) {
			return nil, domain.ErrNotFound
		},
	}
	invoices := &stubInvoiceRepo{
		listFn: func(ctx context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, error) {
			t.Fatal("invoices must not be queried when the project lookup fails")
			return nil, nil
		},
	}
	svc := NewProjectService(projects, invoices, zerolog.Nop())

	if _, err := svc.Earnings(context.Background(), "proj_1", "intruder"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectService_Create_MissingName(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, &stubInvoiceRepo{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{UserID: "user_1"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProjectService_Create_DefaultStatus(t *testing.T) {
	repo := &stubProjectRepo{
		createFn: func(ctx context.Context, project *domain.Project) (*domain.Project, error) {
			created := *project
			created.ID = "proj_1"
			return &created, nil
		},
	}
	svc := NewProjectService(repo, &stubInvoiceRepo{}, zerolog.Nop())

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{UserID: "user_1", Name: "Website"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.Status != domain.TaskPending {
		t.Fatalf("expected default status, got %q", project.Status)
	}
}
