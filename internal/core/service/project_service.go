package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// ProjectService implements project CRUD and earnings aggregation.
type ProjectService struct {
	repo     ports.ProjectRepository
	invoices ports.InvoiceRepository
	log      zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, invoices ports.InvoiceRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, invoices: invoices, log: log}
}

func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = domain.TaskPending
	}
	if !domain.ValidTaskStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}

	now := time.Now().UTC()
	project := &domain.Project{
		UserID:    in.UserID,
		Name:      in.Name,
		Status:    in.Status,
		DueDate:   in.DueDate,
		Location:  in.Location,
		Currency:  in.Currency,
		Timezone:  in.Timezone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("project_id", created.ID).Str("user_id", in.UserID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, id, userID string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.repo.List(ctx, userID)
}

func (s *ProjectService) Update(ctx context.Context, id, userID string, in ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
		}
		project.Name = *in.Name
	}
	if in.Status != nil {
		if !domain.ValidTaskStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *in.Status)
		}
		project.Status = *in.Status
	}
	if in.DueDate != nil {
		project.DueDate = *in.DueDate
	}
	if in.Location != nil {
		project.Location = *in.Location
	}
	if in.Currency != nil {
		project.Currency = *in.Currency
	}
	if in.Timezone != nil {
		project.Timezone = *in.Timezone
	}
	project.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}

// Earnings sums the Paid invoices attached to the project. The project lookup
// runs first so a cross-owner id behaves as not found.
func (s *ProjectService) Earnings(ctx context.Context, id, userID string) (*domain.ProjectEarnings, error) {
	project, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	paid, err := s.invoices.List(ctx, ports.InvoiceFilter{
		UserID:    userID,
		ProjectID: project.ID,
		Status:    domain.InvoicePaid,
	})
	if err != nil {
		return nil, err
	}

	earnings := &domain.ProjectEarnings{ProjectID: project.ID, PaidInvoiceCount: len(paid)}
	for _, inv := range paid {
		earnings.TotalEarnings += inv.Amount
	}
	return earnings, nil
}
