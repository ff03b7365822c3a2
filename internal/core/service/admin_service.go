package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// AdminService implements the admin-only account management operations.
type AdminService struct {
	users    ports.UserRepository
	tasks    ports.TaskRepository
	invoices ports.InvoiceRepository
	log      zerolog.Logger
}

func NewAdminService(users ports.UserRepository, tasks ports.TaskRepository, invoices ports.InvoiceRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, tasks: tasks, invoices: invoices, log: log}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes an account. Admins cannot delete themselves, which keeps
// at least the acting admin alive after any sequence of admin calls.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrSelfAction
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, targetID); err != nil {
		return err
	}
	s.log.Info().Str("actor_id", actorID).Str("user_id", targetID).Msg("user deleted")
	return nil
}

// ChangeRole sets the target's role. Self-demotion is rejected to prevent an
// admin locking themselves out.
func (s *AdminService) ChangeRole(ctx context.Context, actorID, targetID, role string) error {
	if !domain.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if actorID == targetID {
		return domain.ErrSelfAction
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return err
	}
	if err := s.users.UpdateRole(ctx, targetID, role); err != nil {
		return err
	}
	s.log.Info().Str("actor_id", actorID).Str("user_id", targetID).Str("role", role).Msg("role changed")
	return nil
}

// SetSuspended toggles suspension. Tokens already issued to the user remain
// valid until they expire; suspension only blocks new logins.
func (s *AdminService) SetSuspended(ctx context.Context, targetID string, suspended bool) error {
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return err
	}
	if err := s.users.UpdateSuspended(ctx, targetID, suspended); err != nil {
		return err
	}
	s.log.Info().Str("user_id", targetID).Bool("suspended", suspended).Msg("suspension updated")
	return nil
}

func (s *AdminService) ListAllTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx, "")
}

// Stats aggregates counts across users, tasks and invoices.
func (s *AdminService) Stats(ctx context.Context) (*ports.Stats, error) {
	stats := &ports.Stats{}

	var err error
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.SuspendedUsers, err = s.users.CountSuspended(ctx); err != nil {
		return nil, fmt.Errorf("count suspended users: %w", err)
	}
	if stats.PendingTasks, err = s.tasks.CountByStatus(ctx, domain.TaskPending); err != nil {
		return nil, fmt.Errorf("count pending tasks: %w", err)
	}
	if stats.InProgressTasks, err = s.tasks.CountByStatus(ctx, domain.TaskInProgress); err != nil {
		return nil, fmt.Errorf("count in-progress tasks: %w", err)
	}
	if stats.CompletedTasks, err = s.tasks.CountByStatus(ctx, domain.TaskCompleted); err != nil {
		return nil, fmt.Errorf("count completed tasks: %w", err)
	}
	if stats.PaidInvoices, err = s.invoices.CountByStatus(ctx, domain.InvoicePaid); err != nil {
		return nil, fmt.Errorf("count paid invoices: %w", err)
	}
	if stats.PendingInvoices, err = s.invoices.CountByStatus(ctx, domain.InvoicePending); err != nil {
		return nil, fmt.Errorf("count pending invoices: %w", err)
	}
	if stats.TotalPaidAmount, err = s.invoices.SumPaidAmount(ctx); err != nil {
		return nil, fmt.Errorf("sum paid invoices: %w", err)
	}
	return stats, nil
}
