package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// Stats aggregates account and resource counts for the admin dashboard.
type Stats struct {
	Users           int64   `json:"users"`
	SuspendedUsers  int64   `json:"suspended_users"`
	PendingTasks    int64   `json:"pending_tasks"`
	InProgressTasks int64   `json:"in_progress_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	PaidInvoices    int64   `json:"paid_invoices"`
	PendingInvoices int64   `json:"pending_invoices"`
	TotalPaidAmount float64 `json:"total_paid_amount"`
}

// AdminService implements the admin-only account management operations.
// actorID is the verified subject of the caller's token; the self-action
// guards compare it against the target id.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// DeleteUser removes an account. Fails with domain.ErrSelfAction when
	// actorID == targetID.
	DeleteUser(ctx context.Context, actorID, targetID string) error
	// ChangeRole sets the target's role. Fails with domain.ErrSelfAction when
	// actorID == targetID (prevents self-demotion lockout).
	ChangeRole(ctx context.Context, actorID, targetID, role string) error
	// SetSuspended toggles the suspension flag. Already-issued tokens remain
	// valid until natural expiry.
	SetSuspended(ctx context.Context, targetID string, suspended bool) error
	ListAllTasks(ctx context.Context) ([]*domain.Task, error)
	Stats(ctx context.Context) (*Stats, error)
}
