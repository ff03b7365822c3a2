package ports

import (
	"context"
	"time"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// CreateProjectInput carries the fields for a new project.
type CreateProjectInput struct {
	UserID   string
	Name     string
	Status   domain.TaskStatus
	DueDate  time.Time
	Location string
	Currency string
	Timezone string
}

// UpdateProjectInput carries a partial update; nil fields are left unchanged.
type UpdateProjectInput struct {
	Name     *string
	Status   *domain.TaskStatus
	DueDate  *time.Time
	Location *string
	Currency *string
	Timezone *string
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id, userID string) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	Update(ctx context.Context, id, userID string, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id, userID string) error
	// Earnings sums the Paid invoices attached to the project.
	Earnings(ctx context.Context, id, userID string) (*domain.ProjectEarnings, error)
}
