package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
// A non-empty userID scopes every read and mutation to that owner; a lookup
// that matches an id but not the owner behaves as not found.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id, userID string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
	CountByStatus(ctx context.Context, status domain.TaskStatus) (int64, error)
}
