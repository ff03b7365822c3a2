package ports

import (
	"context"
	"time"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// CreateTaskInput carries the fields a caller may set when creating a task.
// UserID always comes from the verified token, never from the request body.
type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	DueDate     time.Time
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	Category    string
	Reminder    time.Time
}

// UpdateTaskInput carries a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	Category    *string
	Reminder    *time.Time
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, id, userID string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, id, userID string, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
}
