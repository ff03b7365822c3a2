package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// The backing store must enforce a unique index on email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, id, role string) error
	UpdateSuspended(ctx context.Context, id string, suspended bool) error
	UpdateLastActive(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountSuspended(ctx context.Context) (int64, error)
}
