package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// WorkspaceRepository defines persistence operations for saved workspaces.
type WorkspaceRepository interface {
	Create(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error)
	FindByID(ctx context.Context, id, userID string) (*domain.Workspace, error)
	List(ctx context.Context, userID string) ([]*domain.Workspace, error)
	Delete(ctx context.Context, id, userID string) error
}
