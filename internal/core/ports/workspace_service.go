package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// SaveWorkspaceInput carries the fields for saving a workspace from a search result.
type SaveWorkspaceInput struct {
	UserID    string
	PlaceID   string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Rating    float64
}

// WorkspaceService searches the places provider and manages saved workspaces.
type WorkspaceService interface {
	Search(ctx context.Context, location string) ([]Place, error)
	Save(ctx context.Context, in SaveWorkspaceInput) (*domain.Workspace, error)
	Get(ctx context.Context, id, userID string) (*domain.Workspace, error)
	List(ctx context.Context, userID string) ([]*domain.Workspace, error)
	Delete(ctx context.Context, id, userID string) error
}
