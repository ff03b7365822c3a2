package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// WorkspaceService searches the places provider and manages saved workspaces.
type WorkspaceService struct {
	places ports.PlacesClient
	repo   ports.WorkspaceRepository
	log    zerolog.Logger
}

func NewWorkspaceService(places ports.PlacesClient, repo ports.WorkspaceRepository, log zerolog.Logger) *WorkspaceService {
	return &WorkspaceService{places: places, repo: repo, log: log}
}

func (s *WorkspaceService) Search(ctx context.Context, location string) ([]ports.Place, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	}
	results, err := s.places.SearchWorkspaces(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("search workspaces: %w", err)
	}
	return results, nil
}

func (s *WorkspaceService) Save(ctx context.Context, in ports.SaveWorkspaceInput) (*domain.Workspace, error) {
	if in.PlaceID == "" || in.Name == "" || in.Address == "" {
		return nil, fmt.Errorf("%w: place_id, name and address are required", domain.ErrInvalidInput)
	}

	ws := &domain.Workspace{
		UserID:    in.UserID,
		PlaceID:   in.PlaceID,
		Name:      in.Name,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Rating:    in.Rating,
		SavedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, ws)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("workspace_id", created.ID).Str("user_id", in.UserID).Msg("workspace saved")
	return created, nil
}

func (s *WorkspaceService) Get(ctx context.Context, id, userID string) (*domain.Workspace, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *WorkspaceService) List(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	return s.repo.List(ctx, userID)
}

func (s *WorkspaceService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
