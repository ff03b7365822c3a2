package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

const workspacesCollection = "workspaces"

// WorkspaceRepository persists saved workspaces in MongoDB.
type WorkspaceRepository struct {
	coll *mongo.Collection
}

func NewWorkspaceRepository(db *mongo.Database) *WorkspaceRepository {
	return &WorkspaceRepository{coll: db.Collection(workspacesCollection)}
}

type workspaceDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	PlaceID   string             `bson:"place_id"`
	Name      string             `bson:"name"`
	Address   string             `bson:"address"`
	Latitude  float64            `bson:"latitude"`
	Longitude float64            `bson:"longitude"`
	Rating    float64            `bson:"rating,omitempty"`
	SavedAt   time.Time          `bson:"saved_at"`
}

func workspaceToDoc(w *domain.Workspace) workspaceDoc {
	return workspaceDoc{
		UserID:    w.UserID,
		PlaceID:   w.PlaceID,
		Name:      w.Name,
		Address:   w.Address,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		Rating:    w.Rating,
		SavedAt:   w.SavedAt,
	}
}

func (d workspaceDoc) toDomain() *domain.Workspace {
	return &domain.Workspace{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		PlaceID:   d.PlaceID,
		Name:      d.Name,
		Address:   d.Address,
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
		Rating:    d.Rating,
		SavedAt:   d.SavedAt,
	}
}

func (r *WorkspaceRepository) Create(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := workspaceToDoc(ws)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert workspace: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id, userID string) (*domain.Workspace, error) {
	filter, err := idFilter(id, userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc workspaceDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find workspace: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *WorkspaceRepository) List(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, ownerFilter(userID))
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer cursor.Close(ctx)

	var workspaces []*domain.Workspace
	for cursor.Next(ctx) {
		var doc workspaceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode workspace: %w", err)
		}
		workspaces = append(workspaces, doc.toDomain())
	}
	return workspaces, cursor.Err()
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id, userID string) error {
	filter, err := idFilter(id, userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by every scoped query.
func (r *WorkspaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
