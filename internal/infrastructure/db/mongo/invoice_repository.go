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
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

const invoicesCollection = "invoices"

// InvoiceRepository persists invoices in MongoDB.
type InvoiceRepository struct {
	coll *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{coll: db.Collection(invoicesCollection)}
}

type invoiceDoc struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	UserID     string               `bson:"user_id"`
	ProjectID  string               `bson:"project_id,omitempty"`
	ClientName string               `bson:"client_name"`
	Services   string               `bson:"services,omitempty"`
	Amount     float64              `bson:"amount"`
	Date       time.Time            `bson:"date"`
	DueDate    time.Time            `bson:"due_date,omitempty"`
	Status     domain.InvoiceStatus `bson:"status"`
}

func invoiceToDoc(i *domain.Invoice) invoiceDoc {
	return invoiceDoc{
		UserID:     i.UserID,
		ProjectID:  i.ProjectID,
		ClientName: i.ClientName,
		Services:   i.Services,
		Amount:     i.Amount,
		Date:       i.Date,
		DueDate:    i.DueDate,
		Status:     i.Status,
	}
}

func (d invoiceDoc) toDomain() *domain.Invoice {
	return &domain.Invoice{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		ProjectID:  d.ProjectID,
		ClientName: d.ClientName,
		Services:   d.Services,
		Amount:     d.Amount,
		Date:       d.Date,
		DueDate:    d.DueDate,
		Status:     d.Status,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := invoiceToDoc(invoice)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id, userID string) (*domain.Invoice, error) {
	filter, err := idFilter(id, userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc invoiceDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := ownerFilter(filter.UserID)
	if filter.ProjectID != "" {
		query["project_id"] = filter.ProjectID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []*domain.Invoice
	for cursor.Next(ctx) {
		var doc invoiceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode invoice: %w", err)
		}
		invoices = append(invoices, doc.toDomain())
	}
	return invoices, cursor.Err()
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	filter, err := idFilter(invoice.ID, invoice.UserID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, filter, invoiceToDoc(invoice))
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id, userID string) error {
	filter, err := idFilter(id, userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) CountByStatus(ctx context.Context, status domain.InvoiceStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}

// SumPaidAmount aggregates the total amount across paid invoices.
func (r *InvoiceRepository) SumPaidAmount(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": domain.InvoicePaid}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum paid invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("decode aggregate: %w", err)
		}
	}
	return result.Total, cursor.Err()
}

// EnsureIndexes creates the owner and project indexes.
func (r *InvoiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
	})
	return err
}
