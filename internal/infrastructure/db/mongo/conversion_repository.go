package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

const conversionsCollection = "currency_conversions"

// ConversionRepository persists saved currency conversions in MongoDB.
type ConversionRepository struct {
	coll *mongo.Collection
}

func NewConversionRepository(db *mongo.Database) *ConversionRepository {
	return &ConversionRepository{coll: db.Collection(conversionsCollection)}
}

type conversionDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"user_id"`
	FromCurrency    string             `bson:"from_currency"`
	ToCurrency      string             `bson:"to_currency"`
	Amount          float64            `bson:"amount"`
	ConvertedAmount float64            `bson:"converted_amount"`
	Rate            float64            `bson:"rate"`
	Timestamp       time.Time          `bson:"timestamp"`
}

func (d conversionDoc) toDomain() *domain.CurrencyConversion {
	return &domain.CurrencyConversion{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		FromCurrency:    d.FromCurrency,
		ToCurrency:      d.ToCurrency,
		Amount:          d.Amount,
		ConvertedAmount: d.ConvertedAmount,
		Rate:            d.Rate,
		Timestamp:       d.Timestamp,
	}
}

func (r *ConversionRepository) Create(ctx context.Context, conv *domain.CurrencyConversion) (*domain.CurrencyConversion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := conversionDoc{
		UserID:          conv.UserID,
		FromCurrency:    conv.FromCurrency,
		ToCurrency:      conv.ToCurrency,
		Amount:          conv.Amount,
		ConvertedAmount: conv.ConvertedAmount,
		Rate:            conv.Rate,
		Timestamp:       conv.Timestamp,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert conversion: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ConversionRepository) List(ctx context.Context, userID string) ([]*domain.CurrencyConversion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, ownerFilter(userID))
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer cursor.Close(ctx)

	var conversions []*domain.CurrencyConversion
	for cursor.Next(ctx) {
		var doc conversionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode conversion: %w", err)
		}
		conversions = append(conversions, doc.toDomain())
	}
	return conversions, cursor.Err()
}

func (r *ConversionRepository) Delete(ctx context.Context, id, userID string) error {
	filter, err := idFilter(id, userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete conversion: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by every scoped query.
func (r *ConversionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
