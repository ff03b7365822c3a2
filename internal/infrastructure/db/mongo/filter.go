package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// idFilter builds the lookup filter for an owned document. A non-empty
// userID scopes the query to that owner, so a cross-owner id behaves exactly
// like a missing one. A malformed id is treated as not found, not as an
// infrastructure error.
func idFilter(id, userID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	filter := bson.M{"_id": oid}
	if userID != "" {
		filter["user_id"] = userID
	}
	return filter, nil
}

// ownerFilter builds the listing filter for a collection of owned documents.
func ownerFilter(userID string) bson.M {
	if userID == "" {
		return bson.M{}
	}
	return bson.M{"user_id": userID}
}
