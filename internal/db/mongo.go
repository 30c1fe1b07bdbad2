package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"symptom-checker/pkg"
)

// ErrDisabled is returned by every store operation when no MongoDB URI
// was configured.  History is a non-critical side effect: callers treat
// this as "skip", never as a failure of the enclosing request.
var ErrDisabled = errors.New("history store not configured")

const collectionName = "history"

// HistoryStore persists analysis exchanges to a MongoDB collection.  A
// store without a backing collection is disabled; the rest of the
// service functions fully without it.  The underlying mongo client is
// safe for concurrent use, so a single HistoryStore is shared by all
// requests.
type HistoryStore struct {
	collection *mongo.Collection
}

// Connect opens a MongoDB client, verifies the connection, and binds the
// store to the history collection.  An empty URI yields a disabled store
// and no connection attempt.
func Connect(ctx context.Context, uri, dbName string) (*HistoryStore, error) {
	if uri == "" {
		return &HistoryStore{}, nil
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &HistoryStore{
		collection: client.Database(dbName).Collection(collectionName),
	}, nil
}

// Enabled reports whether a backing collection is configured.
func (s *HistoryStore) Enabled() bool { return s.collection != nil }

// Insert writes one input/result pair stamped with the current UTC time
// and returns the hex form of the store-assigned identifier.
func (s *HistoryStore) Insert(ctx context.Context, input pkg.SymptomInput, result pkg.Analysis) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}
	rec := pkg.HistoryRecord{
		Input:     input,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	res, err := s.collection.InsertOne(ctx, rec)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// List returns up to limit records after skipping skip, newest first,
// together with the total number of stored records irrespective of
// pagination.
func (s *HistoryStore) List(ctx context.Context, limit, skip int) (int64, []pkg.HistoryItem, error) {
	if !s.Enabled() {
		return 0, nil, ErrDisabled
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return 0, nil, err
	}
	defer cursor.Close(ctx)

	items := make([]pkg.HistoryItem, 0, limit)
	for cursor.Next(ctx) {
		var rec pkg.HistoryRecord
		if err := cursor.Decode(&rec); err != nil {
			return 0, nil, err
		}
		items = append(items, pkg.HistoryItem{
			ID:        rec.ID.Hex(),
			Input:     rec.Input,
			Result:    rec.Result,
			CreatedAt: rec.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return 0, nil, err
	}

	total, err := s.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

// Delete removes the record with the given hex identifier.  A malformed
// identifier is reported as an error; a missing record is simply
// deleted=false.
func (s *HistoryStore) Delete(ctx context.Context, id string) (bool, error) {
	if !s.Enabled() {
		return false, ErrDisabled
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}
	res, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
