package db

import (
	"context"
	"time"

	"reporthub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressStore persists the per-user progress ledger in the "progress"
// collection. It implements progression.ProgressStore.
type ProgressStore struct {
	collection *mongo.Collection
}

func NewProgressStore(database *mongo.Database) *ProgressStore {
	return &ProgressStore{collection: database.Collection("progress")}
}

// IncrementXp adds gain to the user's xp in a single upsert, so two
// concurrent gains both land regardless of interleaving. The record is
// created on first use; the cached level starts at 1 and is raised
// separately once the new total is known.
func (s *ProgressStore) IncrementXp(ctx context.Context, userID string, gain int) (*models.ProgressRecord, error) {
	update := bson.M{
		"$inc":         bson.M{"xp": gain},
		"$set":         bson.M{"updatedAt": time.Now()},
		"$setOnInsert": bson.M{"level": 1},
	}
	result := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var record models.ProgressRecord
	if err := result.Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// RaiseLevel lifts the cached level to at least the given value. $max
// never lowers it, so concurrent raises commute.
func (s *ProgressStore) RaiseLevel(ctx context.Context, userID string, level int) error {
	_, err := s.collection.UpdateOne(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$max": bson.M{"level": level}},
	)
	return err
}

// Get returns the user's ledger row, or a fresh level-1 row for users
// who have never earned XP.
func (s *ProgressStore) Get(ctx context.Context, userID string) (*models.ProgressRecord, error) {
	var record models.ProgressRecord
	err := s.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return &models.ProgressRecord{UserID: userID, Xp: 0, Level: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
