package db

import (
	"context"
	"time"

	"reporthub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UnlockStore persists earned achievements in the append-only
// "achievement_unlocks" collection. It implements progression.UnlockStore.
// The unique (userId, slug) index acts as the lock: concurrent inserts of
// the same pair resolve to exactly one row.
type UnlockStore struct {
	collection *mongo.Collection
}

func NewUnlockStore(database *mongo.Database) *UnlockStore {
	return &UnlockStore{collection: database.Collection("achievement_unlocks")}
}

// UnlockedSlugs returns the set of slugs the user already holds.
func (s *UnlockStore) UnlockedSlugs(ctx context.Context, userID string) (map[string]bool, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var unlocks []models.AchievementUnlock
	if err := cursor.All(ctx, &unlocks); err != nil {
		return nil, err
	}

	slugs := make(map[string]bool, len(unlocks))
	for _, unlock := range unlocks {
		slugs[unlock.Slug] = true
	}
	return slugs, nil
}

// Insert records an unlock. A duplicate-key rejection means another call
// unlocked the pair first; that is reported as (false, nil), not an error.
func (s *UnlockStore) Insert(ctx context.Context, userID, slug string, unlockedAt time.Time) (bool, error) {
	_, err := s.collection.InsertOne(ctx, models.AchievementUnlock{
		UserID:     userID,
		Slug:       slug,
		UnlockedAt: unlockedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
