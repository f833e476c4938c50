package models

import "time"

// ProgressRecord is the per-user progress row (collection "progress").
// xp only ever grows; level is a cached value derived from xp and is
// never mutated independently of it.
type ProgressRecord struct {
	UserID    string    `bson:"userId" json:"userId"`
	Xp        int       `bson:"xp" json:"xp"`
	Level     int       `bson:"level" json:"level"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AchievementUnlock is one earned achievement (collection
// "achievement_unlocks"). (userId, slug) is unique: a user holds a given
// achievement at most once, and the row is never updated or deleted.
type AchievementUnlock struct {
	UserID     string    `bson:"userId" json:"userId"`
	Slug       string    `bson:"slug" json:"slug"`
	UnlockedAt time.Time `bson:"unlockedAt" json:"unlockedAt"`
}

// AchievementInfo is the display metadata for an unlocked achievement.
type AchievementInfo struct {
	Slug        string `json:"slug"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
