package services

import (
	"context"
	"time"

	"reporthub/progression"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// streakLookback bounds how far back the streak queries scan.
const streakLookback = 90 * 24 * time.Hour

// MongoStatsProvider computes the context facts the achievement rules
// consume, straight from the application collections. Every fact is
// derived from durable documents, which is what lets a missed achievement
// evaluation heal on the user's next action.
type MongoStatsProvider struct {
	database *mongo.Database
}

func NewMongoStatsProvider(database *mongo.Database) *MongoStatsProvider {
	return &MongoStatsProvider{database: database}
}

// Facts builds the context bag for one trigger. Only the facts the
// trigger's rules can reference are computed.
func (p *MongoStatsProvider) Facts(ctx context.Context, userID string, trigger progression.TriggerTag) (progression.Facts, error) {
	switch trigger {
	case progression.TriggerReportCreate:
		total, err := p.countForUser(ctx, "reports", userID)
		if err != nil {
			return nil, err
		}
		streak, err := p.dayStreak(ctx, "reports", userID)
		if err != nil {
			return nil, err
		}
		return progression.Facts{
			progression.FactTotalReports:     total,
			progression.FactReportDaysStreak: streak,
		}, nil

	case progression.TriggerComment:
		total, err := p.countForUser(ctx, "comments", userID)
		if err != nil {
			return nil, err
		}
		streak, err := p.dayStreak(ctx, "comments", userID)
		if err != nil {
			return nil, err
		}
		return progression.Facts{
			progression.FactTotalComments:     total,
			progression.FactCommentDaysStreak: streak,
		}, nil

	case progression.TriggerMention:
		total, err := p.count(ctx, "mentions", bson.M{"mentionedUserId": userID})
		if err != nil {
			return nil, err
		}
		return progression.Facts{
			progression.FactMentionsReceived: total,
		}, nil

	case progression.TriggerStreak:
		weeks, err := p.weekStreak(ctx, "logins", userID)
		if err != nil {
			return nil, err
		}
		return progression.Facts{
			progression.FactWeeklyLoginStreak: weeks,
		}, nil
	}
	return progression.Facts{}, nil
}

func (p *MongoStatsProvider) countForUser(ctx context.Context, collection, userID string) (int, error) {
	return p.count(ctx, collection, bson.M{"userId": userID})
}

func (p *MongoStatsProvider) count(ctx context.Context, collection string, filter bson.M) (int, error) {
	n, err := p.database.Collection(collection).CountDocuments(ctx, filter)
	return int(n), err
}

// dayStreak counts contiguous UTC calendar days ending today (or
// yesterday, if the user has not acted yet today) on which the user has
// at least one document in the collection.
func (p *MongoStatsProvider) dayStreak(ctx context.Context, collection, userID string) (int, error) {
	days, err := p.activityDays(ctx, collection, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}

	day := time.Now().UTC().Truncate(24 * time.Hour)
	if !days[day] {
		day = day.Add(-24 * time.Hour)
	}
	streak := 0
	for days[day] {
		streak++
		day = day.Add(-24 * time.Hour)
	}
	return streak, nil
}

// weekStreak counts contiguous weeks ending this week with at least one
// document, using Monday-anchored UTC weeks.
func (p *MongoStatsProvider) weekStreak(ctx context.Context, collection, userID string) (int, error) {
	days, err := p.activityDays(ctx, collection, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}

	weeks := make(map[time.Time]bool, len(days))
	for day := range days {
		weeks[weekStart(day)] = true
	}

	week := weekStart(time.Now().UTC())
	streak := 0
	for weeks[week] {
		streak++
		week = week.AddDate(0, 0, -7)
	}
	return streak, nil
}

func weekStart(t time.Time) time.Time {
	day := t.Truncate(24 * time.Hour)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// activityDays returns the set of UTC days within the lookback window on
// which matching documents exist.
func (p *MongoStatsProvider) activityDays(ctx context.Context, collection string, filter bson.M) (map[time.Time]bool, error) {
	since := time.Now().Add(-streakLookback)
	filter["createdAt"] = bson.M{"$gte": since}

	opts := options.Find().SetProjection(bson.M{"createdAt": 1})
	cursor, err := p.database.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	days := make(map[time.Time]bool)
	for cursor.Next(ctx) {
		var doc struct {
			CreatedAt time.Time `bson:"createdAt"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		days[doc.CreatedAt.UTC().Truncate(24*time.Hour)] = true
	}
	return days, cursor.Err()
}
