package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is a user-authored report (collection "reports").
type Report struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Comment is a comment on a report (collection "comments").
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ReportID  primitive.ObjectID `bson:"reportId" json:"reportId"`
	UserID    string             `bson:"userId" json:"userId"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Mention records one user mentioning another (collection "mentions").
type Mention struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	MentionedUserID string              `bson:"mentionedUserId" json:"mentionedUserId"`
	AuthorUserID    string              `bson:"authorUserId" json:"authorUserId"`
	ReportID        *primitive.ObjectID `bson:"reportId,omitempty" json:"reportId,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
}
