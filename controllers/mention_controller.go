package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"reporthub/db"
	"reporthub/models"
	"reporthub/progression"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateMentionRequest is the request to record a mention of another user.
type CreateMentionRequest struct {
	MentionedUserID string `json:"mentionedUserId" binding:"required"`
	ReportID        string `json:"reportId,omitempty"`
}

// CreateMention records that the authenticated user mentioned someone.
// The mentioned user is the one who earns XP and is checked for
// mention-based achievements.
func CreateMention(c *gin.Context) {
	authorID := c.GetString("userID")
	if authorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateMentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.MentionedUserID == authorID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot mention yourself"})
		return
	}

	mention := models.Mention{
		MentionedUserID: req.MentionedUserID,
		AuthorUserID:    authorID,
		CreatedAt:       time.Now(),
	}
	if req.ReportID != "" {
		reportID, err := primitive.ObjectIDFromHex(req.ReportID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
			return
		}
		mention.ReportID = &reportID
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := db.GetCollection("mentions").InsertOne(ctx, mention)
	if err != nil {
		log.Printf("Error saving mention by %s: %v", authorID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save mention"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          result.InsertedID,
		"message":     "Mention recorded",
		"progression": progressionFor(ctx, req.MentionedUserID, progression.ActionMention),
	})
}
