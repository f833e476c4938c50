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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateCommentRequest is the request to comment on a report.
type CreateCommentRequest struct {
	ReportID string `json:"reportId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// CreateComment posts a comment on a report, then feeds the action into
// the progression engine. A failed progression update never fails the
// comment.
func CreateComment(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reportID, err := primitive.ObjectIDFromHex(req.ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	err = db.GetCollection("reports").FindOne(ctx, bson.M{"_id": reportID}).Err()
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	comment := models.Comment{
		ReportID:  reportID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	result, err := db.GetCollection("comments").InsertOne(ctx, comment)
	if err != nil {
		log.Printf("Error saving comment for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          result.InsertedID,
		"message":     "Comment created",
		"progression": progressionFor(ctx, userID, progression.ActionComment),
	})
}
