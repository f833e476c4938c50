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
)

// CreateReportRequest is the request to create a report.
type CreateReportRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// CreateReport saves a new report, then feeds the action into the
// progression engine. Saving the report is the primary effect: it
// succeeds even when the progression update fails.
func CreateReport(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	now := time.Now()
	report := models.Report{
		UserID:    userID,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := db.GetCollection("reports").InsertOne(ctx, report)
	if err != nil {
		log.Printf("Error saving report for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          result.InsertedID,
		"message":     "Report created",
		"progression": progressionFor(ctx, userID, progression.ActionReport),
	})
}
