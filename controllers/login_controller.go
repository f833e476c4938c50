package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"reporthub/db"
	"reporthub/progression"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordLogin marks the user as active today. The first ping of a UTC day
// earns streak XP; repeats on the same day are no-ops, so refreshing the
// app cannot farm XP.
func RecordLogin(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	result, err := db.GetCollection("logins").UpdateOne(
		ctx,
		bson.M{"userId": userID, "day": day},
		bson.M{"$setOnInsert": bson.M{"createdAt": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("Error recording login for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record login"})
		return
	}

	if result.UpsertedCount == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Already recorded today"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login recorded",
		"progression": progressionFor(ctx, userID, progression.ActionLoginStreakDay),
	})
}
