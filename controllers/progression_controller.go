package controllers

import (
	"context"
	"log"
	"net/http"
	"sort"

	"reporthub/progression"
	"reporthub/services"

	"github.com/gin-gonic/gin"
)

// CheckAchievementsRequest is the request to evaluate achievement rules
// for a trigger with a caller-supplied context bag.
type CheckAchievementsRequest struct {
	Trigger string                 `json:"trigger" binding:"required"`
	Context map[string]interface{} `json:"context"`
}

// GetProgressionProfile returns the user's XP, level and unlocked
// achievements.
func GetProgressionProfile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	engine := services.GetProgressionEngine()

	record, err := engine.Progress(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching progress for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progression profile"})
		return
	}

	unlocked, err := engine.Unlocked(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching unlocks for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	slugs := make([]string, 0, len(unlocked))
	for slug := range unlocked {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	c.JSON(http.StatusOK, gin.H{
		"userId":       record.UserID,
		"xp":           record.Xp,
		"level":        record.Level,
		"nextLevelXp":  progression.XpForLevel(record.Level + 1),
		"achievements": engine.DescribeAchievements(slugs),
	})
}

// CheckAchievements evaluates rules for a trigger against a context bag
// supplied by the caller. Used by flows with no XP component, e.g. a
// mention sweep recomputing facts out of band.
func CheckAchievements(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CheckAchievementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	trigger := progression.TriggerTag(req.Trigger)
	if !trigger.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trigger"})
		return
	}

	engine := services.GetProgressionEngine()
	slugs, err := engine.CheckAchievements(c.Request.Context(), userID, trigger, progression.Facts(req.Context))
	if err != nil {
		log.Printf("Error checking achievements for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unlocked": engine.DescribeAchievements(slugs),
	})
}

// progressionFor applies an XP-earning action and shapes the result for
// embedding in the primary response. A nil return means the progression
// call failed; the primary action has already succeeded and the failure
// is only logged, to be corrected on a later action.
func progressionFor(ctx context.Context, userID string, action progression.ActionTag) gin.H {
	engine := services.GetProgressionEngine()
	result, err := engine.AddXp(ctx, userID, action)
	if err != nil {
		log.Printf("Progression update for %s / %s failed: %v", userID, action, err)
		return nil
	}
	return gin.H{
		"newXp":     result.NewXp,
		"newLevel":  result.NewLevel,
		"leveledUp": result.LeveledUp,
		"unlocked":  engine.DescribeAchievements(result.UnlockedAchievements),
	}
}
