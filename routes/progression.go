package routes

import (
	"reporthub/controllers"

	"github.com/gin-gonic/gin"
)

func GetProgressionProfileRouteHandler(c *gin.Context) {
	controllers.GetProgressionProfile(c)
}

func CheckAchievementsRouteHandler(c *gin.Context) {
	controllers.CheckAchievements(c)
}
