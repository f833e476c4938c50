package routes

import (
	"reporthub/controllers"

	"github.com/gin-gonic/gin"
)

func CreateReportRouteHandler(c *gin.Context) {
	controllers.CreateReport(c)
}

func CreateCommentRouteHandler(c *gin.Context) {
	controllers.CreateComment(c)
}

func CreateMentionRouteHandler(c *gin.Context) {
	controllers.CreateMention(c)
}

func RecordLoginRouteHandler(c *gin.Context) {
	controllers.RecordLogin(c)
}
