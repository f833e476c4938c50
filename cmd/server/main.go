package main

import (
	"log"
	"strconv"

	"reporthub/config"
	"reporthub/db"
	"reporthub/middlewares"
	"reporthub/routes"
	"reporthub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.prod.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := db.EnsureProgressionIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	if err := services.InitProgressionService(); err != nil {
		log.Fatalf("Failed to init progression engine: %v", err)
	}

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	allowOrigins := cfg.CORS.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(cfg.JWT.Secret))
	{
		auth.POST("/reports", routes.CreateReportRouteHandler)
		auth.POST("/comments", routes.CreateCommentRouteHandler)
		auth.POST("/mentions", routes.CreateMentionRouteHandler)
		auth.POST("/logins", routes.RecordLoginRouteHandler)

		auth.GET("/progression/profile", routes.GetProgressionProfileRouteHandler)
		auth.POST("/progression/achievements/check", routes.CheckAchievementsRouteHandler)
	}

	return router
}
