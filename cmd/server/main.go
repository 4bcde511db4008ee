package main

import (
	"log"
	"strconv"

	"quizhub/badges"
	"quizhub/config"
	"quizhub/controllers"
	"quizhub/db"
	"quizhub/internal/rank"
	"quizhub/middlewares"
	"quizhub/routes"
	"quizhub/services"
	"quizhub/utils"
	"quizhub/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Redis is optional; leaderboard and rate limiting degrade to Mongo-only.
	if cfg.Redis.Addr != "" {
		if err := rank.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			log.Printf("Redis unavailable, running without leaderboard cache: %v", err)
		} else {
			log.Println("Connected to Redis")
		}
	}

	catalog := badges.NewCatalog()
	groupCatalog := badges.NewGroupCatalog()
	log.Printf("Badge catalog loaded: %d user badges, %d group badges", catalog.Len(), groupCatalog.Len())

	generator, err := services.NewGenerator(cfg)
	if err != nil {
		log.Printf("AI generation disabled: %v", err)
	}

	statsService := services.NewStatsService(db.MongoDatabase, catalog, websocket.BroadcastGamificationEvent)
	groupService := services.NewGroupService(db.MongoDatabase)

	controllers.Init(
		catalog,
		groupCatalog,
		statsService,
		groupService,
		generator,
		rank.NewLeaderboard(),
		rank.NewSubmissionLimiter(rank.DefaultSubmissionLimit, rank.DefaultSubmissionWindow),
	)

	// Seed sample data for local development
	utils.SeedSampleData()

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

	// Set trusted proxies (adjust as needed)
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

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/user/fetchprofile", routes.GetProfileRouteHandler)
		auth.PUT("/user/updateprofile", routes.UpdateProfileRouteHandler)
		auth.GET("/user/stats", routes.GetUserStatsRouteHandler)
		auth.GET("/user/badges", routes.GetUserBadgesRouteHandler)

		auth.POST("/quizzes", routes.CreateQuizRouteHandler)
		auth.POST("/quizzes/generate", routes.GenerateQuizRouteHandler)
		auth.GET("/quizzes", routes.ListQuizzesRouteHandler)
		auth.GET("/quizzes/:id", routes.GetQuizRouteHandler)
		auth.DELETE("/quizzes/:id", routes.DeleteQuizRouteHandler)
		auth.POST("/quizzes/:id/submit", routes.SubmitQuizRouteHandler)
		auth.GET("/results", routes.GetMyResultsRouteHandler)

		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)

		auth.POST("/groups", routes.CreateGroupRouteHandler)
		auth.POST("/groups/:id/join", routes.JoinGroupRouteHandler)
		auth.GET("/groups/:id", routes.GetGroupRouteHandler)
		auth.GET("/groups/:id/badges", routes.GetGroupBadgesRouteHandler)
		auth.GET("/groups/:id/leaderboard", routes.GetGroupLeaderboardRouteHandler)
	}

	// WebSocket endpoint for live badge and level-up notifications. The
	// handler does its own token check so browsers can pass ?token=.
	router.GET("/ws/gamification", websocket.GamificationWebSocketHandler)

	routes.SetupAdminRoutes(router)

	return router
}
