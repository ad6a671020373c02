package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/muktarbdulkader/campus-connector/internal/app/controllers"
	"github.com/muktarbdulkader/campus-connector/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	connectionController *controllers.ConnectionController,
	eventController *controllers.EventController,
	groupController *controllers.GroupController,
	marketplaceController *controllers.MarketplaceController,
	lostFoundController *controllers.LostFoundController,
	rideController *controllers.RideController,
	examController *controllers.ExamController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/signup", authController.Signup)
	v1.POST("/login", authController.Login)

	// Browsing is open; joining, posting and recommendations require a token
	v1.GET("/events", eventController.ListEvents)
	v1.GET("/study-groups", groupController.ListGroups)
	v1.GET("/marketplace", marketplaceController.ListListings)
	v1.GET("/lost-found", lostFoundController.ListItems)
	v1.GET("/rides", rideController.ListRides)
	v1.GET("/exam-resources", examController.ListResources)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile
		authenticated.GET("/me", authController.Me)
		authenticated.PUT("/profile", userController.UpdateProfile)
		authenticated.GET("/users", userController.ListUsers)
		authenticated.GET("/dashboard", userController.Dashboard)

		// Connection graph
		connections := authenticated.Group("/connections")
		{
			connections.GET("", connectionController.GetConnections)
			connections.POST("/request", connectionController.SendRequest)
			connections.POST("/accept", connectionController.AcceptRequest)
			connections.POST("/reject", connectionController.RejectRequest)
			connections.DELETE("/:userId", connectionController.RemoveConnection)
		}

		// Events
		authenticated.POST("/events", eventController.CreateEvent)
		authenticated.POST("/events/:id/join", eventController.JoinEvent)

		// Study groups
		authenticated.GET("/study-groups/recommendations", groupController.Recommendations)
		authenticated.POST("/study-groups", groupController.CreateGroup)
		authenticated.POST("/study-groups/:id/join", groupController.JoinGroup)

		// Marketplace
		authenticated.POST("/marketplace", marketplaceController.CreateListing)
		authenticated.DELETE("/marketplace/:id", marketplaceController.DeleteListing)

		// Lost & found
		authenticated.POST("/lost-found", lostFoundController.CreateItem)
		authenticated.PUT("/lost-found/:id", lostFoundController.UpdateItem)

		// Rides
		authenticated.POST("/rides", rideController.CreateRide)
		authenticated.POST("/rides/:id/request", rideController.RequestSeat)

		// Exam resources
		examResources := authenticated.Group("/exam-resources")
		{
			examResources.GET("/recommendations", examController.Recommendations)
			examResources.POST("", examController.CreateResource)
			examResources.POST("/:id/download", examController.RecordDownload)
			examResources.POST("/:id/helpful", examController.MarkHelpful)
			examResources.DELETE("/:id", examController.DeleteResource)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
