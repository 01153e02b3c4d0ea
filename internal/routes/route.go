package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ruslanbaghirov/eventa-app/internal/container"
	"github.com/ruslanbaghirov/eventa-app/internal/handlers"
	"github.com/ruslanbaghirov/eventa-app/internal/helpers"
	"github.com/ruslanbaghirov/eventa-app/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "eventa-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.CreateUser(container.UserService))
		v1.POST("/login", handlers.AuthenticateUser(container.UserService))
		v1.GET("/auth/google", handlers.GoogleAuth(container.UserService))
		v1.GET("/auth/google/callback", handlers.GoogleAuthCallback(container.UserService))

		// event discovery is open to everyone, signed in or not
		v1.GET("/events", handlers.ListEvents(container.EventService))
		v1.GET("/events/:id", handlers.GetEvent(container.EventService))
		v1.GET("/events/:id/counts", handlers.GetEventCounts(container.RSVPService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.SupabaseClient, container.UserService, container.Logger))

	protected.POST("/logout", handlers.Logout())

	userRoutes := protected.Group("/users")
	{
		protected.GET("/profile", func(c *gin.Context) {
			user, exist := c.Get("user")
			if !exist {
				c.JSON(401, gin.H{"error": "Unauthorized"})
				return
			}

			// Cast to EnhancedClaims to access role and other profile data
			enhancedClaims, ok := user.(*helpers.EnhancedClaims)
			if !ok {
				c.JSON(500, gin.H{"error": "Invalid user claims format"})
				return
			}

			c.JSON(200, gin.H{
				"status":   "OK",
				"user_id":  enhancedClaims.UserID,
				"email":    enhancedClaims.Email,
				"role":     enhancedClaims.GetSafeRole(),
				"username": enhancedClaims.Username,
				"is_admin": enhancedClaims.IsAdmin(),
				"is_venue": enhancedClaims.IsVenue(),
			})
		})

		userRoutes.GET("/:id", handlers.GetUser(container.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateUser(container.UserService))
		userRoutes.DELETE("/:id", handlers.DeleteUser(container.UserService))
		userRoutes.POST("/avatar", handlers.UploadAvatar(container.UserService))
	}

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.POST("", handlers.SubmitEvent(container.EventService))
		eventRoutes.GET("/mine", handlers.ListMyEvents(container.EventService))
		eventRoutes.PATCH("/:id", handlers.EditEvent(container.EventService))
		eventRoutes.POST("/:id/cancellation-request", handlers.RequestCancellation(container.EventService))
		eventRoutes.POST("/:id/rsvp", handlers.SetRSVP(container.RSVPService))
		eventRoutes.GET("/:id/attendees", handlers.ListEventAttendees(container.RSVPService))
	}

	rsvpRoutes := protected.Group("/rsvps")
	{
		rsvpRoutes.GET("/mine", handlers.ListMyRSVPs(container.RSVPService))
	}

	savedRoutes := protected.Group("/saved")
	{
		savedRoutes.GET("", handlers.GetSavedEvents(container.SavedEventsService))
		savedRoutes.POST("/:id", handlers.SaveEvent(container.SavedEventsService))
		savedRoutes.DELETE("/:id", handlers.UnsaveEvent(container.SavedEventsService))
	}

	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(middleware.RequireAdmin())
	{
		adminRoutes.GET("/events/pending", handlers.ListPendingEvents(container.EventService))
		adminRoutes.POST("/events/:id/approve", handlers.ApproveEvent(container.EventService))
		adminRoutes.POST("/events/:id/reject", handlers.RejectEvent(container.EventService))
		adminRoutes.GET("/cancellations", handlers.ListCancellationRequests(container.EventService))
		adminRoutes.POST("/events/:id/cancellation/approve", handlers.ApproveCancellation(container.EventService))
		adminRoutes.POST("/events/:id/cancellation/reject", handlers.RejectCancellation(container.EventService))
	}

	return r
}
