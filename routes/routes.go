package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"classcal/handlers"
	"classcal/utils"
)

// RegisterEventRoutes registers the event store endpoints. Writes are teacher
// actions by convention; nothing here enforces ownership.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.GET("", hb.ListEventsHandler)
		api.POST("", hb.CreateEventHandler)
		api.PUT("/:id", hb.UpdateEventHandler)
		api.DELETE("/:id", hb.DeleteEventHandler)
	}
}

// RegisterCalendarRoutes registers the read-only calendar view endpoint.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("", hb.GetCalendarHandler)
	}
}

// RegisterTeacherRoutes registers the teacher allow-list endpoints.
func RegisterTeacherRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/teachers")
	{
		api.GET("", hb.ListTeachersHandler)
		api.GET("/email/:email", hb.GetTeacherByEmailHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting the latest
// dependency probe results.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm classcal",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterEventRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterTeacherRoutes(r, hb)
	RegisterHealthRoute(r)
}
