package routes

import (
	"net/http"
	"time"

	"roadmate/handlers"
	"roadmate/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the handlers the route table needs.
type HandlerBundle struct {
	Dialogue *handlers.DialogueHandler
	Route    *handlers.RouteHandler
	POI      *handlers.POIHandler
	Feedback *handlers.FeedbackHandler
}

// RegisterDialogueRoutes registers the conversational endpoints.
func RegisterDialogueRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/dialogue")
	{
		api.POST("/turn", hb.Dialogue.HandleTurn)
	}
}

// RegisterRouteRoutes registers the route search endpoints.
func RegisterRouteRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/routes")
	{
		api.POST("/search", hb.Route.SearchRoute)
	}
}

// RegisterPOIRoutes registers the place search endpoints.
func RegisterPOIRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/places")
	{
		api.POST("/search", hb.POI.SearchPlaces)
	}
}

// RegisterFeedbackRoutes registers the ranking-preference endpoints.
func RegisterFeedbackRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/feedback")
	{
		api.POST("", hb.Feedback.Submit)
		api.GET("/:userId", hb.Feedback.Counts)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDialogueRoutes(r, hb)
	RegisterRouteRoutes(r, hb)
	RegisterPOIRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterHealthRoute(r)
}
