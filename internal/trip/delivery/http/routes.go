package http

import (
	"github.com/gin-gonic/gin"

	"trip-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Planning routes are rate limited; they each cost two model calls and three searches.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	trips := rg.Group("/trips")
	{
		trips.POST("/plan", mw.RateLimit(), h.PlanTrip)
	}

	sessions := rg.Group("/chat/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id/messages", h.ListMessages)
		sessions.POST("/:id/messages", mw.RateLimit(), h.SendMessage)
		sessions.DELETE("/:id", h.ResetSession)
	}
}
