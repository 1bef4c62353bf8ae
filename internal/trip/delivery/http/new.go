package http

import (
	"github.com/gin-gonic/gin"

	"trip-planner/internal/chat"
	"trip-planner/internal/trip"
	"trip-planner/pkg/log"
)

// Handler is the public interface for the trip HTTP delivery layer.
type Handler interface {
	PlanTrip(c *gin.Context)
	CreateSession(c *gin.Context)
	ListMessages(c *gin.Context)
	SendMessage(c *gin.Context)
	ResetSession(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             trip.UseCase
	sessions       chat.Store
	maxInputLength int
}

// New creates a new HTTP handler for the trip domain.
func New(l log.Logger, uc trip.UseCase, sessions chat.Store, maxInputLength int) Handler {
	if maxInputLength <= 0 {
		maxInputLength = trip.MaxInputLength
	}
	return &handler{
		l:              l,
		uc:             uc,
		sessions:       sessions,
		maxInputLength: maxInputLength,
	}
}
