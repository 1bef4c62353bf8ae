package http

import (
	"github.com/gin-gonic/gin"

	"trip-planner/internal/trip"
)

// processPlanReq binds and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate(h.maxInputLength)
}

// processSendMessageReq binds the body and checks that the session exists.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.SessionID = c.Param("id")
	if _, err := h.sessions.Messages(req.SessionID); err != nil {
		return req, trip.ErrSessionNotFound
	}
	return req, req.validate(h.maxInputLength)
}
