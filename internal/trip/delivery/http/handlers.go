package http

import (
	"github.com/gin-gonic/gin"

	"trip-planner/internal/model"
	"trip-planner/pkg/response"
)

// PlanTrip godoc
// @Summary     Plan a trip
// @Description Extracts destination and length from free text, gathers places and returns a styled itinerary.
// @Tags        Trips
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Travel request"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/trips/plan [POST]
func (h *handler) PlanTrip(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sc := model.Scope{UserID: c.ClientIP(), Channel: model.ChannelHTTP}
	output, err := h.uc.PlanTrip(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanTrip: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// CreateSession godoc
// @Summary     Start a chat session
// @Description Creates a session whose history starts with the guide's greeting.
// @Tags        Chat
// @Produce     json
// @Success     201 {object} sessionResp
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	id, history := h.sessions.Create()
	h.l.Infof(c.Request.Context(), "chat session created: %s", id)
	response.Created(c, h.newSessionResp(id, history))
}

// ListMessages godoc
// @Summary     Get chat history
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	id := c.Param("id")

	history, err := h.sessions.Messages(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(id, history))
}

// SendMessage godoc
// @Summary     Send a chat message
// @Description Plans a trip for the message and appends both the message and the itinerary to the session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "User message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.sessions.Append(req.SessionID, model.Message{Role: model.RoleUser, Content: req.Text}); err != nil {
		h.respondError(c, err)
		return
	}

	sc := model.Scope{UserID: c.ClientIP(), SessionID: req.SessionID, Channel: model.ChannelHTTP}
	output, err := h.uc.PlanTrip(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanTrip: session=%s: %v", req.SessionID, err)
		h.respondError(c, err)
		return
	}

	if err := h.sessions.Append(req.SessionID, model.Message{Role: model.RoleAssistant, Content: output.Itinerary}); err != nil {
		h.l.Warnf(ctx, "sessions.Append: session=%s: %v", req.SessionID, err)
	}

	response.OK(c, h.newSendMessageResp(req.SessionID, output))
}

// ResetSession godoc
// @Summary     Reset a chat session
// @Description Clears the history and re-seeds the greeting.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.sessions.Messages(id); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(id, h.sessions.Reset(id)))
}
