package http

import (
	"time"

	"trip-planner/internal/model"
	"trip-planner/internal/trip"
	"trip-planner/pkg/response"
)

// --- Request DTOs ---

type planReq struct {
	Text string `json:"text" example:"Plan a 3 day trip to Goa"`
}

func (r planReq) validate(maxLen int) error {
	return trip.ValidateInput(r.Text, maxLen)
}

func (r planReq) toInput() trip.PlanInput {
	return trip.PlanInput{Text: r.Text}
}

// ---

type sendMessageReq struct {
	SessionID string `json:"-"` // populated from URI param
	Text      string `json:"text" example:"Jaipur for 2 days"`
}

func (r sendMessageReq) validate(maxLen int) error {
	return trip.ValidateInput(r.Text, maxLen)
}

func (r sendMessageReq) toInput() trip.PlanInput {
	return trip.PlanInput{Text: r.Text}
}

// --- Response DTOs ---

type planResp struct {
	Itinerary       string `json:"itinerary"`
	Location        string `json:"location"`
	Days            int    `json:"days"`
	FallbackApplied bool   `json:"fallback_applied"`
}

func (h *handler) newPlanResp(out trip.PlanOutput) planResp {
	return planResp{
		Itinerary:       out.Itinerary,
		Location:        out.Location,
		Days:            out.Days,
		FallbackApplied: out.FallbackApplied,
	}
}

type messageResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func newMessagesResp(msgs []model.Message) []messageResp {
	out := make([]messageResp, len(msgs))
	for i, m := range msgs {
		out[i] = messageResp{Role: m.Role, Content: m.Content}
	}
	return out
}

type sessionResp struct {
	SessionID string            `json:"session_id"`
	Messages  []messageResp     `json:"messages"`
	CreatedAt response.DateTime `json:"created_at"`
}

func (h *handler) newSessionResp(id string, msgs []model.Message) sessionResp {
	return sessionResp{
		SessionID: id,
		Messages:  newMessagesResp(msgs),
		CreatedAt: response.DateTime(time.Now()),
	}
}

type historyResp struct {
	SessionID string        `json:"session_id"`
	Messages  []messageResp `json:"messages"`
}

func (h *handler) newHistoryResp(id string, msgs []model.Message) historyResp {
	return historyResp{
		SessionID: id,
		Messages:  newMessagesResp(msgs),
	}
}

type sendMessageResp struct {
	SessionID string      `json:"session_id"`
	Reply     messageResp `json:"reply"`
	planResp
}

func (h *handler) newSendMessageResp(id string, out trip.PlanOutput) sendMessageResp {
	return sendMessageResp{
		SessionID: id,
		Reply:     messageResp{Role: model.RoleAssistant, Content: out.Itinerary},
		planResp:  h.newPlanResp(out),
	}
}
