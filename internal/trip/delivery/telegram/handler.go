package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/model"
	"trip-planner/internal/trip"
	pkgLog "trip-planner/pkg/log"
	pkgResponse "trip-planner/pkg/response"
	pkgTelegram "trip-planner/pkg/telegram"
)

// HandleWebhook acknowledges the update with 200 right away and plans the trip
// in a background goroutine. Telegram redelivers updates that are not answered
// within a few seconds, while a planning turn takes two model calls and three searches.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.verifySecretToken(c.GetHeader(pkgTelegram.SecretTokenHeader)); err != nil {
		h.l.Warnf(ctx, "telegram handler: rejected update from %s: %v", c.ClientIP(), err)
		pkgResponse.ErrorWithStatus(c, http.StatusUnauthorized, http.StatusUnauthorized, "unauthorized")
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	traceID := pkgLog.TraceID(ctx)

	go func() {
		bgCtx, cancel := context.WithTimeout(pkgLog.WithTraceID(context.Background(), traceID), processTimeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				h.l.Errorf(bgCtx, "telegram handler: chat=%d: panic: %v", msg.Chat.ID, r)
				if sendErr := h.bot.SendMessage(bgCtx, msg.Chat.ID, failureText); sendErr != nil {
					h.l.Warnf(bgCtx, "telegram handler: failed to send error reply: %v", sendErr)
				}
			}
		}()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: chat=%d: %v", msg.Chat.ID, err)
			if sendErr := h.bot.SendMessage(bgCtx, msg.Chat.ID, h.errorMessage(err)); sendErr != nil {
				h.l.Warnf(bgCtx, "telegram handler: failed to send error reply: %v", sendErr)
			}
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// sessionKey maps a Telegram chat onto a chat.Store session.
func sessionKey(chatID int64) string {
	return fmt.Sprintf("tg:%d", chatID)
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	chatID := msg.Chat.ID
	key := sessionKey(chatID)

	switch commandName(text) {
	case cmdStart:
		history := h.sessions.Open(key)
		return h.bot.SendMessage(ctx, chatID, history[0].Content)
	case cmdHelp:
		return h.bot.SendMessageWithMode(ctx, chatID, helpText, pkgTelegram.ParseModeMarkdown)
	case cmdReset:
		history := h.sessions.Reset(key)
		return h.bot.SendMessage(ctx, chatID, resetText+"\n\n"+history[0].Content)
	}

	if err := trip.ValidateInput(text, h.maxInputLength); err != nil {
		return h.bot.SendMessage(ctx, chatID, h.errorMessage(err))
	}

	h.sessions.Open(key)
	if err := h.sessions.Append(key, model.Message{Role: model.RoleUser, Content: text}); err != nil {
		h.l.Warnf(ctx, "telegram handler: sessions.Append: %v", err)
	}

	if err := h.bot.SendMessage(ctx, chatID, progressText); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send progress message: %v", err)
	}
	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ActionTyping); err != nil {
		h.l.Debugf(ctx, "telegram handler: sendChatAction: %v", err)
	}

	sc := model.Scope{SessionID: key, Channel: model.ChannelTelegram}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}

	output, err := h.uc.PlanTrip(ctx, sc, trip.PlanInput{Text: text})
	if err != nil {
		return fmt.Errorf("uc.PlanTrip: %w", err)
	}

	if err := h.sessions.Append(key, model.Message{Role: model.RoleAssistant, Content: output.Itinerary}); err != nil {
		h.l.Warnf(ctx, "telegram handler: sessions.Append: %v", err)
	}

	// Chunks Telegram cannot parse as Markdown are resent as plain text by the bot.
	return h.bot.SendMessageWithMode(ctx, chatID, output.Itinerary, pkgTelegram.ParseModeMarkdown)
}

// commandName returns the leading word of text without the "@BotName" suffix
// Telegram appends to commands in group chats.
func commandName(text string) string {
	cmd := strings.Fields(text)[0]
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	return cmd
}
