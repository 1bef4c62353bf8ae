package telegram

import (
	"github.com/gin-gonic/gin"

	"trip-planner/internal/chat"
	"trip-planner/internal/trip"
	pkgLog "trip-planner/pkg/log"
	pkgTelegram "trip-planner/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config holds the Telegram delivery settings.
type Config struct {
	MaxInputLength int
	SecretToken    string // empty disables webhook authentication
}

type handler struct {
	l              pkgLog.Logger
	uc             trip.UseCase
	bot            *pkgTelegram.Bot
	sessions       chat.Store
	maxInputLength int
	secretToken    string
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc trip.UseCase, bot *pkgTelegram.Bot, sessions chat.Store, cfg Config) Handler {
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = trip.MaxInputLength
	}
	return &handler{
		l:              l,
		uc:             uc,
		bot:            bot,
		sessions:       sessions,
		maxInputLength: cfg.MaxInputLength,
		secretToken:    cfg.SecretToken,
	}
}
