package model

// Channel identifies the delivery surface a request came from.
type Channel string

const (
	ChannelHTTP     Channel = "http"
	ChannelTelegram Channel = "telegram"
	ChannelCLI      Channel = "cli"
)

// Scope carries caller identity through the use case layer.
type Scope struct {
	UserID    string // Telegram user ID, HTTP client address, or "cli"
	SessionID string // chat session the turn belongs to, empty for stateless calls
	Channel   Channel
}
