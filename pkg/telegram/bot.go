// Package telegram is a minimal Telegram Bot API client covering webhooks and text replies.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultAPIURL  = "https://api.telegram.org"
	DefaultTimeout = 15 * time.Second

	// MaxMessageLength is the Bot API limit for a single text message.
	MaxMessageLength = 4096

	ParseModeMarkdown = "Markdown"
	ActionTyping      = "typing"
)

var ErrMissingToken = errors.New("telegram: bot token is required")

// APIError is a request Telegram received and refused (ok=false).
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed (%d): %s", e.Method, e.Code, e.Description)
}

type Config struct {
	Token      string
	APIURL     string // without the /bot<token> suffix
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Bot is the Telegram Bot API client.
type Bot struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Bot. The token is embedded in every request path.
func New(cfg Config) (*Bot, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Bot{
		baseURL:    fmt.Sprintf("%s/bot%s", strings.TrimRight(cfg.APIURL, "/"), cfg.Token),
		httpClient: cfg.HTTPClient,
	}, nil
}

// SecretTokenHeader carries the secret_token given to SetWebhook on every update.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// SetWebhook registers the webhook URL with Telegram. A non-empty secretToken is
// echoed back by Telegram in SecretTokenHeader.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	return b.call(ctx, "setWebhook", setWebhookRequest{URL: webhookURL, SecretToken: secretToken})
}

// SendMessage sends a plain text message.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends text with an optional parse mode, split into chunks
// that fit MaxMessageLength. A chunk Telegram rejects under parseMode (for example
// a split inside a Markdown span) is resent as plain text; chunks already
// delivered are not repeated.
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		err := b.sendChunk(ctx, chatID, chunk, parseMode)

		var apiErr *APIError
		if err != nil && parseMode != "" && errors.As(err, &apiErr) {
			err = b.sendChunk(ctx, chatID, chunk, "")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) sendChunk(ctx context.Context, chatID int64, chunk, parseMode string) error {
	return b.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:                chatID,
		Text:                  chunk,
		ParseMode:             parseMode,
		DisableWebPagePreview: true,
	})
}

// SendChatAction shows a status such as "typing" in the chat.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	return b.call(ctx, "sendChatAction", chatActionRequest{ChatID: chatID, Action: action})
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: create request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("telegram %s: status %d: decode response: %w", method, resp.StatusCode, err)
	}
	if !apiResp.OK {
		return &APIError{Method: method, Code: apiResp.ErrorCode, Description: apiResp.Description}
	}
	return nil
}

// SplitMessage cuts text into pieces of at most limit runes, preferring line breaks.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
