package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trip-planner/config"
	_ "trip-planner/docs" // Swagger docs
	"trip-planner/internal/chat"
	"trip-planner/internal/httpserver"
	tripHTTP "trip-planner/internal/trip/delivery/http"
	tgDelivery "trip-planner/internal/trip/delivery/telegram"
	"trip-planner/internal/trip/repository/searcher"
	"trip-planner/internal/trip/usecase"
	"trip-planner/pkg/llmprovider"
	"trip-planner/pkg/log"
	"trip-planner/pkg/telegram"
)

// @title       Trip Planner API
// @description Conversational trip itinerary planner: free text in, a styled multi-day itinerary with map links out.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Trip Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		os.Exit(1)
	}

	// 4. Trip domain
	placeSearcher := searcher.New(ctx, logger, cfg.Search)
	tripUC := usecase.New(logger, llm, placeSearcher, usecase.Config{
		DefaultCity: cfg.Planner.DefaultCity,
		DefaultDays: cfg.Planner.DefaultDays,
		Temperature: cfg.Planner.Temperature,
	})

	ttl, err := time.ParseDuration(cfg.Chat.TTL)
	if err != nil {
		logger.Warnf(ctx, "Invalid chat.ttl %q, using %s: %v", cfg.Chat.TTL, chat.DefaultTTL, err)
		ttl = chat.DefaultTTL
	}
	sessions := chat.NewMemoryStore(cfg.Chat.HistorySize, ttl)

	tripHandler := tripHTTP.New(logger, tripUC, sessions, cfg.Planner.MaxInputLength)

	// 5. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot, botErr := telegram.New(telegram.Config{Token: cfg.Telegram.BotToken})
		if botErr != nil {
			logger.Warnf(ctx, "Telegram disabled: %v", botErr)
		} else {
			telegramHandler = tgDelivery.New(logger, tripUC, bot, sessions, tgDelivery.Config{
				MaxInputLength: cfg.Planner.MaxInputLength,
				SecretToken:    cfg.Telegram.SecretToken,
			})
			registerWebhook(ctx, logger, bot, cfg.Telegram)
		}
	} else {
		logger.Info(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TripHandler:     tripHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service, discovering the public URL
// through ngrok when no webhook URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, ngrokAttempts, ngrokInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL not configured; updates will not be delivered")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
