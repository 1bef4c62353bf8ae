// Command cli plans a single trip from the terminal.
//
//	cli "Goa for 3 days"
//	echo "Jaipur weekend" | cli
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"trip-planner/config"
	"trip-planner/internal/model"
	"trip-planner/internal/trip"
	"trip-planner/internal/trip/repository/searcher"
	"trip-planner/internal/trip/usecase"
	"trip-planner/pkg/llmprovider"
	"trip-planner/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Stderr:       true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	text, err := readInput(os.Args[1:], os.Stdin)
	if err == nil {
		err = trip.ValidateInput(text, cfg.Planner.MaxInputLength)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, inputErrorMessage(err, cfg.Planner.MaxInputLength))
		os.Exit(2)
	}

	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		os.Exit(1)
	}

	uc := usecase.New(logger, llm, searcher.New(ctx, logger, cfg.Search), usecase.Config{
		DefaultCity: cfg.Planner.DefaultCity,
		DefaultDays: cfg.Planner.DefaultDays,
		Temperature: cfg.Planner.Temperature,
	})

	output, err := uc.PlanTrip(ctx, model.Scope{UserID: "cli", Channel: model.ChannelCLI}, trip.PlanInput{Text: text})
	if err != nil {
		logger.Error(ctx, "Failed to plan trip: ", err)
		os.Exit(1)
	}

	fmt.Println(output.Itinerary)
}

// readInput joins the arguments, or reads stdin when there are none.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var sb strings.Builder
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return sb.String(), nil
}

func inputErrorMessage(err error, maxLen int) string {
	switch {
	case errors.Is(err, trip.ErrEmptyInput):
		return "usage: cli <travel request>  (or pipe the request on stdin)"
	case errors.Is(err, trip.ErrInputTooLong):
		if maxLen <= 0 {
			maxLen = trip.MaxInputLength
		}
		return fmt.Sprintf("Input is too long! Please limit your message to %d characters.", maxLen)
	default:
		return err.Error()
	}
}
