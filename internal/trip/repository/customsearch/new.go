package customsearch

import (
	"context"
	"fmt"

	cse "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"trip-planner/internal/trip/repository"
	pkgLog "trip-planner/pkg/log"
)

// Config configures the Google Programmable Search backend.
type Config struct {
	APIKey   string
	EngineID string // cx
	Language string // hl
	Country  string // gl
	Endpoint string // optional API endpoint override
}

type implRepository struct {
	l        pkgLog.Logger
	service  *cse.Service
	engineID string
	language string
	country  string
}

// New creates a PlaceSearcher backed by the Custom Search JSON API.
func New(ctx context.Context, l pkgLog.Logger, cfg Config) (repository.PlaceSearcher, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("customsearch: API key is required")
	}
	if cfg.EngineID == "" {
		return nil, fmt.Errorf("customsearch: engine ID (cx) is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := cse.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("customsearch: failed to create service: %w", err)
	}

	return &implRepository{
		l:        l,
		service:  svc,
		engineID: cfg.EngineID,
		language: cfg.Language,
		country:  cfg.Country,
	}, nil
}
