// Package searcher picks the place search backend from configuration.
package searcher

import (
	"context"

	"trip-planner/config"
	"trip-planner/internal/trip/repository"
	"trip-planner/internal/trip/repository/customsearch"
	"trip-planner/internal/trip/repository/serpapi"
	pkgLog "trip-planner/pkg/log"
	pkgSerpAPI "trip-planner/pkg/serpapi"
)

const (
	ProviderSerpAPI      = "serpapi"
	ProviderCustomSearch = "customsearch"
)

// New builds the configured PlaceSearcher. A missing key or a backend that
// cannot be constructed yields the disabled searcher and a warning, never an error.
func New(ctx context.Context, l pkgLog.Logger, cfg config.SearchConfig) repository.PlaceSearcher {
	if cfg.APIKey == "" {
		l.Warnf(ctx, "search.api_key is not set for provider %q. Search for places and map links will be disabled.", cfg.Provider)
		return repository.NewDisabled()
	}

	switch cfg.Provider {
	case ProviderCustomSearch:
		s, err := customsearch.New(ctx, l, customsearch.Config{
			APIKey:   cfg.APIKey,
			EngineID: cfg.EngineID,
			Language: cfg.Language,
			Country:  cfg.Country,
			Endpoint: cfg.BaseURL,
		})
		if err != nil {
			l.Warnf(ctx, "Place search disabled: %v", err)
			return repository.NewDisabled()
		}
		l.Info(ctx, "Place search: Google Custom Search")
		return s

	case ProviderSerpAPI, "":
		client, err := pkgSerpAPI.New(pkgSerpAPI.Config{
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
			Language: cfg.Language,
			Country:  cfg.Country,
		})
		if err != nil {
			l.Warnf(ctx, "Place search disabled: %v", err)
			return repository.NewDisabled()
		}
		l.Info(ctx, "Place search: SerpAPI")
		return serpapi.New(l, client)

	default:
		l.Warnf(ctx, "Place search disabled: unknown provider %q", cfg.Provider)
		return repository.NewDisabled()
	}
}
