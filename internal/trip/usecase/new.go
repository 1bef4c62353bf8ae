package usecase

import (
	"trip-planner/internal/trip/repository"
	"trip-planner/pkg/llmprovider"
	pkgLog "trip-planner/pkg/log"
)

// Config holds the planner settings the use case needs.
type Config struct {
	DefaultCity string
	DefaultDays int
	Temperature float64
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      llmprovider.Generator
	searcher repository.PlaceSearcher
	cfg      Config
}

// New creates a new trip UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmprovider.Generator,
	searcher repository.PlaceSearcher,
	cfg Config,
) *implUseCase {
	if cfg.DefaultCity == "" {
		cfg.DefaultCity = DefaultCity
	}
	if cfg.DefaultDays == 0 {
		cfg.DefaultDays = DefaultDays
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		searcher: searcher,
		cfg:      cfg,
	}
}
