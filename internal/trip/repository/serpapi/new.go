package serpapi

import (
	"trip-planner/internal/trip/repository"
	pkgLog "trip-planner/pkg/log"
	pkgSerpAPI "trip-planner/pkg/serpapi"
)

type implRepository struct {
	l      pkgLog.Logger
	client *pkgSerpAPI.Client
}

// New creates a PlaceSearcher backed by SerpAPI.
func New(l pkgLog.Logger, client *pkgSerpAPI.Client) repository.PlaceSearcher {
	return &implRepository{
		l:      l,
		client: client,
	}
}
