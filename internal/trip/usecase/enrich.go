package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"trip-planner/internal/model"
)

// Enrich runs the category searches for location concurrently.
// Each search writes its own slot; the map is built once all have returned.
func (uc *implUseCase) Enrich(ctx context.Context, location string) model.Enrichment {
	results := make([]string, len(categories))

	var g errgroup.Group
	for i, c := range categories {
		g.Go(func() error {
			results[i] = uc.searcher.Search(ctx, c.phrase, location)
			return nil
		})
	}
	_ = g.Wait()

	enrichment := make(model.Enrichment, len(categories))
	for i, c := range categories {
		enrichment[c.key] = results[i]
	}

	uc.l.Debugf(ctx, "Enrich: location=%q categories=%d", location, len(enrichment))
	return enrichment
}
