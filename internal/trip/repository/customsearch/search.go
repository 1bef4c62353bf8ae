package customsearch

import (
	"context"

	"trip-planner/internal/trip/repository"
)

// Search runs a web search for "<query> in <location>".
// The API has no local pack, so every hit is treated as an organic result.
func (r *implRepository) Search(ctx context.Context, query, location string) string {
	call := r.service.Cse.List().
		Cx(r.engineID).
		Q(repository.BuildQuery(query, location)).
		Num(repository.MaxOrganicResults)
	if r.language != "" {
		call = call.Hl(r.language)
	}
	if r.country != "" {
		call = call.Gl(r.country)
	}

	res, err := call.Context(ctx).Do()
	if err != nil {
		r.l.Warnf(ctx, "customsearch.Search: query=%q location=%q: %v", query, location, err)
		return repository.FormatError(err)
	}

	organic := make([]repository.Place, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil {
			continue
		}
		organic = append(organic, repository.Place{Title: item.Title, Link: item.Link})
	}

	return repository.FormatPlaces(nil, organic, location)
}
