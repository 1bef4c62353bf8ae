package serpapi

import (
	"context"
	"encoding/json"

	"trip-planner/internal/trip/repository"
	pkgSerpAPI "trip-planner/pkg/serpapi"
)

// Search queries SerpAPI for "<query> in <location>" and formats the hits.
func (r *implRepository) Search(ctx context.Context, query, location string) string {
	resp, err := r.client.Search(ctx, repository.BuildQuery(query, location))
	if err != nil {
		r.l.Warnf(ctx, "serpapi.Search: query=%q location=%q: %v", query, location, err)
		return repository.FormatError(err)
	}

	organic := resp.OrganicResults
	if len(organic) > repository.MaxOrganicResults {
		organic = organic[:repository.MaxOrganicResults]
	}

	local := toPlaces(resp.LocalResults)
	r.l.Debugf(ctx, "serpapi.Search: query=%q location=%q local=%d organic=%d", query, location, len(local), len(organic))

	return repository.FormatPlaces(local, toPlaces(organic), location)
}

// toPlaces decodes object entries and drops anything else.
func toPlaces(raws []json.RawMessage) []repository.Place {
	places := make([]repository.Place, 0, len(raws))
	for _, raw := range raws {
		res, ok := pkgSerpAPI.DecodeResult(raw)
		if !ok {
			continue
		}
		places = append(places, repository.Place{Title: res.Title, Link: res.Link})
	}
	return places
}
