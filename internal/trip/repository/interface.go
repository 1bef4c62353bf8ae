package repository

import "context"

// PlaceSearcher looks up places for a category query in a location.
// Search never fails: provider errors and empty results come back as text
// that is embedded in the itinerary as-is.
type PlaceSearcher interface {
	Search(ctx context.Context, query, location string) string
}
