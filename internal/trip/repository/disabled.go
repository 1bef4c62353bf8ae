package repository

import "context"

type disabledSearcher struct{}

// NewDisabled returns a PlaceSearcher used when no search API key is configured.
func NewDisabled() PlaceSearcher {
	return disabledSearcher{}
}

func (disabledSearcher) Search(context.Context, string, string) string {
	return DisabledSearch
}
