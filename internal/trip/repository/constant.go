package repository

// Text returned in place of search results.
const (
	NoResults      = "No results found for this category."
	ErrorPrefix    = "Error from place search: "
	DisabledSearch = "Place search is disabled: no search API key configured."
)

// MaxOrganicResults caps how many organic results are rendered per query.
const MaxOrganicResults = 3
