package repository

import (
	"strings"

	"trip-planner/pkg/mapslink"
)

// Place is a search hit reduced to what the itinerary needs.
type Place struct {
	Title string
	Link  string
}

// BuildQuery returns the provider query "<query> in <location>".
func BuildQuery(query, location string) string {
	return query + " in " + location
}

// FormatPlaces renders local results followed by at most MaxOrganicResults organic results,
// one per line. It returns NoResults when nothing qualifies.
func FormatPlaces(local, organic []Place, location string) string {
	lines := make([]string, 0, len(local)+MaxOrganicResults)

	for _, p := range local {
		if p.Title == "" {
			continue
		}
		link := p.Link
		if !mapslink.IsMapsLink(link) {
			link = mapslink.SearchURL(p.Title, location)
		}
		lines = append(lines, mapslink.Markdown(p.Title, link))
	}

	if len(organic) > MaxOrganicResults {
		organic = organic[:MaxOrganicResults]
	}
	for _, p := range organic {
		if !mapslink.IsMapsLink(p.Link) && !strings.Contains(p.Link, "tripadvisor.com") {
			lines = append(lines, p.Title+" - [Link]("+p.Link+")")
			continue
		}
		lines = append(lines, mapslink.Markdown(p.Title, mapslink.SearchURL(p.Title, location)))
	}

	if len(lines) == 0 {
		return NoResults
	}
	return strings.Join(lines, "\n")
}

// FormatError renders a provider failure as inline text.
func FormatError(err error) string {
	return ErrorPrefix + err.Error()
}
