package repository

import (
	"context"
	"errors"
	"testing"
)

func TestFormatPlaces(t *testing.T) {
	tests := []struct {
		name     string
		local    []Place
		organic  []Place
		location string
		want     string
	}{
		{
			name:     "no results returns sentinel",
			location: "Goa",
			want:     NoResults,
		},
		{
			name:     "untitled local results do not qualify",
			local:    []Place{{Title: "", Link: "https://www.google.com/maps/place/x"}},
			location: "Goa",
			want:     NoResults,
		},
		{
			name: "local maps link used verbatim, others synthesized",
			local: []Place{
				{Title: "Baga Beach", Link: "https://www.google.com/maps/place/baga"},
				{Title: "Fort Aguada", Link: "https://example.com/fort"},
				{Title: "Chapora Fort"},
			},
			location: "Goa",
			want: "**Baga Beach** ([See on Maps](https://www.google.com/maps/place/baga))\n" +
				"**Fort Aguada** ([See on Maps](https://www.google.com/maps/search/Fort+Aguada+Goa))\n" +
				"**Chapora Fort** ([See on Maps](https://www.google.com/maps/search/Chapora+Fort+Goa))",
		},
		{
			name: "organic capped at three and tripadvisor mapped",
			organic: []Place{
				{Title: "Street food guide", Link: "https://blog.example.com/food"},
				{Title: "Ritz Classic", Link: "https://www.tripadvisor.com/Restaurant-ritz"},
				{Title: "Map entry", Link: "https://www.google.com/maps/place/entry"},
				{Title: "Fourth", Link: "https://example.com/4"},
			},
			location: "Panaji",
			want: "Street food guide - [Link](https://blog.example.com/food)\n" +
				"**Ritz Classic** ([See on Maps](https://www.google.com/maps/search/Ritz+Classic+Panaji))\n" +
				"**Map entry** ([See on Maps](https://www.google.com/maps/search/Map+entry+Panaji))",
		},
		{
			name:     "local lines precede organic lines",
			local:    []Place{{Title: "L1"}},
			organic:  []Place{{Title: "O1", Link: "https://o1.example.com"}},
			location: "Pune",
			want: "**L1** ([See on Maps](https://www.google.com/maps/search/L1+Pune))\n" +
				"O1 - [Link](https://o1.example.com)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPlaces(tt.local, tt.organic, tt.location); got != tt.want {
				t.Errorf("FormatPlaces() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBuildQuery(t *testing.T) {
	if got := BuildQuery("best street food places", "Goa"); got != "best street food places in Goa" {
		t.Errorf("unexpected query %q", got)
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(errors.New("boom")); got != "Error from place search: boom" {
		t.Errorf("unexpected error text %q", got)
	}
}

func TestDisabledSearcher(t *testing.T) {
	if got := NewDisabled().Search(context.Background(), "q", "Goa"); got != DisabledSearch {
		t.Errorf("unexpected text %q", got)
	}
}
