// Package mapslink builds Google Maps links for places.
package mapslink

import (
	"net/url"
	"strings"
)

// SearchBase is the Google Maps search endpoint.
const SearchBase = "https://www.google.com/maps/search/"

// SearchURL returns a Maps search link for "<name> <location>", query-escaped with '+' for spaces.
func SearchURL(name, location string) string {
	return SearchBase + url.QueryEscape(name+" "+location)
}

// IsMapsLink reports whether link already points at Google Maps.
func IsMapsLink(link string) bool {
	return strings.Contains(link, "google.com/maps")
}

// Markdown renders "**<name>** ([See on Maps](<link>))".
func Markdown(name, link string) string {
	return "**" + name + "** ([See on Maps](" + link + "))"
}
