// Package providers holds the helpers shared by the upstream event API
// clients. Each provider subpackage normalizes its own wire format into the
// unified models.Event schema.
package providers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PlaceholderImage is served when an upstream record carries no usable image
const PlaceholderImage = "https://edinburgh-events.example.com/images/placeholder-16x9.png"

// Clean trims surrounding whitespace from upstream text fields
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// EnsureHTTPS upgrades plain-http upstream URLs; anything else passes through
func EnsureHTTPS(u string) string {
	if strings.HasPrefix(strings.ToLower(u), "http://") {
		return "https://" + u[len("http://"):]
	}
	return u
}

// MapSearchURL builds a map-search link for the venue coordinates. Absent
// coordinates yield an empty string, never a malformed URL.
func MapSearchURL(lat, lon *float64, label string) string {
	if lat == nil || lon == nil {
		return ""
	}
	query := fmt.Sprintf("%v,%v %s", *lat, *lon, label)
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(strings.TrimSpace(query))
}

// ParseCoord parses an upstream latitude/longitude string; empty or
// unparseable values come back nil
func ParseCoord(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// DirectionsURL builds a directions link for the venue coordinates, or an
// empty string when coordinates are absent.
func DirectionsURL(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", *lat, *lon)
}
