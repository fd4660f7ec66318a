package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Source identifies the upstream provider an event came from
type Source string

const (
	SourceTicketmaster Source = "ticketmaster"
	SourceEventbrite   Source = "eventbrite"
)

// Category represents the browsing category of an event
type Category string

const (
	CategoryMusic   Category = "music"
	CategoryTheatre Category = "theatre"
	CategorySport   Category = "sport"
	CategoryCinema  Category = "cinema"
	// CategoryAll is accepted by the aggregation layer only; no event carries it
	CategoryAll Category = "all"
)

// Categories lists every concrete category an event can belong to
var Categories = []Category{CategoryMusic, CategoryTheatre, CategorySport, CategoryCinema}

// Classification carries the upstream genre taxonomy; fields are empty strings when absent
type Classification struct {
	Segment  string `json:"segment"`
	Genre    string `json:"genre"`
	SubGenre string `json:"subGenre"`
}

// Image is the display image chosen for an event
type Image struct {
	URL    string `json:"url"`
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
}

// PriceType describes how an event is priced
type PriceType string

const (
	PriceFree    PriceType = "free"
	PricePaid    PriceType = "paid"
	PriceUnknown PriceType = ""
)

// Price is the normalized price range for an event. Min/Max are nil when the
// upstream carries no usable price data.
type Price struct {
	Type     PriceType `json:"type"`
	Currency string    `json:"currency"`
	Min      *float64  `json:"min"`
	Max      *float64  `json:"max"`
}

// Venue is the normalized venue block. MapURL and DirectionsURL are derived
// from the coordinates and are empty strings when coordinates are absent.
type Venue struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	Address       string   `json:"address"`
	PostalCode    string   `json:"postalCode"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	MapURL        string   `json:"mapUrl"`
	DirectionsURL string   `json:"directionsUrl"`
}

// Event is the unified event model every provider is normalized into.
// Start/End are ISO-8601 timestamps; the empty string means the date is not
// announced yet. ISO-8601 strings compare lexically in chronological order, so
// sorting treats missing dates as earliest.
type Event struct {
	ID             string         `json:"id"`
	Source         Source         `json:"source"`
	Category       Category       `json:"category"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Classification Classification `json:"classifications"`
	Start          string         `json:"start"`
	End            string         `json:"end"`
	Image          Image          `json:"image"`
	Price          Price          `json:"price"`
	Venue          Venue          `json:"venue"`
	URL            string         `json:"url"`
}

// Key returns the compound identifier for an event. Event ids are only unique
// within their source, so source:id is the only globally unique key.
func (e *Event) Key() string {
	return fmt.Sprintf("%s:%s", e.Source, e.ID)
}

// ClassificationLine renders the "segment • genre • subGenre" display line,
// skipping empty parts.
func (e *Event) ClassificationLine() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Classification.Segment, e.Classification.Genre, e.Classification.SubGenre} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " • ")
}

// FormatWhen returns a human-readable date/time for the event start, or the
// empty string when no start is announced. Unparseable timestamps are shown
// as-is rather than dropped.
func (e *Event) FormatWhen() string {
	if e.Start == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, e.Start); err == nil {
		return t.Format("Mon, Jan 2, 2006, 03:04 PM")
	}
	if t, err := time.Parse("2006-01-02", e.Start); err == nil {
		return t.Format("Mon, Jan 2, 2006")
	}
	return e.Start
}

// Line renders the price for display: a single value when min equals max, a
// range when both are present, "From X" when only the minimum is known, and an
// em-dash placeholder when there is no usable price data.
func (p Price) Line() string {
	if p.Type == PriceFree {
		return "Free"
	}
	if p.Min != nil && p.Max != nil {
		if *p.Min == *p.Max {
			return strings.TrimSpace(formatAmount(*p.Min) + " " + p.Currency)
		}
		return strings.TrimSpace(fmt.Sprintf("%s–%s %s", formatAmount(*p.Min), formatAmount(*p.Max), p.Currency))
	}
	if p.Min != nil {
		return strings.TrimSpace("From " + formatAmount(*p.Min) + " " + p.Currency)
	}
	return "—"
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
