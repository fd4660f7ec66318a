package ticketmaster

import (
	"edinburgh-events/internal/models"
	"edinburgh-events/internal/providers"
)

// Wire types for the Discovery API. Only the fields the normalizer reads are
// declared; everything is optional on the wire.

type searchResponse struct {
	Embedded *struct {
		Events []apiEvent `json:"events"`
	} `json:"_embedded"`
}

type apiEvent struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Info            string              `json:"info"`
	PleaseNote      string              `json:"pleaseNote"`
	URL             string              `json:"url"`
	Images          []apiImage          `json:"images"`
	Dates           *apiDates           `json:"dates"`
	PriceRanges     []apiPriceRange     `json:"priceRanges"`
	Classifications []apiClassification `json:"classifications"`
	Embedded        *struct {
		Venues      []apiVenue      `json:"venues"`
		Attractions []apiAttraction `json:"attractions"`
	} `json:"_embedded"`
}

type apiImage struct {
	Ratio  string `json:"ratio"`
	URL    string `json:"url"`
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
}

type apiDates struct {
	Start *struct {
		DateTime  string `json:"dateTime"`
		LocalDate string `json:"localDate"`
	} `json:"start"`
	End *struct {
		DateTime string `json:"dateTime"`
	} `json:"end"`
}

type apiPriceRange struct {
	Type     string   `json:"type"`
	Currency string   `json:"currency"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
}

type apiNamed struct {
	Name string `json:"name"`
}

type apiClassification struct {
	Segment  *apiNamed `json:"segment"`
	Genre    *apiNamed `json:"genre"`
	SubGenre *apiNamed `json:"subGenre"`
}

type apiAttraction struct {
	Name   string     `json:"name"`
	Images []apiImage `json:"images"`
}

type apiVenue struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PostalCode string    `json:"postalCode"`
	City       *apiNamed `json:"city"`
	State      *struct {
		Name      string `json:"name"`
		StateCode string `json:"stateCode"`
	} `json:"state"`
	Country *struct {
		Name        string `json:"name"`
		CountryCode string `json:"countryCode"`
	} `json:"country"`
	Address *struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	Location *struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
}

// pickImage applies the image policy to one images list: prefer 3:2, then
// 16:9, then the first available.
func pickImage(images []apiImage) *apiImage {
	for _, ratio := range []string{"3_2", "16_9"} {
		for i := range images {
			if images[i].Ratio == ratio {
				return &images[i]
			}
		}
	}
	if len(images) > 0 {
		return &images[0]
	}
	return nil
}

// eventImage falls back to attraction images when the event carries none, and
// to the placeholder when nothing is available anywhere.
func eventImage(ev apiEvent) models.Image {
	img := pickImage(ev.Images)
	if img == nil && ev.Embedded != nil {
		for _, a := range ev.Embedded.Attractions {
			if img = pickImage(a.Images); img != nil {
				break
			}
		}
	}
	if img == nil {
		return models.Image{URL: providers.PlaceholderImage}
	}
	return models.Image{URL: providers.EnsureHTTPS(img.URL), Width: img.Width, Height: img.Height}
}

// normalize maps one Discovery API record into the unified event schema. It
// never fails: every optional field has a defined fallback.
func normalize(ev apiEvent, category models.Category) models.Event {
	var venue apiVenue
	if ev.Embedded != nil && len(ev.Embedded.Venues) > 0 {
		venue = ev.Embedded.Venues[0]
	}

	var price apiPriceRange
	if len(ev.PriceRanges) > 0 {
		price = ev.PriceRanges[0]
	}

	var classification apiClassification
	if len(ev.Classifications) > 0 {
		classification = ev.Classifications[0]
	}

	var start, end string
	if ev.Dates != nil {
		if ev.Dates.Start != nil {
			start = ev.Dates.Start.DateTime
			if start == "" {
				start = ev.Dates.Start.LocalDate
			}
		}
		if ev.Dates.End != nil {
			end = ev.Dates.End.DateTime
		}
	}

	description := ev.Info
	if description == "" {
		description = ev.PleaseNote
	}

	lat := providers.ParseCoord(coordOf(venue, true))
	lon := providers.ParseCoord(coordOf(venue, false))

	return models.Event{
		ID:          ev.ID,
		Source:      models.SourceTicketmaster,
		Category:    category,
		Name:        providers.Clean(ev.Name),
		Description: providers.Clean(description),
		Classification: models.Classification{
			Segment:  namedOr(classification.Segment),
			Genre:    namedOr(classification.Genre),
			SubGenre: namedOr(classification.SubGenre),
		},
		Start: start,
		End:   end,
		Image: eventImage(ev),
		Price: models.Price{
			Type:     priceType(ev.PriceRanges, price),
			Currency: price.Currency,
			Min:      price.Min,
			Max:      price.Max,
		},
		Venue: models.Venue{
			ID:            venue.ID,
			Name:          providers.Clean(venue.Name),
			City:          providers.Clean(namedOr(venue.City)),
			State:         providers.Clean(stateOf(venue)),
			Country:       providers.Clean(countryOf(venue)),
			Address:       providers.Clean(addressOf(venue)),
			PostalCode:    providers.Clean(venue.PostalCode),
			Latitude:      lat,
			Longitude:     lon,
			MapURL:        providers.MapSearchURL(lat, lon, venue.Name),
			DirectionsURL: providers.DirectionsURL(lat, lon),
		},
		URL: providers.EnsureHTTPS(ev.URL),
	}
}

func priceType(ranges []apiPriceRange, first apiPriceRange) models.PriceType {
	if len(ranges) == 0 {
		return models.PriceUnknown
	}
	if first.Type == "free" || (first.Min != nil && first.Max != nil && *first.Min == 0 && *first.Max == 0) {
		return models.PriceFree
	}
	return models.PricePaid
}

func namedOr(n *apiNamed) string {
	if n == nil {
		return ""
	}
	return n.Name
}

func stateOf(v apiVenue) string {
	if v.State == nil {
		return ""
	}
	if v.State.Name != "" {
		return v.State.Name
	}
	return v.State.StateCode
}

func countryOf(v apiVenue) string {
	if v.Country == nil {
		return ""
	}
	if v.Country.Name != "" {
		return v.Country.Name
	}
	return v.Country.CountryCode
}

func addressOf(v apiVenue) string {
	if v.Address == nil {
		return ""
	}
	return v.Address.Line1
}

func coordOf(v apiVenue, lat bool) string {
	if v.Location == nil {
		return ""
	}
	if lat {
		return v.Location.Latitude
	}
	return v.Location.Longitude
}
