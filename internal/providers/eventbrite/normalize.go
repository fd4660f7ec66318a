package eventbrite

import (
	"edinburgh-events/internal/models"
	"edinburgh-events/internal/providers"
)

// Wire types for the Eventbrite API; only the fields the normalizer reads

type searchResponse struct {
	Events []apiEvent `json:"events"`
}

type apiText struct {
	Text string `json:"text"`
}

type apiWhen struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`
}

type apiMoney struct {
	Currency string   `json:"currency"`
	Value    *float64 `json:"value"` // minor currency units
}

type apiEvent struct {
	ID          string   `json:"id"`
	Name        *apiText `json:"name"`
	Description *apiText `json:"description"`
	URL         string   `json:"url"`
	CategoryID  string   `json:"category_id"`
	Currency    string   `json:"currency"`
	IsFree      bool     `json:"is_free"`
	Start       *apiWhen `json:"start"`
	End         *apiWhen `json:"end"`
	Logo        *struct {
		URL      string `json:"url"`
		Original *struct {
			URL string `json:"url"`
		} `json:"original"`
	} `json:"logo"`
	TicketAvailability *struct {
		MinimumTicketPrice *apiMoney `json:"minimum_ticket_price"`
		MaximumTicketPrice *apiMoney `json:"maximum_ticket_price"`
	} `json:"ticket_availability"`
	Venue *struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
		Address   *struct {
			Address1   string `json:"address_1"`
			City       string `json:"city"`
			Region     string `json:"region"`
			Country    string `json:"country"`
			PostalCode string `json:"postal_code"`
		} `json:"address"`
	} `json:"venue"`
}

// normalize maps one marketplace record into the unified event schema. The
// category is always cinema; prices arrive in minor units and are divided by
// 100. Region and country default to the deployment's fixed locale when the
// venue record omits them.
func (c *Client) normalize(ev apiEvent) models.Event {
	var minPrice, maxPrice apiMoney
	if ev.TicketAvailability != nil {
		if ev.TicketAvailability.MinimumTicketPrice != nil {
			minPrice = *ev.TicketAvailability.MinimumTicketPrice
		}
		if ev.TicketAvailability.MaximumTicketPrice != nil {
			maxPrice = *ev.TicketAvailability.MaximumTicketPrice
		}
	}

	priceType := models.PricePaid
	if ev.IsFree {
		priceType = models.PriceFree
	}

	currency := minPrice.Currency
	if currency == "" {
		currency = maxPrice.Currency
	}
	if currency == "" {
		currency = ev.Currency
	}

	genre := ""
	if ev.CategoryID == c.config.CategoryID {
		genre = "Film"
	}

	venue := models.Venue{State: "Scotland", Country: "GB"}
	var lat, lon *float64
	if ev.Venue != nil {
		lat = providers.ParseCoord(ev.Venue.Latitude)
		lon = providers.ParseCoord(ev.Venue.Longitude)
		venue.ID = ev.Venue.ID
		venue.Name = providers.Clean(ev.Venue.Name)
		venue.Latitude = lat
		venue.Longitude = lon
		venue.MapURL = providers.MapSearchURL(lat, lon, ev.Venue.Name)
		venue.DirectionsURL = providers.DirectionsURL(lat, lon)
		if addr := ev.Venue.Address; addr != nil {
			venue.Address = providers.Clean(addr.Address1)
			venue.City = providers.Clean(addr.City)
			venue.PostalCode = providers.Clean(addr.PostalCode)
			if addr.Region != "" {
				venue.State = providers.Clean(addr.Region)
			}
			if addr.Country != "" {
				venue.Country = providers.Clean(addr.Country)
			}
		}
	}

	return models.Event{
		ID:          ev.ID,
		Source:      models.SourceEventbrite,
		Category:    models.CategoryCinema,
		Name:        providers.Clean(textOr(ev.Name)),
		Description: providers.Clean(textOr(ev.Description)),
		Classification: models.Classification{
			Segment: "Film & Media",
			Genre:   genre,
		},
		Start: whenOr(ev.Start),
		End:   whenOr(ev.End),
		Image: models.Image{URL: imageURL(ev)},
		Price: models.Price{
			Type:     priceType,
			Currency: currency,
			Min:      minorUnits(minPrice.Value),
			Max:      minorUnits(maxPrice.Value),
		},
		Venue: venue,
		URL:   providers.EnsureHTTPS(ev.URL),
	}
}

func imageURL(ev apiEvent) string {
	if ev.Logo != nil {
		if ev.Logo.Original != nil && ev.Logo.Original.URL != "" {
			return providers.EnsureHTTPS(ev.Logo.Original.URL)
		}
		if ev.Logo.URL != "" {
			return providers.EnsureHTTPS(ev.Logo.URL)
		}
	}
	return providers.PlaceholderImage
}

// minorUnits converts a price in cents/pence to the normalized decimal amount
func minorUnits(v *float64) *float64 {
	if v == nil {
		return nil
	}
	amount := *v / 100
	return &amount
}

func textOr(t *apiText) string {
	if t == nil {
		return ""
	}
	return t.Text
}

func whenOr(w *apiWhen) string {
	if w == nil {
		return ""
	}
	if w.UTC != "" {
		return w.UTC
	}
	return w.Local
}
