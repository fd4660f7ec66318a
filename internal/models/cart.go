package models

// CartItem is one line in the shopping cart, keyed by the event's compound
// key. The display fields are a snapshot captured at add time so the cart can
// render without refetching the source. The discount fields are computed once
// when the line is first added and never recomputed afterwards; re-adding the
// same event only increments Quantity.
type CartItem struct {
	Key      string `json:"key"`
	Quantity int    `json:"qty"`

	// Snapshot of the event at add time
	ID        string   `json:"id"`
	Source    Source   `json:"source"`
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	Start     string   `json:"start"`
	VenueName string   `json:"venueName"`
	Image     string   `json:"image"`
	PriceMin  *float64 `json:"priceMin"`
	PriceMax  *float64 `json:"priceMax"`
	Currency  string   `json:"currency"`
	URL       string   `json:"url"`

	// Per-unit pricing frozen at first add
	DiscountPct    int     `json:"discountPct"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
	ComparePrice   float64 `json:"comparePrice"`
}

// NewCartItem builds a cart line from a normalized event snapshot
func NewCartItem(e *Event, qty int) CartItem {
	return CartItem{
		Key:       e.Key(),
		Quantity:  qty,
		ID:        e.ID,
		Source:    e.Source,
		Category:  e.Category,
		Name:      e.Name,
		Start:     e.Start,
		VenueName: e.Venue.Name,
		Image:     e.Image.URL,
		PriceMin:  e.Price.Min,
		PriceMax:  e.Price.Max,
		Currency:  e.Price.Currency,
		URL:       e.URL,
	}
}
