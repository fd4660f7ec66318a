package services

import (
	"context"

	"edinburgh-events/internal/models"
)

// TicketmasterProvider is the adapter surface for the ticketing API
// (music, theatre, sport)
type TicketmasterProvider interface {
	FetchEvents(ctx context.Context, category models.Category) ([]models.Event, error)
	FetchEventByID(ctx context.Context, id string) (models.Event, error)
}

// EventbriteProvider is the adapter surface for the marketplace API (cinema)
type EventbriteProvider interface {
	FetchEvents(ctx context.Context) ([]models.Event, error)
	FetchEventByID(ctx context.Context, id string) (models.Event, error)
}

// AggregatorInterface is what the handlers consume
type AggregatorInterface interface {
	FetchByCategory(ctx context.Context, category string) ([]models.Event, error)
	FetchAllGrouped(ctx context.Context) (map[models.Category][]models.Event, error)
	FetchBySourceAndID(ctx context.Context, source, id string) (models.Event, error)
}

// CartRepository persists cart lines
type CartRepository interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
}

// BookmarkRepository persists bookmarked events
type BookmarkRepository interface {
	Load() ([]models.Event, error)
	Save(events []models.Event) error
}

// CartServiceInterface is what the cart handlers consume
type CartServiceInterface interface {
	Get() ([]models.CartItem, error)
	Add(event *models.Event, qty int) ([]models.CartItem, error)
	Remove(key string) ([]models.CartItem, error)
	Clear() ([]models.CartItem, error)
}

// BookmarkServiceInterface is what the bookmark handlers consume
type BookmarkServiceInterface interface {
	List() ([]models.Event, error)
	IsBookmarked(key string) (bool, error)
	Toggle(event *models.Event) (bool, error)
	Remove(key string) ([]models.Event, error)
	Count() (int, error)
	Clear() error
}
