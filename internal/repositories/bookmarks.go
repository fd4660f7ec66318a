package repositories

import (
	"encoding/json"
	"fmt"

	"edinburgh-events/internal/models"
)

const bookmarksKey = "bookmarks"

// BookmarkRepository persists bookmarked events under a single key-value
// entry, with the same lenient-read policy as the cart.
type BookmarkRepository struct {
	store *KVStore
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(store *KVStore) *BookmarkRepository {
	return &BookmarkRepository{store: store}
}

// Load returns the persisted bookmarks. Malformed data yields an empty list.
func (r *BookmarkRepository) Load() ([]models.Event, error) {
	raw, err := r.store.Get(bookmarksKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}
	if raw == "" {
		return []models.Event{}, nil
	}

	var events []models.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return []models.Event{}, nil
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// Save replaces the persisted bookmarks with events
func (r *BookmarkRepository) Save(events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	if err := r.store.Put(bookmarksKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	return nil
}
