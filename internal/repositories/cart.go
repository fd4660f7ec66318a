package repositories

import (
	"encoding/json"
	"fmt"

	"edinburgh-events/internal/models"
)

const cartKey = "cart"

// CartRepository persists the cart line items under a single key-value entry.
// Reads are lenient: absent or corrupt stored data resets to an empty cart
// rather than failing, so a bad write can never brick the cart page.
type CartRepository struct {
	store *KVStore
}

// NewCartRepository creates a new cart repository
func NewCartRepository(store *KVStore) *CartRepository {
	return &CartRepository{store: store}
}

// Load returns the persisted cart lines. Malformed data yields an empty list.
func (r *CartRepository) Load() ([]models.CartItem, error) {
	raw, err := r.store.Get(cartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if raw == "" {
		return []models.CartItem{}, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Legacy or corrupt value; recover to an empty cart
		return []models.CartItem{}, nil
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

// Save replaces the persisted cart with items
func (r *CartRepository) Save(items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.store.Put(cartKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
