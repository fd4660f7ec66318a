package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/models"
)

// CartService manages the shopping cart over the local key-value store. Every
// mutating operation persists before returning, so the returned list always
// matches what a subsequent Get would load.
type CartService struct {
	repo   CartRepository
	logger *logrus.Logger
}

// NewCartService creates a new cart service
func NewCartService(repo CartRepository, logger *logrus.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

// Get returns the current cart lines. An empty or corrupt store yields an
// empty list, never an error surface for the caller to handle.
func (s *CartService) Get() ([]models.CartItem, error) {
	return s.repo.Load()
}

// Add puts an event in the cart. Re-adding an event already in the cart only
// increments its quantity; the snapshot and the discount metadata captured at
// first add are left untouched.
func (s *CartService) Add(event *models.Event, qty int) ([]models.CartItem, error) {
	if event == nil || event.ID == "" {
		return nil, models.ErrInvalidCartInput
	}
	if qty < 1 {
		qty = 1
	}

	items, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	key := event.Key()
	found := false
	for i := range items {
		if items[i].Key == key {
			items[i].Quantity += qty
			found = true
			break
		}
	}

	if !found {
		item := models.NewCartItem(event, qty)
		quote := QuoteForEvent(event)
		item.DiscountPct = quote.DiscountPct
		item.DiscountAmount = round2(quote.SaveAmount)
		item.FinalPrice = round2(quote.FinalPrice)
		item.ComparePrice = round2(quote.ComparePrice)
		items = append(items, item)
	}

	if err := s.repo.Save(items); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"key": key, "qty": qty}).Debug("added event to cart")
	return items, nil
}

// Remove deletes the line with the given compound key. Removing an absent key
// is a no-op, not an error.
func (s *CartService) Remove(key string) ([]models.CartItem, error) {
	items, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Key != key {
			kept = append(kept, item)
		}
	}

	if err := s.repo.Save(kept); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return kept, nil
}

// Clear empties the cart
func (s *CartService) Clear() ([]models.CartItem, error) {
	empty := []models.CartItem{}
	if err := s.repo.Save(empty); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return empty, nil
}
