package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/models"
)

// BookmarkService manages the "my events" list over the local key-value
// store. Bookmarks hold the full normalized event so the saved list renders
// without refetching.
type BookmarkService struct {
	repo   BookmarkRepository
	logger *logrus.Logger
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(repo BookmarkRepository, logger *logrus.Logger) *BookmarkService {
	return &BookmarkService{repo: repo, logger: logger}
}

// List returns all bookmarked events
func (s *BookmarkService) List() ([]models.Event, error) {
	return s.repo.Load()
}

// IsBookmarked reports whether an event with the given compound key is saved
func (s *BookmarkService) IsBookmarked(key string) (bool, error) {
	events, err := s.repo.Load()
	if err != nil {
		return false, err
	}
	for i := range events {
		if events[i].Key() == key {
			return true, nil
		}
	}
	return false, nil
}

// Toggle adds the event when absent and removes it when present. Returns
// whether the event is bookmarked after the call.
func (s *BookmarkService) Toggle(event *models.Event) (bool, error) {
	if event == nil || event.ID == "" {
		return false, models.ErrInvalidCartInput
	}

	events, err := s.repo.Load()
	if err != nil {
		return false, fmt.Errorf("failed to read bookmarks: %w", err)
	}

	key := event.Key()
	kept := make([]models.Event, 0, len(events))
	removed := false
	for _, e := range events {
		if e.Key() == key {
			removed = true
			continue
		}
		kept = append(kept, e)
	}

	bookmarked := false
	if !removed {
		kept = append(kept, *event)
		bookmarked = true
	}

	if err := s.repo.Save(kept); err != nil {
		return false, fmt.Errorf("failed to persist bookmarks: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"key": key, "bookmarked": bookmarked}).Debug("toggled bookmark")
	return bookmarked, nil
}

// Remove deletes the bookmark with the given compound key; absent keys are a
// no-op
func (s *BookmarkService) Remove(key string) ([]models.Event, error) {
	events, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks: %w", err)
	}

	kept := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Key() != key {
			kept = append(kept, e)
		}
	}

	if err := s.repo.Save(kept); err != nil {
		return nil, fmt.Errorf("failed to persist bookmarks: %w", err)
	}
	return kept, nil
}

// Count returns the number of bookmarked events
func (s *BookmarkService) Count() (int, error) {
	events, err := s.repo.Load()
	if err != nil {
		return 0, err
	}
	return len(events), nil
}

// Clear removes every bookmark
func (s *BookmarkService) Clear() error {
	if err := s.repo.Save([]models.Event{}); err != nil {
		return fmt.Errorf("failed to persist bookmarks: %w", err)
	}
	return nil
}
