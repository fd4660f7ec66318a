package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edinburgh-events/internal/models"
)

type mockBookmarkRepo struct {
	events []models.Event
}

func (m *mockBookmarkRepo) Load() ([]models.Event, error) {
	if m.events == nil {
		return []models.Event{}, nil
	}
	return m.events, nil
}

func (m *mockBookmarkRepo) Save(events []models.Event) error {
	m.events = events
	return nil
}

func TestBookmarkToggle(t *testing.T) {
	repo := &mockBookmarkRepo{}
	svc := NewBookmarkService(repo, testLogger())

	event := musicEvent()

	bookmarked, err := svc.Toggle(event)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	saved, err := svc.IsBookmarked(event.Key())
	require.NoError(t, err)
	assert.True(t, saved)

	// Second toggle removes it
	bookmarked, err = svc.Toggle(event)
	require.NoError(t, err)
	assert.False(t, bookmarked)

	saved, err = svc.IsBookmarked(event.Key())
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestBookmarkToggleRejectsInvalidEvent(t *testing.T) {
	svc := NewBookmarkService(&mockBookmarkRepo{}, testLogger())

	_, err := svc.Toggle(nil)
	assert.ErrorIs(t, err, models.ErrInvalidCartInput)

	_, err = svc.Toggle(&models.Event{})
	assert.ErrorIs(t, err, models.ErrInvalidCartInput)
}

func TestBookmarkRemoveAndCount(t *testing.T) {
	repo := &mockBookmarkRepo{}
	svc := NewBookmarkService(repo, testLogger())

	first := musicEvent()
	second := musicEvent()
	second.ID = "tm-200"

	_, err := svc.Toggle(first)
	require.NoError(t, err)
	_, err = svc.Toggle(second)
	require.NoError(t, err)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	events, err := svc.Remove(first.Key())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "tm-200", events[0].ID)

	// Absent key is a no-op
	events, err = svc.Remove("eventbrite:absent")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestBookmarkClear(t *testing.T) {
	repo := &mockBookmarkRepo{}
	svc := NewBookmarkService(repo, testLogger())

	_, err := svc.Toggle(musicEvent())
	require.NoError(t, err)

	require.NoError(t, svc.Clear())

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
