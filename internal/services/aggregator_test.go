package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edinburgh-events/internal/models"
)

// Mock providers for testing

type mockTicketmaster struct {
	events map[models.Category][]models.Event
	errs   map[models.Category]error
	byID   map[string]models.Event
}

func (m *mockTicketmaster) FetchEvents(_ context.Context, category models.Category) ([]models.Event, error) {
	if err := m.errs[category]; err != nil {
		return nil, err
	}
	return m.events[category], nil
}

func (m *mockTicketmaster) FetchEventByID(_ context.Context, id string) (models.Event, error) {
	if e, ok := m.byID[id]; ok {
		return e, nil
	}
	return models.Event{}, models.ErrEventNotFound
}

type mockEventbrite struct {
	events []models.Event
	err    error
	byID   map[string]models.Event
}

func (m *mockEventbrite) FetchEvents(_ context.Context) ([]models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockEventbrite) FetchEventByID(_ context.Context, id string) (models.Event, error) {
	if e, ok := m.byID[id]; ok {
		return e, nil
	}
	return models.Event{}, models.ErrEventNotFound
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func tmEvent(id, start string, category models.Category) models.Event {
	return models.Event{ID: id, Source: models.SourceTicketmaster, Category: category, Start: start}
}

func TestFetchByCategorySortsWithMissingStartFirst(t *testing.T) {
	tm := &mockTicketmaster{events: map[models.Category][]models.Event{
		models.CategoryMusic: {
			tmEvent("march", "2024-03-01T19:00:00Z", models.CategoryMusic),
			tmEvent("january", "2024-01-01T19:00:00Z", models.CategoryMusic),
			tmEvent("tba", "", models.CategoryMusic),
		},
	}}
	agg := NewAggregatorService(tm, &mockEventbrite{}, testLogger())

	events, err := agg.FetchByCategory(context.Background(), "music")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "tba", events[0].ID)
	assert.Equal(t, "january", events[1].ID)
	assert.Equal(t, "march", events[2].ID)
}

func TestFetchByCategoryCinemaDelegatesToEventbrite(t *testing.T) {
	eb := &mockEventbrite{events: []models.Event{
		{ID: "film", Source: models.SourceEventbrite, Category: models.CategoryCinema},
	}}
	agg := NewAggregatorService(&mockTicketmaster{}, eb, testLogger())

	events, err := agg.FetchByCategory(context.Background(), "cinema")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.SourceEventbrite, events[0].Source)
}

func TestFetchByCategoryUnknownCategoryFailsFast(t *testing.T) {
	agg := NewAggregatorService(&mockTicketmaster{}, &mockEventbrite{}, testLogger())

	events, err := agg.FetchByCategory(context.Background(), "golf")
	require.Error(t, err)
	assert.Nil(t, events)
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
	// The error must name the valid set so a typo is diagnosable
	assert.Contains(t, err.Error(), "music")
	assert.Contains(t, err.Error(), "cinema")
}

func TestFetchByCategorySingleCategoryErrorPropagates(t *testing.T) {
	tm := &mockTicketmaster{errs: map[models.Category]error{
		models.CategorySport: &models.UpstreamError{Source: models.SourceTicketmaster, StatusCode: 503},
	}}
	agg := NewAggregatorService(tm, &mockEventbrite{}, testLogger())

	_, err := agg.FetchByCategory(context.Background(), "sport")
	require.Error(t, err)
	var upstream *models.UpstreamError
	assert.ErrorAs(t, err, &upstream)
	assert.Equal(t, 503, upstream.StatusCode)
}

func TestFetchByCategoryAllToleratesPartialFailure(t *testing.T) {
	tm := &mockTicketmaster{
		events: map[models.Category][]models.Event{
			models.CategoryMusic:   {tmEvent("m1", "2024-02-01T19:00:00Z", models.CategoryMusic)},
			models.CategoryTheatre: {tmEvent("t1", "2024-01-15T19:00:00Z", models.CategoryTheatre)},
		},
		errs: map[models.Category]error{
			models.CategorySport: errors.New("segment temporarily unavailable"),
		},
	}
	eb := &mockEventbrite{events: []models.Event{
		{ID: "c1", Source: models.SourceEventbrite, Category: models.CategoryCinema, Start: "2024-01-01T19:00:00Z"},
	}}
	agg := NewAggregatorService(tm, eb, testLogger())

	events, err := agg.FetchByCategory(context.Background(), "all")
	require.NoError(t, err, "one failed branch must not fail the merged listing")
	require.Len(t, events, 3)

	// Merged and sorted across the surviving branches
	assert.Equal(t, "c1", events[0].ID)
	assert.Equal(t, "t1", events[1].ID)
	assert.Equal(t, "m1", events[2].ID)
}

func TestFetchAllGroupedIncludesEveryCategory(t *testing.T) {
	tm := &mockTicketmaster{
		events: map[models.Category][]models.Event{
			models.CategoryMusic: {tmEvent("m1", "2024-02-01T19:00:00Z", models.CategoryMusic)},
		},
		errs: map[models.Category]error{
			models.CategoryTheatre: errors.New("down"),
		},
	}
	agg := NewAggregatorService(tm, &mockEventbrite{}, testLogger())

	grouped, err := agg.FetchAllGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, grouped, 4)

	assert.Len(t, grouped[models.CategoryMusic], 1)
	// Failed and empty branches both come back as empty, never nil
	assert.NotNil(t, grouped[models.CategoryTheatre])
	assert.Empty(t, grouped[models.CategoryTheatre])
	assert.NotNil(t, grouped[models.CategoryCinema])
}

func TestFetchBySourceAndID(t *testing.T) {
	tm := &mockTicketmaster{byID: map[string]models.Event{
		"abc": tmEvent("abc", "2024-05-01T20:00:00Z", models.CategoryMusic),
	}}
	eb := &mockEventbrite{byID: map[string]models.Event{
		"123": {ID: "123", Source: models.SourceEventbrite, Category: models.CategoryCinema},
	}}
	agg := NewAggregatorService(tm, eb, testLogger())

	event, err := agg.FetchBySourceAndID(context.Background(), "ticketmaster", "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", event.ID)

	event, err = agg.FetchBySourceAndID(context.Background(), "Eventbrite", "123")
	require.NoError(t, err)
	assert.Equal(t, "123", event.ID)

	_, err = agg.FetchBySourceAndID(context.Background(), "stubhub", "x")
	assert.ErrorIs(t, err, models.ErrUnknownSource)

	_, err = agg.FetchBySourceAndID(context.Background(), "ticketmaster", "missing")
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestFetchByCategoryAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agg := NewAggregatorService(&mockTicketmaster{}, &mockEventbrite{}, testLogger())
	_, err := agg.FetchByCategory(ctx, "all")
	assert.ErrorIs(t, err, context.Canceled)
}
