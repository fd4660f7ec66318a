package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/models"
)

// AggregatorService fans requests out to the provider adapters and merges
// their normalized output into one listing.
type AggregatorService struct {
	ticketmaster TicketmasterProvider
	eventbrite   EventbriteProvider
	logger       *logrus.Logger
}

// NewAggregatorService creates a new aggregator over the two providers
func NewAggregatorService(tm TicketmasterProvider, eb EventbriteProvider, logger *logrus.Logger) *AggregatorService {
	return &AggregatorService{
		ticketmaster: tm,
		eventbrite:   eb,
		logger:       logger,
	}
}

// FetchByCategory returns the events for one category sorted by start time,
// or the merged listing across every category for "all". Single-category
// failures surface to the caller; in the "all" path each branch settles
// independently and failed branches only log, so one provider outage degrades
// the listing instead of blanking it.
func (s *AggregatorService) FetchByCategory(ctx context.Context, category string) ([]models.Event, error) {
	switch cat := models.Category(strings.ToLower(category)); cat {
	case models.CategoryCinema:
		events, err := s.eventbrite.FetchEvents(ctx)
		if err != nil {
			return nil, err
		}
		sortByStart(events)
		return events, nil
	case models.CategoryMusic, models.CategoryTheatre, models.CategorySport:
		events, err := s.ticketmaster.FetchEvents(ctx, cat)
		if err != nil {
			return nil, err
		}
		sortByStart(events)
		return events, nil
	case models.CategoryAll:
		grouped, err := s.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
		var merged []models.Event
		for _, events := range grouped {
			merged = append(merged, events...)
		}
		sortByStart(merged)
		return merged, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: music, theatre, sport, cinema, all)", models.ErrUnknownCategory, category)
	}
}

// FetchAllGrouped returns the events of every category keyed by category,
// with the same per-branch failure tolerance as the "all" listing.
func (s *AggregatorService) FetchAllGrouped(ctx context.Context) (map[models.Category][]models.Event, error) {
	return s.fetchAll(ctx)
}

// FetchBySourceAndID fetches one event with a single targeted request instead
// of scanning categories. The result is normalized by the same functions as
// the bulk paths.
func (s *AggregatorService) FetchBySourceAndID(ctx context.Context, source, id string) (models.Event, error) {
	switch models.Source(strings.ToLower(source)) {
	case models.SourceTicketmaster:
		return s.ticketmaster.FetchEventByID(ctx, id)
	case models.SourceEventbrite:
		return s.eventbrite.FetchEventByID(ctx, id)
	default:
		return models.Event{}, fmt.Errorf("%w: %q (valid: ticketmaster, eventbrite)", models.ErrUnknownSource, source)
	}
}

// fetchAll dispatches every category concurrently and waits for all branches
// to settle. Errors never cancel siblings; a failed branch contributes an
// empty slice.
func (s *AggregatorService) fetchAll(ctx context.Context) (map[models.Category][]models.Event, error) {
	type branch struct {
		category models.Category
		fetch    func(context.Context) ([]models.Event, error)
	}

	branches := []branch{
		{models.CategoryMusic, func(ctx context.Context) ([]models.Event, error) {
			return s.ticketmaster.FetchEvents(ctx, models.CategoryMusic)
		}},
		{models.CategoryTheatre, func(ctx context.Context) ([]models.Event, error) {
			return s.ticketmaster.FetchEvents(ctx, models.CategoryTheatre)
		}},
		{models.CategorySport, func(ctx context.Context) ([]models.Event, error) {
			return s.ticketmaster.FetchEvents(ctx, models.CategorySport)
		}},
		{models.CategoryCinema, func(ctx context.Context) ([]models.Event, error) {
			return s.eventbrite.FetchEvents(ctx)
		}},
	}

	results := make([][]models.Event, len(branches))
	var wg sync.WaitGroup
	for i, b := range branches {
		wg.Add(1)
		go func(i int, b branch) {
			defer wg.Done()
			events, err := b.fetch(ctx)
			if err != nil {
				s.logger.WithError(err).WithField("category", b.category).
					Warn("category fetch failed; omitting from merged results")
				return
			}
			results[i] = events
		}(i, b)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grouped := make(map[models.Category][]models.Event, len(branches))
	for i, b := range branches {
		events := results[i]
		if events == nil {
			events = []models.Event{}
		}
		sortByStart(events)
		grouped[b.category] = events
	}
	return grouped, nil
}

// sortByStart orders events ascending by start timestamp. ISO-8601 strings
// sort lexically in chronological order, and the empty string (no announced
// date) sorts first.
func sortByStart(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start < events[j].Start
	})
}
