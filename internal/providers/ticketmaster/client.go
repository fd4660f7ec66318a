// Package ticketmaster is the Discovery API client covering the music,
// theatre and sport categories.
package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/config"
	"edinburgh-events/internal/models"
)

// Category → Discovery API segment name. The category is supplied by the
// caller and drives the query; it is never derived from the response in the
// bulk path.
var categorySegments = map[models.Category]string{
	models.CategoryMusic:   "Music",
	models.CategoryTheatre: "Arts & Theatre",
	models.CategorySport:   "Sports",
}

// Client calls the Ticketmaster Discovery API
type Client struct {
	config config.TicketmasterConfig
	client *http.Client
	logger *logrus.Logger
}

// NewClient creates a new Ticketmaster client
func NewClient(cfg config.TicketmasterConfig, logger *logrus.Logger) *Client {
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// FetchEvents returns the normalized upcoming events for one category. Only
// music, theatre and sport are served by this provider.
func (c *Client) FetchEvents(ctx context.Context, category models.Category) ([]models.Event, error) {
	segment, ok := categorySegments[category]
	if !ok {
		return nil, fmt.Errorf("%w: ticketmaster does not serve %q", models.ErrUnknownCategory, category)
	}

	params := url.Values{}
	params.Set("apikey", c.config.APIKey)
	params.Set("city", c.config.City)
	params.Set("countryCode", c.config.CountryCode)
	params.Set("segmentName", segment)
	params.Set("sort", "date,asc")
	params.Set("startDateTime", time.Now().UTC().Format("2006-01-02T15:04:05Z"))
	params.Set("size", fmt.Sprintf("%d", c.config.PageSize))
	params.Set("includeTBA", "yes")
	params.Set("includeTBD", "yes")

	var resp searchResponse
	if err := c.getJSON(ctx, c.config.BaseURL+"/events.json?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	var raw []apiEvent
	if resp.Embedded != nil {
		raw = resp.Embedded.Events
	}

	events := make([]models.Event, 0, len(raw))
	for _, ev := range raw {
		events = append(events, normalize(ev, category))
	}
	return events, nil
}

// FetchEventByID fetches and normalizes a single event. The category is
// inferred back from the segment name since the by-id endpoint has no caller
// category; normalization is otherwise identical to the bulk path.
func (c *Client) FetchEventByID(ctx context.Context, id string) (models.Event, error) {
	params := url.Values{}
	params.Set("apikey", c.config.APIKey)

	endpoint := fmt.Sprintf("%s/events/%s.json?%s", c.config.BaseURL, url.PathEscape(id), params.Encode())

	var ev apiEvent
	if err := c.getJSON(ctx, endpoint, &ev); err != nil {
		var upstream *models.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return models.Event{}, fmt.Errorf("%w: ticketmaster:%s", models.ErrEventNotFound, id)
		}
		return models.Event{}, err
	}

	return normalize(ev, categoryFromSegment(ev)), nil
}

func categoryFromSegment(ev apiEvent) models.Category {
	var segment string
	if len(ev.Classifications) > 0 && ev.Classifications[0].Segment != nil {
		segment = strings.ToLower(ev.Classifications[0].Segment.Name)
	}
	switch {
	case strings.Contains(segment, "music"):
		return models.CategoryMusic
	case strings.Contains(segment, "arts"), strings.Contains(segment, "theatre"):
		return models.CategoryTheatre
	case strings.Contains(segment, "sport"):
		return models.CategorySport
	}
	return ""
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build ticketmaster request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ticketmaster request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &models.UpstreamError{
			Source:     models.SourceTicketmaster,
			StatusCode: resp.StatusCode,
			Snippet:    strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode ticketmaster response: %w", err)
	}
	return nil
}
