// Package eventbrite is the marketplace API client. It only serves the
// cinema category; the deployment is scoped to a single city.
package eventbrite

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

// Client calls the Eventbrite API
type Client struct {
	config config.EventbriteConfig
	client *http.Client
	logger *logrus.Logger
}

// NewClient creates a new Eventbrite client
func NewClient(cfg config.EventbriteConfig, logger *logrus.Logger) *Client {
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// FetchEvents returns the normalized upcoming cinema events
func (c *Client) FetchEvents(ctx context.Context) ([]models.Event, error) {
	params := url.Values{}
	params.Set("location.address", c.config.Location)
	params.Set("start_date.range_start", time.Now().UTC().Format("2006-01-02T15:04:05Z"))
	params.Set("sort_by", "date")
	params.Set("categories", c.config.CategoryID)
	params.Set("q", c.config.Query)
	params.Set("expand", "venue,ticket_availability")
	params.Set("page_size", fmt.Sprintf("%d", c.config.PageSize))

	var resp searchResponse
	if err := c.getJSON(ctx, c.config.BaseURL+"/events/search/?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(resp.Events))
	for _, ev := range resp.Events {
		events = append(events, c.normalize(ev))
	}
	return events, nil
}

// FetchEventByID fetches and normalizes a single event, expanding the venue
// and ticket availability so the by-id path produces the same fields as the
// bulk path.
func (c *Client) FetchEventByID(ctx context.Context, id string) (models.Event, error) {
	endpoint := fmt.Sprintf("%s/events/%s/?expand=venue,ticket_availability,category", c.config.BaseURL, url.PathEscape(id))

	var ev apiEvent
	if err := c.getJSON(ctx, endpoint, &ev); err != nil {
		var upstream *models.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return models.Event{}, fmt.Errorf("%w: eventbrite:%s", models.ErrEventNotFound, id)
		}
		return models.Event{}, err
	}

	return c.normalize(ev), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build eventbrite request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("eventbrite request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &models.UpstreamError{
			Source:     models.SourceEventbrite,
			StatusCode: resp.StatusCode,
			Snippet:    strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode eventbrite response: %w", err)
	}
	return nil
}
