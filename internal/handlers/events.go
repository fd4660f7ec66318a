package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/models"
	"edinburgh-events/internal/services"
)

// EventsHandler serves the aggregated event listings
type EventsHandler struct {
	aggregator services.AggregatorInterface
	logger     *logrus.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(aggregator services.AggregatorInterface, logger *logrus.Logger) *EventsHandler {
	return &EventsHandler{aggregator: aggregator, logger: logger}
}

// List returns events for one category, or the merged listing for "all"
// @Summary      List events
// @Description  Events for a category (music, theatre, sport, cinema) or the merged listing for "all", sorted by start time
// @Tags         events
// @Produce      json
// @Param        category  query     string  false  "Category"  default(all)
// @Success      200       {array}   models.Event
// @Failure      400       {object}  handlers.ErrorResponse
// @Failure      502       {object}  handlers.ErrorResponse
// @Router       /api/events [get]
func (h *EventsHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", "all")

	events, err := h.aggregator.FetchByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// Grouped returns every category's events keyed by category
// @Summary      Grouped events
// @Tags         events
// @Produce      json
// @Success      200  {object}  map[string][]models.Event
// @Router       /api/events/grouped [get]
func (h *EventsHandler) Grouped(c *gin.Context) {
	grouped, err := h.aggregator.FetchAllGrouped(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// GetBySourceAndID returns one event via a single targeted provider request
// @Summary      Get one event
// @Tags         events
// @Produce      json
// @Param        source  path      string  true  "Provider (ticketmaster or eventbrite)"
// @Param        id      path      string  true  "Provider event id"
// @Success      200     {object}  models.Event
// @Failure      400     {object}  handlers.ErrorResponse
// @Failure      404     {object}  handlers.ErrorResponse
// @Failure      502     {object}  handlers.ErrorResponse
// @Router       /api/events/{source}/{id} [get]
func (h *EventsHandler) GetBySourceAndID(c *gin.Context) {
	event, err := h.aggregator.FetchBySourceAndID(c.Request.Context(), c.Param("source"), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
