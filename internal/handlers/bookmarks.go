package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/models"
	"edinburgh-events/internal/services"
)

// BookmarksHandler serves the saved-events endpoints
type BookmarksHandler struct {
	bookmarks services.BookmarkServiceInterface
	logger    *logrus.Logger
}

// NewBookmarksHandler creates a new bookmarks handler
func NewBookmarksHandler(bookmarks services.BookmarkServiceInterface, logger *logrus.Logger) *BookmarksHandler {
	return &BookmarksHandler{bookmarks: bookmarks, logger: logger}
}

// ToggleResponse reports the bookmark state after a toggle
type ToggleResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

// List returns all bookmarked events
// @Summary      List bookmarks
// @Tags         bookmarks
// @Produce      json
// @Success      200  {array}  models.Event
// @Router       /api/bookmarks [get]
func (h *BookmarksHandler) List(c *gin.Context) {
	events, err := h.bookmarks.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Toggle bookmarks the event when absent and removes it when present
// @Summary      Toggle bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        event  body      models.Event  true  "Event to toggle"
// @Success      200    {object}  ToggleResponse
// @Failure      400    {object}  handlers.ErrorResponse
// @Router       /api/bookmarks/toggle [post]
func (h *BookmarksHandler) Toggle(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	bookmarked, err := h.bookmarks.Toggle(&event)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ToggleResponse{Bookmarked: bookmarked})
}

// Remove deletes one bookmark by its compound key
// @Summary      Remove bookmark
// @Tags         bookmarks
// @Produce      json
// @Param        key  path     string  true  "Compound key (source:id)"
// @Success      200  {array}  models.Event
// @Router       /api/bookmarks/{key} [delete]
func (h *BookmarksHandler) Remove(c *gin.Context) {
	events, err := h.bookmarks.Remove(c.Param("key"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
