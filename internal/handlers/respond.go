package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/models"
)

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors onto HTTP statuses. Bad caller input is
// 400, missing events 404, upstream provider failures 502, everything else
// 500. A zero-result success is never routed through here; empty listings
// return 200 with an empty array.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	status := http.StatusInternalServerError

	var upstream *models.UpstreamError
	switch {
	case errors.Is(err, models.ErrUnknownCategory),
		errors.Is(err, models.ErrUnknownSource),
		errors.Is(err, models.ErrInvalidCartInput):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrEventNotFound):
		status = http.StatusNotFound
	case errors.As(err, &upstream):
		status = http.StatusBadGateway
	}

	if status >= 500 {
		logger.WithError(err).Error("request failed")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
