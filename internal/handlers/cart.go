package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/models"
	"edinburgh-events/internal/services"
)

// CartHandler serves the shopping cart endpoints
type CartHandler struct {
	cart   services.CartServiceInterface
	logger *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart services.CartServiceInterface, logger *logrus.Logger) *CartHandler {
	return &CartHandler{cart: cart, logger: logger}
}

// AddToCartRequest is the body for adding an event to the cart
type AddToCartRequest struct {
	Event models.Event `json:"event"`
	Qty   int          `json:"qty"`
}

// Get returns the current cart lines
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Success      200  {array}  models.CartItem
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	items, err := h.cart.Get()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Add puts an event in the cart, or increments its quantity when already
// present
// @Summary      Add to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request  body      AddToCartRequest  true  "Event and quantity"
// @Success      200      {array}   models.CartItem
// @Failure      400      {object}  handlers.ErrorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	items, err := h.cart.Add(&req.Event, req.Qty)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Remove deletes one cart line by its compound key
// @Summary      Remove from cart
// @Tags         cart
// @Produce      json
// @Param        key  path     string  true  "Compound key (source:id)"
// @Success      200  {array}  models.CartItem
// @Router       /api/cart/{key} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	items, err := h.cart.Remove(c.Param("key"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Clear empties the cart
// @Summary      Clear cart
// @Tags         cart
// @Produce      json
// @Success      200  {array}  models.CartItem
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	items, err := h.cart.Clear()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
