package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edinburgh-events/internal/models"
)

type mockCartService struct {
	items []models.CartItem
	err   error
}

func (m *mockCartService) Get() ([]models.CartItem, error) {
	return m.items, m.err
}

func (m *mockCartService) Add(event *models.Event, qty int) ([]models.CartItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	if event == nil || event.ID == "" {
		return nil, models.ErrInvalidCartInput
	}
	if qty < 1 {
		qty = 1
	}
	m.items = append(m.items, models.NewCartItem(event, qty))
	return m.items, nil
}

func (m *mockCartService) Remove(key string) ([]models.CartItem, error) {
	kept := make([]models.CartItem, 0, len(m.items))
	for _, item := range m.items {
		if item.Key != key {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return kept, m.err
}

func (m *mockCartService) Clear() ([]models.CartItem, error) {
	m.items = []models.CartItem{}
	return m.items, m.err
}

func cartRouter(svc *mockCartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCartHandler(svc, testLogger())
	router := gin.New()
	router.GET("/api/cart", handler.Get)
	router.POST("/api/cart", handler.Add)
	router.DELETE("/api/cart/:key", handler.Remove)
	router.DELETE("/api/cart", handler.Clear)
	return router
}

func TestCartGet(t *testing.T) {
	svc := &mockCartService{items: []models.CartItem{{Key: "ticketmaster:1", Quantity: 2}}}
	router := cartRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartAdd(t *testing.T) {
	svc := &mockCartService{}
	router := cartRouter(svc)

	body, err := json.Marshal(AddToCartRequest{
		Event: models.Event{ID: "abc", Source: models.SourceTicketmaster, Name: "Show"},
		Qty:   2,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "ticketmaster:abc", items[0].Key)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartAddMalformedBodyIs400(t *testing.T) {
	router := cartRouter(&mockCartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartAddInvalidEventIs400(t *testing.T) {
	router := cartRouter(&mockCartService{})

	body, err := json.Marshal(AddToCartRequest{Qty: 1})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartRemove(t *testing.T) {
	svc := &mockCartService{items: []models.CartItem{
		{Key: "ticketmaster:1"},
		{Key: "eventbrite:2"},
	}}
	router := cartRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cart/ticketmaster:1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "eventbrite:2", items[0].Key)
}

func TestCartClear(t *testing.T) {
	svc := &mockCartService{items: []models.CartItem{{Key: "ticketmaster:1"}}}
	router := cartRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cart", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
