package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edinburgh-events/internal/database"
	"edinburgh-events/internal/models"
)

func newTestStore(t *testing.T) *KVStore {
	t.Helper()
	db, err := database.NewConnection(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema())
	t.Cleanup(func() { db.Close() })
	return NewKVStore(db.DB)
}

func TestKVStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	value, err := store.Get("missing")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.Put("greeting", "hello"))
	value, err = store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	// Put replaces
	require.NoError(t, store.Put("greeting", "goodbye"))
	value, err = store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "goodbye", value)

	require.NoError(t, store.Delete("greeting"))
	value, err = store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	// Deleting an absent key is a no-op
	require.NoError(t, store.Delete("never-stored"))
}

func TestCartRepositoryLenientReads(t *testing.T) {
	store := newTestStore(t)
	repo := NewCartRepository(store)

	// Absent key
	items, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	// Corrupt stored value recovers to empty instead of erroring
	require.NoError(t, store.Put("cart", "{not json"))
	items, err = repo.Load()
	require.NoError(t, err)
	assert.Empty(t, items)

	// Stored JSON null
	require.NoError(t, store.Put("cart", "null"))
	items, err = repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartRepositoryRoundTrip(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))

	saved := []models.CartItem{
		{Key: "ticketmaster:abc", ID: "abc", Source: models.SourceTicketmaster, Name: "Show", Quantity: 2, FinalPrice: 40, DiscountPct: 15},
	}
	require.NoError(t, repo.Save(saved))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestBookmarkRepositoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookmarkRepository(store)

	events, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, events)

	saved := []models.Event{
		{ID: "123", Source: models.SourceEventbrite, Category: models.CategoryCinema, Name: "Screening"},
	}
	require.NoError(t, repo.Save(saved))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "eventbrite:123", loaded[0].Key())

	// Corrupt value recovers to empty
	require.NoError(t, store.Put("bookmarks", "[broken"))
	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRepositoriesShareStoreWithoutCollision(t *testing.T) {
	store := newTestStore(t)
	cart := NewCartRepository(store)
	bookmarks := NewBookmarkRepository(store)

	require.NoError(t, cart.Save([]models.CartItem{{Key: "ticketmaster:1", ID: "1", Quantity: 1}}))
	require.NoError(t, bookmarks.Save([]models.Event{{ID: "2", Source: models.SourceEventbrite}}))

	items, err := cart.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ticketmaster:1", items[0].Key)

	events, err := bookmarks.Load()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2", events[0].ID)
}
