package store

import (
	"context"
	"testing"

	"estate-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateGetRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.Create(ctx, Fields{Title: "T", Price: 100})
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)

	got, err := m.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, float64(100), got.Price)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, "", got.Location)
	assert.Equal(t, models.TransactionRental, got.TransactionType)
	assert.Equal(t, models.PropertyApartment, got.PropertyType)
	assert.Equal(t, models.DefaultOwnerName, got.OwnerName)
	assert.Equal(t, "", got.LandCategory)
	assert.False(t, got.Booked)
	assert.NotNil(t, got.Photos)
	assert.Empty(t, got.Photos)
	assert.Nil(t, got.CreatedAt)
}

func TestMemoryIDsAreMonotonic(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, _ := m.Create(ctx, Fields{Title: "a", Price: 1})
	b, _ := m.Create(ctx, Fields{Title: "b", Price: 2})
	_, err := m.Delete(ctx, b.ID)
	require.NoError(t, err)
	c, _ := m.Create(ctx, Fields{Title: "c", Price: 3})

	assert.Equal(t, "1", a.ID)
	assert.Equal(t, "2", b.ID)
	// deleted ids are never reused
	assert.Equal(t, "3", c.ID)
}

func TestMemoryListInsertionOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.Create(ctx, Fields{Title: "first", Price: 1})
	m.Create(ctx, Fields{Title: "second", Price: 2})

	items, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
}

func TestMemoryPartialUpdatePreservesFields(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	created, _ := m.Create(ctx, Fields{
		Title:    "Cottage",
		Price:    100,
		Location: "Hillside",
		Photos:   []string{"https://example.com/a.jpg"},
	})

	price := 200.0
	updated, err := m.Update(ctx, created.ID, Patch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, float64(200), updated.Price)
	assert.Equal(t, "Cottage", updated.Title)
	assert.Equal(t, "Hillside", updated.Location)
	assert.Equal(t, []string{"https://example.com/a.jpg"}, []string(updated.Photos))
}

func TestMemoryUpdateUnknownID(t *testing.T) {
	m := NewMemory()
	title := "x"
	_, err := m.Update(context.Background(), "99", Patch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteIsTerminal(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	created, _ := m.Create(ctx, Fields{Title: "gone", Price: 1})

	deleted, err := m.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "gone", deleted.Title)

	_, err = m.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// second delete fails the same way, no crash
	_, err = m.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedCoversEveryTypeCombination(t *testing.T) {
	m := NewMemory()
	m.Seed()

	items, err := m.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	seen := map[[2]string]int{}
	for _, l := range items {
		seen[[2]string{l.PropertyType, l.TransactionType}]++
	}
	for _, pt := range models.PropertyTypes {
		for _, tx := range []string{models.TransactionRental, models.TransactionSale} {
			assert.GreaterOrEqual(t, seen[[2]string{pt, tx}], 1, "%s/%s missing from seed", pt, tx)
		}
	}
}

func TestSeedLandCategorySplit(t *testing.T) {
	m := NewMemory()
	m.Seed()
	items, _ := m.List(context.Background())

	commercial, farming := 0, 0
	for _, l := range items {
		if l.PropertyType != models.PropertyLand {
			assert.Equal(t, "", l.LandCategory)
			continue
		}
		switch l.LandCategory {
		case models.LandCommercial:
			commercial++
		case models.LandFarming:
			farming++
		default:
			t.Fatalf("land listing %s has category %q", l.ID, l.LandCategory)
		}
	}
	// two land batches of five, split 3 commercial / 2 farming each
	assert.Equal(t, 6, commercial)
	assert.Equal(t, 4, farming)
}
