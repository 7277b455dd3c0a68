package browse

import (
	"fmt"
	"testing"

	"estate-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(id, pt, tx string, booked bool) models.Listing {
	return models.Listing{ID: id, Title: id, PropertyType: pt, TransactionType: tx, Booked: booked}
}

func TestFilterByTypeAndTransaction(t *testing.T) {
	items := []models.Listing{
		listing("1", "apartment", "rental", false),
		listing("2", "house", "rental", false),
		listing("3", "apartment", "sale", false),
	}

	got := Filter(items, Selector{PropertyType: "apartment", TransactionType: "rental"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// case-insensitive on both axes
	got = Filter(items, Selector{PropertyType: "Apartment", TransactionType: "RENTAL"})
	require.Len(t, got, 1)

	// empty selector matches everything
	assert.Len(t, Filter(items, Selector{}), 3)
}

func TestFilterLandCategory(t *testing.T) {
	items := []models.Listing{
		{ID: "1", PropertyType: "land", TransactionType: "sale", LandCategory: "commercial"},
		{ID: "2", PropertyType: "land", TransactionType: "sale", LandCategory: "farming"},
		{ID: "3", PropertyType: "house", TransactionType: "sale"},
	}

	got := Filter(items, Selector{PropertyType: "land", LandCategory: "farming"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// the sub-filter only applies when land is selected
	got = Filter(items, Selector{LandCategory: "farming"})
	assert.Len(t, got, 3)
}

func TestFilterLocationSubstring(t *testing.T) {
	items := []models.Listing{
		{ID: "1", PropertyType: "house", TransactionType: "rental", Location: "Greenfield Block 2"},
		{ID: "2", PropertyType: "house", TransactionType: "rental", Location: "Lakeview Avenue 1"},
	}

	got := Filter(items, Selector{Location: "greenfield"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestCountsByTypeInvariant(t *testing.T) {
	items := []models.Listing{
		listing("1", "apartment", "rental", false),
		listing("2", "apartment", "rental", true),
		listing("3", "apartment", "sale", false),
		listing("4", "apartment", "sale", true),
		listing("5", "house", "rental", false),
		listing("6", "castle", "rental", false),   // unknown type: no bucket
		listing("7", "apartment", "barter", true), // unknown transaction: no bucket
	}

	counts := CountsByType(items)
	for _, pt := range models.PropertyTypes {
		assert.Contains(t, counts, pt)
	}

	a := counts["apartment"]
	assert.Equal(t, Bucket{Available: 1, Booked: 1}, a.Rental)
	assert.Equal(t, Bucket{Available: 1, Booked: 1}, a.Sale)
	assert.Equal(t, 4, a.Rental.Available+a.Rental.Booked+a.Sale.Available+a.Sale.Booked)

	h := counts["house"]
	assert.Equal(t, 1, h.Rental.Available)
	assert.NotContains(t, counts, "castle")
}

func TestSplitSectionsCapsAtTen(t *testing.T) {
	var items []models.Listing
	for i := 0; i < 15; i++ {
		items = append(items, listing(fmt.Sprintf("r%d", i), "studio", "rental", false))
	}
	for i := 0; i < 4; i++ {
		items = append(items, listing(fmt.Sprintf("s%d", i), "studio", "sale", false))
	}

	sections := SplitSections(items, Selector{PropertyType: "studio"})
	assert.Len(t, sections.Rent, SectionCap)
	assert.Len(t, sections.Sale, 4)

	// explicit transaction filter goes through Filter, uncapped
	assert.Len(t, Filter(items, Selector{PropertyType: "studio", TransactionType: "rental"}), 15)
}

func TestSortForDisplayIDDescending(t *testing.T) {
	items := []models.Listing{
		{ID: "2"}, {ID: "10"}, {ID: "1"},
	}
	got := SortForDisplay(items)
	require.Len(t, got, 3)
	// numeric-aware: 10 > 2 > 1, not "2" > "10"
	assert.Equal(t, "10", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "1", got[2].ID)
	// input untouched
	assert.Equal(t, "2", items[0].ID)
}
