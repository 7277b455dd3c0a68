// Package browse derives display subsets and aggregate counts from a
// listing collection. Everything here is a pure function over a snapshot:
// same collection and selector in, same output out, no storage access.
// Views re-derive from scratch on every change; no indexing is attempted
// at this data scale.
package browse

import (
	"sort"
	"strconv"
	"strings"

	"estate-backend/internal/models"
)

// SectionCap limits each rent/sale column to its first ten listings when
// both transaction types are shown side by side.
const SectionCap = 10

// Selector is the visitor's filter state. Empty string means "all" for
// every field. LandCategory only narrows land listings; Location is a
// case-insensitive substring match.
type Selector struct {
	PropertyType    string
	TransactionType string
	LandCategory    string
	Location        string
}

func (s Selector) matches(l models.Listing) bool {
	if s.PropertyType != "" && !strings.EqualFold(l.PropertyType, s.PropertyType) {
		return false
	}
	if s.TransactionType != "" && !strings.EqualFold(l.TransactionType, s.TransactionType) {
		return false
	}
	if s.LandCategory != "" && strings.EqualFold(s.PropertyType, models.PropertyLand) &&
		!strings.EqualFold(l.LandCategory, s.LandCategory) {
		return false
	}
	if s.Location != "" &&
		!strings.Contains(strings.ToLower(l.Location), strings.ToLower(s.Location)) {
		return false
	}
	return true
}

// Filter returns the listings matching the selector, preserving order.
func Filter(items []models.Listing, s Selector) []models.Listing {
	out := make([]models.Listing, 0, len(items))
	for _, l := range items {
		if s.matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// Bucket partitions one transaction type by the booked flag.
type Bucket struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

// TypeCounts aggregates one property type across both transaction types.
type TypeCounts struct {
	Rental Bucket `json:"rental"`
	Sale   Bucket `json:"sale"`
}

// CountsByType scans the full collection and tallies every known property
// type into {rental,sale} x {available,booked}. Listings with an unknown
// property or transaction type fall into no bucket.
func CountsByType(items []models.Listing) map[string]TypeCounts {
	counts := make(map[string]TypeCounts, len(models.PropertyTypes))
	for _, t := range models.PropertyTypes {
		counts[t] = TypeCounts{}
	}
	for _, l := range items {
		t := strings.ToLower(l.PropertyType)
		c, ok := counts[t]
		if !ok {
			continue
		}
		switch strings.ToLower(l.TransactionType) {
		case models.TransactionRental:
			if l.Booked {
				c.Rental.Booked++
			} else {
				c.Rental.Available++
			}
		case models.TransactionSale:
			if l.Booked {
				c.Sale.Booked++
			} else {
				c.Sale.Available++
			}
		default:
			continue
		}
		counts[t] = c
	}
	return counts
}

// Sections holds the side-by-side rent and sale columns of a browse view.
type Sections struct {
	Rent []models.Listing `json:"rent"`
	Sale []models.Listing `json:"sale"`
}

// SplitSections derives the two columns shown when no explicit transaction
// filter is chosen, each capped at SectionCap. With an explicit filter the
// caller uses Filter directly and no cap applies.
func SplitSections(items []models.Listing, s Selector) Sections {
	s.TransactionType = models.TransactionRental
	rent := Filter(items, s)
	if len(rent) > SectionCap {
		rent = rent[:SectionCap]
	}
	s.TransactionType = models.TransactionSale
	sale := Filter(items, s)
	if len(sale) > SectionCap {
		sale = sale[:SectionCap]
	}
	return Sections{Rent: rent, Sale: sale}
}

// SortForDisplay orders a copy of the collection by id descending, so the
// newest listings come first. In-memory ids are numeric strings and
// compare numerically; durable UUIDs fall back to string comparison.
func SortForDisplay(items []models.Listing) []models.Listing {
	out := make([]models.Listing, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a, aerr := strconv.Atoi(out[i].ID)
		b, berr := strconv.Atoi(out[j].ID)
		if aerr == nil && berr == nil {
			return a > b
		}
		return out[i].ID > out[j].ID
	})
	return out
}
