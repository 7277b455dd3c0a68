package store

import (
	"context"
	"errors"

	"estate-backend/internal/models"
)

// ErrNotFound is returned by Get, Update and Delete for an unknown id.
// Both backends agree on this signal; nothing in the store panics on a
// missing record.
var ErrNotFound = errors.New("listing not found")

// Fields carries caller-supplied values for a new listing. Zero values are
// replaced by the documented defaults when the record is created.
type Fields struct {
	Title           string
	Description     string
	Price           float64
	Location        string
	TransactionType string
	PropertyType    string
	OwnerName       string
	Photos          []string
	LandCategory    string
	Booked          bool
}

// Patch is a partial update. A nil field means "absent, keep the old
// value"; a non-nil field replaces the stored one. There is no way to
// remove a field, only to replace it.
type Patch struct {
	Title           *string
	Description     *string
	Price           *float64
	Location        *string
	TransactionType *string
	PropertyType    *string
	OwnerName       *string
	Photos          *[]string
	LandCategory    *string
	Booked          *bool
}

// Store is the persistence contract shared by the durable (Postgres) and
// in-memory backends. The backend is picked once at process start; both
// implementations agree on NotFound semantics and default population.
type Store interface {
	List(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, f Fields) (*models.Listing, error)
	Update(ctx context.Context, id string, p Patch) (*models.Listing, error)
	Delete(ctx context.Context, id string) (*models.Listing, error)
}

// newListing builds a record from Fields with every default filled in.
func newListing(f Fields) models.Listing {
	l := models.Listing{
		Title:           f.Title,
		Description:     f.Description,
		Price:           f.Price,
		Location:        f.Location,
		TransactionType: f.TransactionType,
		PropertyType:    f.PropertyType,
		OwnerName:       f.OwnerName,
		Photos:          f.Photos,
		LandCategory:    f.LandCategory,
		Booked:          f.Booked,
	}
	if l.TransactionType == "" {
		l.TransactionType = models.TransactionRental
	}
	if l.PropertyType == "" {
		l.PropertyType = models.PropertyApartment
	}
	if l.OwnerName == "" {
		l.OwnerName = models.DefaultOwnerName
	}
	if l.Photos == nil {
		l.Photos = []string{}
	}
	return l
}

// applyPatch mutates l with every field the patch carries. Shared by both
// backends so partial-update semantics cannot drift between them.
func applyPatch(l *models.Listing, p Patch) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.TransactionType != nil {
		l.TransactionType = *p.TransactionType
	}
	if p.PropertyType != nil {
		l.PropertyType = *p.PropertyType
	}
	if p.OwnerName != nil {
		l.OwnerName = *p.OwnerName
	}
	if p.Photos != nil {
		l.Photos = *p.Photos
	}
	if p.LandCategory != nil {
		l.LandCategory = *p.LandCategory
	}
	if p.Booked != nil {
		l.Booked = *p.Booked
	}
}
