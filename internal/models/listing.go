package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Transaction types.
const (
	TransactionRental = "rental"
	TransactionSale   = "sale"
)

// Property types.
const (
	PropertyApartment = "apartment"
	PropertyHouse     = "house"
	PropertyVilla     = "villa"
	PropertyStudio    = "studio"
	PropertyLand      = "land"
)

// Land categories (only meaningful for land listings; never enforced).
const (
	LandCommercial = "commercial"
	LandFarming    = "farming"
)

// PropertyTypes lists every known property type in display order.
var PropertyTypes = []string{
	PropertyApartment, PropertyHouse, PropertyVilla, PropertyStudio, PropertyLand,
}

// DefaultOwnerName is a display label only, not a user reference.
const DefaultOwnerName = "Owner A"

// Listing is the sole domain entity: a property offered for rent or sale.
// The JSON shape is what the browser client depends on; id is always a
// string regardless of which store produced it. Timestamps are managed by
// the durable store and omitted by the in-memory one.
type Listing struct {
	ID              string                      `gorm:"primaryKey" json:"id"`
	Title           string                      `gorm:"not null" json:"title"`
	Description     string                      `json:"description"`
	Price           float64                     `gorm:"not null" json:"price"`
	Location        string                      `json:"location"`
	TransactionType string                      `json:"transactionType"`
	PropertyType    string                      `json:"propertyType"`
	OwnerName       string                      `json:"ownerName"`
	Photos          datatypes.JSONSlice[string] `json:"photos"`
	LandCategory    string                      `json:"landCategory"`
	Booked          bool                        `json:"booked"`
	CreatedAt       *time.Time                  `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time                  `json:"updatedAt,omitempty"`
}

func (Listing) TableName() string {
	return "listings"
}

// BeforeCreate assigns a UUID id when the durable store persists a new
// listing. The in-memory store assigns integer ids and never hits this.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
