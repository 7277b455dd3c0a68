package store

import (
	"context"
	"fmt"

	"estate-backend/internal/models"
)

// seedBatch generates five listings of one (propertyType, transactionType)
// combination with a shared photo set and an arithmetic price band.
type seedBatch struct {
	propertyType    string
	transactionType string
	title           string // fmt pattern, receives the 1..5 index
	description     string
	location        string // fmt pattern, receives the 1..5 index
	basePrice       float64
	priceStep       float64
	photos          []string
}

var seedApartmentPhotos = []string{
	"https://images.unsplash.com/photo-1505691723518-36a5ac3b2a59?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1460317442991-0ec209397118?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1505691723499-9ca92b6c1d3a?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=1200&auto=format&fit=crop",
}

var seedHousePhotos = []string{
	"https://images.unsplash.com/photo-1560185008-b033106af2ce?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1570129477492-45c003edd2be?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1560518883-ce09059eeffa?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1560185009-5bf9f58f0f3b?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1502005229762-cf1b2da7c52f?q=80&w=1200&auto=format&fit=crop",
}

var seedVillaPhotos = []string{
	"https://images.unsplash.com/photo-1523217582562-09d0def993a6?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1505692794403-34d4982c4d35?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1515263487990-61b07816b324?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1512914890250-3d6018887383?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1494526580598-6022a8d04e6b?q=80&w=1200&auto=format&fit=crop",
}

var seedStudioPhotos = []string{
	"https://images.unsplash.com/photo-1515260161320-1070cf3a2f9d?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1524758870432-af57e54afa26?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1460317442991-0ec209397118?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1505691723518-36a5ac3b2a59?q=80&w=1200&auto=format&fit=crop",
}

var seedLandPhotos = []string{
	"https://images.unsplash.com/photo-1533669955142-7b42f0baf2a4?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1460357676520-9c1c188b00fa?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1503595855261-9418f48a9917?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1474224017046-182ece80b263?q=80&w=1200&auto=format&fit=crop",
}

var seedBatches = []seedBatch{
	{models.PropertyApartment, models.TransactionRental, "Modern Apartment R%d", "Spacious and well-lit apartment near tech hub.", "Neighborhood %d", 1500, 100, seedApartmentPhotos},
	{models.PropertyHouse, models.TransactionRental, "Family House R%d", "Family-friendly house with backyard and parking.", "Greenfield Block %d", 2500, 150, seedHousePhotos},
	{models.PropertyHouse, models.TransactionSale, "Premium House S%d", "Detached house with garden and modern interiors.", "Lakeview Avenue %d", 12500000, 500000, seedHousePhotos},
	{models.PropertyVilla, models.TransactionRental, "Resort Villa R%d", "Private villa with pool and landscaped lawn.", "Palm Grove %d", 6000, 300, seedVillaPhotos},
	{models.PropertyVilla, models.TransactionSale, "Signature Villa S%d", "Signature luxury villa with premium finishes.", "Sunset Boulevard %d", 34500000, 1500000, seedVillaPhotos},
	{models.PropertyStudio, models.TransactionRental, "Compact Studio R%d", "Furnished studio close to metro and cafes.", "Downtown Lane %d", 1200, 80, seedStudioPhotos},
	{models.PropertyStudio, models.TransactionSale, "Urban Studio S%d", "Smart studio in a central location.", "City Center %d", 3500000, 150000, seedStudioPhotos},
	{models.PropertyApartment, models.TransactionSale, "Luxury Apartment S%d", "Premium apartment with city views and amenities.", "Prime Area %d", 7500000, 250000, seedApartmentPhotos},
	{models.PropertyLand, models.TransactionRental, "Open Plot R%d", "Residential land suitable for temporary lease and storage.", "Sector %d", 800, 50, seedLandPhotos},
	{models.PropertyLand, models.TransactionSale, "Residential Plot S%d", "Prime residential land parcel with road access.", "Ring Road %d", 2500000, 250000, seedLandPhotos},
}

// Seed populates the demo catalog: one hand-written listing plus five
// generated listings per (propertyType, transactionType) combination. Land
// batches are split so the first three plots are commercial and the rest
// farming. Deterministic; meant to run once at process start.
func (m *Memory) Seed() {
	ctx := context.Background()
	m.Create(ctx, Fields{
		Title:           "Cozy 2BHK Apartment",
		Description:     "Near city center. Fully furnished.",
		Price:           1200,
		Location:        "Downtown",
		TransactionType: models.TransactionRental,
		PropertyType:    models.PropertyApartment,
		Photos: []string{
			"https://images.unsplash.com/photo-1494526585095-c41746248156?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1502005229762-cf1b2da7c52f?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1501183638710-841dd1904471?q=80&w=1200&auto=format&fit=crop",
		},
	})
	for _, b := range seedBatches {
		for i := 1; i <= 5; i++ {
			f := Fields{
				Title:           fmt.Sprintf(b.title, i),
				Description:     b.description,
				Price:           b.basePrice + float64(i)*b.priceStep,
				Location:        fmt.Sprintf(b.location, i),
				TransactionType: b.transactionType,
				PropertyType:    b.propertyType,
				Photos:          b.photos,
			}
			if b.propertyType == models.PropertyLand {
				if i <= 3 {
					f.LandCategory = models.LandCommercial
				} else {
					f.LandCategory = models.LandFarming
				}
			}
			m.Create(ctx, f)
		}
	}
}
