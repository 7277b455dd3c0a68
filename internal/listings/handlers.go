package listings

import (
	"encoding/json"
	"errors"

	"estate-backend/internal/browse"
	"estate-backend/internal/cache"
	"estate-backend/internal/mediahost"
	"estate-backend/internal/models"
	"estate-backend/internal/pkg/response"
	"estate-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// Handlers translate HTTP requests into store operations. They are
// stateless between requests; the store owns the authoritative collection
// and handlers never retain references past the request.
type Handlers struct {
	Store    store.Store
	Uploader mediahost.Uploader // nil when no media-host credential is configured
	Cache    *cache.Listings    // nil when no REDIS_URL is configured
}

// listingBody is the request shape shared by create and update. Every
// field is a pointer so "present but zero" and "absent" stay distinct,
// which partial update depends on. Photos stays raw: a non-array value is
// tolerated and treated as an empty photo list.
type listingBody struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	Price           *float64        `json:"price"`
	Location        *string         `json:"location"`
	TransactionType *string         `json:"transactionType"`
	PropertyType    *string         `json:"propertyType"`
	OwnerName       *string         `json:"ownerName"`
	Photos          json.RawMessage `json:"photos"`
	LandCategory    *string         `json:"landCategory"`
	Booked          *bool           `json:"booked"`
}

// photoList decodes the raw photos value. Reports whether the field was
// present at all; any value that is not an array of strings collapses to
// an empty list rather than failing the request.
func (b *listingBody) photoList() ([]string, bool) {
	if len(b.Photos) == 0 {
		return nil, false
	}
	var entries []any
	if err := json.Unmarshal(b.Photos, &entries); err != nil {
		return []string{}, true
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List handles GET /listings. Serves the cached collection when one is
// present, otherwise reads the store and refreshes the cache.
func (h *Handlers) List(c *fiber.Ctx) error {
	if items, ok := h.Cache.Get(c.Context()); ok {
		return c.JSON(items)
	}
	items, err := h.Store.List(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Failed to fetch listings")
	}
	if items == nil {
		items = []models.Listing{}
	}
	h.Cache.Set(c.Context(), items)
	return c.JSON(items)
}

// Get handles GET /listings/:id.
func (h *Handlers) Get(c *fiber.Ctx) error {
	l, err := h.Store.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return response.NotFound(c)
		}
		return response.Error(c, fiber.StatusInternalServerError, "Failed to fetch listing")
	}
	return c.JSON(l)
}

// Create handles POST /listings. Requires a non-empty title and a present
// price (zero is allowed); everything else defaults per the data model.
func (h *Handlers) Create(c *fiber.Ctx) error {
	var body listingBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.Title == nil || *body.Title == "" || body.Price == nil {
		return response.Error(c, fiber.StatusBadRequest, "title and price are required")
	}

	photos, _ := body.photoList()
	photos = mediahost.Materialize(c.Context(), h.Uploader, photos)

	f := store.Fields{
		Title:           *body.Title,
		Description:     deref(body.Description),
		Price:           *body.Price,
		Location:        deref(body.Location),
		TransactionType: deref(body.TransactionType),
		PropertyType:    deref(body.PropertyType),
		OwnerName:       deref(body.OwnerName),
		Photos:          photos,
		LandCategory:    deref(body.LandCategory),
	}
	if body.Booked != nil {
		f.Booked = *body.Booked
	}

	l, err := h.Store.Create(c.Context(), f)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Failed to create listing")
	}
	h.Cache.Invalidate(c.Context())
	return c.Status(fiber.StatusCreated).JSON(l)
}

// Update handles PUT /listings/:id. Only supplied fields change; a
// supplied photos value is re-materialized before persisting.
func (h *Handlers) Update(c *fiber.Ctx) error {
	var body listingBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	p := store.Patch{
		Title:           body.Title,
		Description:     body.Description,
		Price:           body.Price,
		Location:        body.Location,
		TransactionType: body.TransactionType,
		PropertyType:    body.PropertyType,
		OwnerName:       body.OwnerName,
		LandCategory:    body.LandCategory,
		Booked:          body.Booked,
	}
	if photos, present := body.photoList(); present {
		materialized := mediahost.Materialize(c.Context(), h.Uploader, photos)
		p.Photos = &materialized
	}

	l, err := h.Store.Update(c.Context(), c.Params("id"), p)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return response.NotFound(c)
		}
		return response.Error(c, fiber.StatusInternalServerError, "Failed to update listing")
	}
	h.Cache.Invalidate(c.Context())
	return c.JSON(l)
}

// Delete handles DELETE /listings/:id and returns the removed record.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	l, err := h.Store.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return response.NotFound(c)
		}
		return response.Error(c, fiber.StatusInternalServerError, "Failed to delete listing")
	}
	h.Cache.Invalidate(c.Context())
	return c.JSON(l)
}

// Summary handles GET /listings/summary: the aggregate counts the browse
// views derive, computed server-side from the same collection snapshot.
func (h *Handlers) Summary(c *fiber.Ctx) error {
	items, err := h.Store.List(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Failed to fetch listings")
	}
	return c.JSON(browse.CountsByType(items))
}
