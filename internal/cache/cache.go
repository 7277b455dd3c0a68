// Package cache holds the optional Redis-backed copy of the full listing
// collection. Configured by REDIS_URL; when absent every read goes
// straight to the store. Cache failures are logged and ignored so Redis
// can never take the API down.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"estate-backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const listingsKey = "listings:all"

// Listings caches the listing collection as one JSON blob. A nil
// *Listings is a valid no-op cache.
type Listings struct {
	Rdb *redis.Client
	TTL time.Duration
}

// New returns a collection cache with a short TTL; mutations invalidate
// eagerly so the TTL only bounds staleness across processes.
func New(rdb *redis.Client) *Listings {
	return &Listings{Rdb: rdb, TTL: time.Minute}
}

// Get returns the cached collection and whether it was present.
func (c *Listings) Get(ctx context.Context) ([]models.Listing, bool) {
	if c == nil || c.Rdb == nil {
		return nil, false
	}
	b, err := c.Rdb.Get(ctx, listingsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("listing cache read failed")
		}
		return nil, false
	}
	var items []models.Listing
	if err := json.Unmarshal(b, &items); err != nil {
		log.Warn().Err(err).Msg("listing cache decode failed")
		return nil, false
	}
	return items, true
}

// Set stores the collection snapshot.
func (c *Listings) Set(ctx context.Context, items []models.Listing) {
	if c == nil || c.Rdb == nil {
		return
	}
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.Rdb.Set(ctx, listingsKey, b, c.TTL).Err(); err != nil {
		log.Warn().Err(err).Msg("listing cache write failed")
	}
}

// Invalidate drops the snapshot; called after every mutation.
func (c *Listings) Invalidate(ctx context.Context) {
	if c == nil || c.Rdb == nil {
		return
	}
	if err := c.Rdb.Del(ctx, listingsKey).Err(); err != nil {
		log.Warn().Err(err).Msg("listing cache invalidate failed")
	}
}
