package app

import (
	"estate-backend/internal/cache"
	"estate-backend/internal/config"
	"estate-backend/internal/database"
	"estate-backend/internal/health"
	"estate-backend/internal/listings"
	"estate-backend/internal/mediahost"
	"estate-backend/internal/middleware"
	"estate-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// request bodies can carry inline image data
const bodyLimit = 50 * 1024 * 1024

// CreateApp builds the Fiber app with all middleware and routes. Backend
// selection happens here, once: a configured DATABASE_URL picks the
// durable store, anything else (including a failed connection) falls back
// to the seeded in-memory catalog.
func CreateApp(cfg *config.Config) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
		BodyLimit:             bodyLimit,
	})

	app.Use(middleware.CORS())
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	h := &listings.Handlers{
		Store:    openStore(cfg),
		Uploader: openUploader(cfg),
		Cache:    openCache(cfg),
	}
	healthHandlers := &health.Handlers{}

	app.Get("/", healthHandlers.Info)
	app.Get("/health", healthHandlers.Health)

	// summary before :id so it is not captured as an id
	app.Get("/listings", h.List)
	app.Get("/listings/summary", h.Summary)
	app.Get("/listings/:id", h.Get)
	app.Post("/listings", h.Create)
	app.Put("/listings/:id", h.Update)
	app.Delete("/listings/:id", h.Delete)

	return app, nil
}

// openStore picks the listing backend. Connection or migration failures
// are swallowed: the process must come up serving the demo catalog rather
// than crash.
func openStore(cfg *config.Config) store.Store {
	if cfg.DatabaseURL != "" {
		db, err := database.Open(cfg.DatabaseURL)
		if err == nil {
			s, merr := store.NewGorm(db)
			if merr == nil {
				log.Info().Msg("listing store: postgres")
				return s
			}
			err = merr
		}
		log.Warn().Err(err).Msg("database unavailable, falling back to in-memory store")
	}
	mem := store.NewMemory()
	mem.Seed()
	log.Info().Msg("listing store: in-memory (seeded)")
	return mem
}

func openUploader(cfg *config.Config) mediahost.Uploader {
	if cfg.CloudinaryURL == "" {
		return nil
	}
	up, err := mediahost.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		log.Warn().Err(err).Msg("media host credential invalid, photo uploads disabled")
		return nil
	}
	return up
}

func openCache(cfg *config.Config) *cache.Listings {
	if cfg.RedisURL == "" {
		return nil
	}
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis url invalid, listing cache disabled")
		return nil
	}
	return cache.New(redis.NewClient(opt))
}
