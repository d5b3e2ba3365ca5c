package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stagewise/booking-directory/internal/config"
	"github.com/stagewise/booking-directory/internal/database"
	"github.com/stagewise/booking-directory/internal/handler"
	appmw "github.com/stagewise/booking-directory/internal/middleware"
	"github.com/stagewise/booking-directory/internal/queue"
	"github.com/stagewise/booking-directory/internal/repository"
	"github.com/stagewise/booking-directory/internal/router"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	e := echo.New()

	// Redis is optional; when absent both middlewares become no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}
	e.Use(appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(appmw.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterVenues(e, handler.NewVenueHandler(venueRepo, showRepo))
	router.RegisterArtists(e, handler.NewArtistHandler(artistRepo, showRepo))
	router.RegisterShows(e, handler.NewShowHandler(showRepo, venueRepo, artistRepo))

	// Audit consumer for show.booked events; reconnects on its own.
	go func() {
		if err := queue.StartShowConsumer(); err != nil {
			log.Printf("show consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
