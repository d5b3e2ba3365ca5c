// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/stagewise/booking-directory/internal/handler"
)

// RegisterRoutes registers the health check on the provided Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterVenues registers the venue listing, search, detail and mutation
// endpoints under /v1/venues.
func RegisterVenues(e *echo.Echo, h *handler.VenueHandler) {
	g := e.Group("/v1/venues")
	g.GET("", h.ListVenues)
	// The search route must precede the :id match so "search" is not
	// parsed as an id.
	g.GET("/search", h.SearchVenues)
	g.GET("/:id", h.GetVenue)
	g.POST("", h.CreateVenue)
	g.PUT("/:id", h.UpdateVenue)
	g.DELETE("/:id", h.DeleteVenue)
}

// RegisterArtists registers the artist endpoints under /v1/artists,
// mirroring the venue surface.
func RegisterArtists(e *echo.Echo, h *handler.ArtistHandler) {
	g := e.Group("/v1/artists")
	g.GET("", h.ListArtists)
	g.GET("/search", h.SearchArtists)
	g.GET("/:id", h.GetArtist)
	g.POST("", h.CreateArtist)
	g.PUT("/:id", h.UpdateArtist)
	g.DELETE("/:id", h.DeleteArtist)
}

// RegisterShows registers the show listing and booking endpoints.  Shows
// are append-only; there is no update or delete route.
func RegisterShows(e *echo.Echo, h *handler.ShowHandler) {
	g := e.Group("/v1/shows")
	g.GET("", h.ListShows)
	g.POST("", h.CreateShow)
}
