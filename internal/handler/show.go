package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stagewise/booking-directory/internal/queue"
	"github.com/stagewise/booking-directory/internal/repository"
	queue_publisher "github.com/stagewise/booking-directory/internal/service"
)

// ShowHandler serves the show listing and booking endpoints.  The venue
// and artist repositories are needed to resolve names for the booked-show
// event payload.
type ShowHandler struct {
	ShowRepo   *repository.ShowRepo
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
}

// NewShowHandler constructs a ShowHandler and panics if a dependency is nil.
func NewShowHandler(showRepo *repository.ShowRepo, venueRepo *repository.VenueRepo, artistRepo *repository.ArtistRepo) *ShowHandler {
	if showRepo == nil || venueRepo == nil || artistRepo == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{ShowRepo: showRepo, VenueRepo: venueRepo, ArtistRepo: artistRepo}
}

// showPayload is one row of the show listing.
type showPayload struct {
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ListShows handles GET /v1/shows and returns every show with its venue
// and artist names, ordered by start time.
func (h *ShowHandler) ListShows(c echo.Context) error {
	shows, err := h.ShowRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]showPayload, 0, len(shows))
	for _, s := range shows {
		out = append(out, showPayload{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// CreateShow handles POST /v1/shows and books an artist at a venue.  Both
// ids must reference existing rows; duplicate (venue, artist, time)
// triples are allowed.  After a successful insert a show.booked event is
// published best-effort for the audit consumer.
func (h *ShowHandler) CreateShow(c echo.Context) error {
	var in showInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	start, errs := in.validate()
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	ctx := c.Request().Context()

	// Resolve both sides up front: the names feed the event payload and a
	// missing reference becomes a field error instead of an opaque insert
	// failure.  The repository re-checks existence inside its transaction.
	venue, err := h.VenueRepo.GetByID(ctx, in.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": map[string]string{"venue_id": "venue does not exist"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	artist, err := h.ArtistRepo.GetByID(ctx, in.ArtistID)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": map[string]string{"artist_id": "artist does not exist"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	show := &repository.Show{VenueID: in.VenueID, ArtistID: in.ArtistID, StartTime: start}
	if err := h.ShowRepo.Create(ctx, show); err != nil {
		switch {
		case errors.Is(err, repository.ErrVenueNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": map[string]string{"venue_id": "venue does not exist"}})
		case errors.Is(err, repository.ErrArtistNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": map[string]string{"artist_id": "artist does not exist"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create show"})
	}

	// Best-effort audit event; a broker outage must not fail the booking.
	_ = queue_publisher.PublishShowBooked(ctx, queue.ShowBookedEvent{
		VenueID:    venue.ID,
		VenueName:  venue.Name,
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		StartTime:  start.Format(time.RFC3339),
		BookedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, showPayload{
		VenueID:         venue.ID,
		VenueName:       venue.Name,
		ArtistID:        artist.ID,
		ArtistName:      artist.Name,
		ArtistImageLink: artist.ImageLink,
		StartTime:       start,
	})
}
