package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stagewise/booking-directory/internal/aggregate"
	"github.com/stagewise/booking-directory/internal/repository"
)

// ArtistHandler serves the artist side of the directory.
type ArtistHandler struct {
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
}

// NewArtistHandler constructs an ArtistHandler and panics if a dependency is nil.
func NewArtistHandler(artistRepo *repository.ArtistRepo, showRepo *repository.ShowRepo) *ArtistHandler {
	if artistRepo == nil || showRepo == nil {
		panic("nil repository passed to NewArtistHandler")
	}
	return &ArtistHandler{ArtistRepo: artistRepo, ShowRepo: showRepo}
}

// artistPayload is an artist exposed via the API.
type artistPayload struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

func toArtistPayload(a *repository.Artist) artistPayload {
	return artistPayload{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// venueShowEntry is one show on an artist detail page: the hosting venue
// plus the start time.
type venueShowEntry struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

func toVenueShowEntries(rows []repository.ShowPartner) []venueShowEntry {
	out := make([]venueShowEntry, 0, len(rows))
	for _, p := range rows {
		out = append(out, venueShowEntry{
			VenueID:        p.ID,
			VenueName:      p.Name,
			VenueImageLink: p.ImageLink,
			StartTime:      p.StartTime,
		})
	}
	return out
}

type artistDetailPayload struct {
	artistPayload
	PastShows          []venueShowEntry `json:"past_shows"`
	UpcomingShows      []venueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// ListArtists handles GET /v1/artists.  The listing carries ids and names
// only; everything else lives on the detail page.
func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.ArtistRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	type entry struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
	out := make([]entry, 0, len(artists))
	for _, a := range artists {
		out = append(out, entry{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// SearchArtists handles GET /v1/artists/search?term= with the same
// case-insensitive substring semantics as the venue search.
func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("term"))
	artists, err := h.ArtistRepo.SearchByName(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	data := make([]artistPayload, 0, len(artists))
	for _, a := range artists {
		data = append(data, toArtistPayload(a))
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(data), "data": data})
}

// GetArtist handles GET /v1/artists/:id and returns the artist with its
// past and upcoming shows, partitioned against a single reference time.
func (h *ArtistHandler) GetArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	shows, err := h.ShowRepo.ListForArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	now := time.Now().UTC()
	past, upcoming := aggregate.Partition(shows, now)

	resp := artistDetailPayload{
		artistPayload:      toArtistPayload(a),
		PastShows:          toVenueShowEntries(past),
		UpcomingShows:      toVenueShowEntries(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateArtist handles POST /v1/artists.
func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var in artistInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := in.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	a := artistFromInput(&in)
	if err := h.ArtistRepo.Create(c.Request().Context(), a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create artist"})
	}
	return c.JSON(http.StatusCreated, toArtistPayload(a))
}

// UpdateArtist handles PUT /v1/artists/:id, a full overwrite validated
// with the same rules as create.
func (h *ArtistHandler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in artistInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := in.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	a := artistFromInput(&in)
	a.ID = id
	if err := h.ArtistRepo.Update(c.Request().Context(), a); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update artist"})
	}
	return c.JSON(http.StatusOK, toArtistPayload(a))
}

// DeleteArtist handles DELETE /v1/artists/:id with the same conflict
// semantics as the venue delete.
func (h *ArtistHandler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.ArtistRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrArtistNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "artist still has shows booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete artist"})
	}
	return c.NoContent(http.StatusNoContent)
}

func artistFromInput(in *artistInput) *repository.Artist {
	return &repository.Artist{
		Name:               strings.TrimSpace(in.Name),
		City:               strings.TrimSpace(in.City),
		State:              strings.TrimSpace(in.State),
		Phone:              strings.TrimSpace(in.Phone),
		Genres:             trimGenres(in.Genres),
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
}
