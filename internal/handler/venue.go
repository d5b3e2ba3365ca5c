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

// VenueHandler serves the venue side of the directory.  It needs the show
// repository as well: detail pages attach the venue's show history.
type VenueHandler struct {
	VenueRepo *repository.VenueRepo
	ShowRepo  *repository.ShowRepo
}

// NewVenueHandler constructs a VenueHandler and panics if a dependency is nil.
func NewVenueHandler(venueRepo *repository.VenueRepo, showRepo *repository.ShowRepo) *VenueHandler {
	if venueRepo == nil || showRepo == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{VenueRepo: venueRepo, ShowRepo: showRepo}
}

// venuePayload is a venue exposed via the API.  Row bookkeeping timestamps
// are not included.
type venuePayload struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

func toVenuePayload(v *repository.Venue) venuePayload {
	return venuePayload{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// artistShowEntry is one show on a venue detail page: the performing
// artist plus the start time.
type artistShowEntry struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func toArtistShowEntries(rows []repository.ShowPartner) []artistShowEntry {
	out := make([]artistShowEntry, 0, len(rows))
	for _, p := range rows {
		out = append(out, artistShowEntry{
			ArtistID:        p.ID,
			ArtistName:      p.Name,
			ArtistImageLink: p.ImageLink,
			StartTime:       p.StartTime,
		})
	}
	return out
}

// venueDetailPayload is the venue detail response: the entity plus its
// show aggregates.
type venueDetailPayload struct {
	venuePayload
	PastShows          []artistShowEntry `json:"past_shows"`
	UpcomingShows      []artistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// areaPayload is one group of the venue listing.
type areaPayload struct {
	City   string           `json:"city"`
	State  string           `json:"state"`
	Venues []areaVenueEntry `json:"venues"`
}

type areaVenueEntry struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	NumShows int    `json:"num_shows"`
}

// ListVenues handles GET /v1/venues and returns venues grouped by
// (city, state).  num_shows counts only upcoming shows; the reference
// time is captured once so every row shares the same boundary.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	now := time.Now().UTC()
	rows, err := h.VenueRepo.ListAreas(c.Request().Context(), now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	areas := aggregate.GroupVenuesByArea(rows)
	out := make([]areaPayload, 0, len(areas))
	for _, area := range areas {
		ap := areaPayload{City: area.City, State: area.State, Venues: []areaVenueEntry{}}
		for _, v := range area.Venues {
			ap.Venues = append(ap.Venues, areaVenueEntry{ID: v.ID, Name: v.Name, NumShows: v.NumShows})
		}
		out = append(out, ap)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// SearchVenues handles GET /v1/venues/search?term= and performs a
// case-insensitive substring match on venue names.  The count always
// equals the number of returned rows because both come from one query.
func (h *VenueHandler) SearchVenues(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("term"))
	venues, err := h.VenueRepo.SearchByName(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	data := make([]venuePayload, 0, len(venues))
	for _, v := range venues {
		data = append(data, toVenuePayload(v))
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(data), "data": data})
}

// GetVenue handles GET /v1/venues/:id and returns the venue with its past
// and upcoming shows.  The show rows are fetched once and partitioned
// against a single now, so the counts are always len of the lists.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	shows, err := h.ShowRepo.ListForVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	now := time.Now().UTC()
	past, upcoming := aggregate.Partition(shows, now)

	resp := venueDetailPayload{
		venuePayload:       toVenuePayload(v),
		PastShows:          toArtistShowEntries(past),
		UpcomingShows:      toArtistShowEntries(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateVenue handles POST /v1/venues.  Validation failures return the
// per-field errors without touching storage.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var in venueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := in.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	v := venueFromInput(&in)
	if err := h.VenueRepo.Create(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create venue"})
	}
	return c.JSON(http.StatusCreated, toVenuePayload(v))
}

// UpdateVenue handles PUT /v1/venues/:id as a full overwrite of the
// mutable fields, validated with the same rules as create.
func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in venueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := in.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	v := venueFromInput(&in)
	v.ID = id
	if err := h.VenueRepo.Update(c.Request().Context(), v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update venue"})
	}
	return c.JSON(http.StatusOK, toVenuePayload(v))
}

// DeleteVenue handles DELETE /v1/venues/:id.  A venue that still has shows
// booked cannot be deleted; the conflict is reported instead of cascading.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.VenueRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrVenueNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "venue still has shows booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete venue"})
	}
	return c.NoContent(http.StatusNoContent)
}

func venueFromInput(in *venueInput) *repository.Venue {
	return &repository.Venue{
		Name:               strings.TrimSpace(in.Name),
		City:               strings.TrimSpace(in.City),
		State:              strings.TrimSpace(in.State),
		Address:            strings.TrimSpace(in.Address),
		Phone:              strings.TrimSpace(in.Phone),
		Genres:             trimGenres(in.Genres),
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
}
