package handler

import (
	"strings"
	"time"
)

// Form validation happens before any storage access: a request that fails
// here never reaches a repository, so a rejected create leaves the row
// count untouched.  Errors are reported per field.  Create and update
// share the same rules.

// venueInput is the request body for creating or updating a venue.
type venueInput struct {
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

func (in *venueInput) validate() map[string]string {
	errs := map[string]string{}
	requireField(errs, "name", in.Name)
	requireField(errs, "city", in.City)
	requireField(errs, "state", in.State)
	requireField(errs, "address", in.Address)
	requireField(errs, "phone", in.Phone)
	return errs
}

// artistInput is the request body for creating or updating an artist.
type artistInput struct {
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

func (in *artistInput) validate() map[string]string {
	errs := map[string]string{}
	requireField(errs, "name", in.Name)
	requireField(errs, "city", in.City)
	requireField(errs, "state", in.State)
	requireField(errs, "phone", in.Phone)
	return errs
}

// showInput is the request body for booking a show.
type showInput struct {
	VenueID   uint64 `json:"venue_id"`
	ArtistID  uint64 `json:"artist_id"`
	StartTime string `json:"start_time"`
}

// validate checks the show fields and parses the start time.  Referential
// checks (do the venue and artist exist) belong to the repository; only
// presence and format are verified here.
func (in *showInput) validate() (time.Time, map[string]string) {
	errs := map[string]string{}
	if in.VenueID == 0 {
		errs["venue_id"] = "venue_id is required"
	}
	if in.ArtistID == 0 {
		errs["artist_id"] = "artist_id is required"
	}
	var start time.Time
	if strings.TrimSpace(in.StartTime) == "" {
		errs["start_time"] = "start_time is required"
	} else {
		t, err := time.Parse(time.RFC3339, in.StartTime)
		if err != nil {
			errs["start_time"] = "start_time must be a valid RFC3339 timestamp"
		} else {
			start = t.UTC()
		}
	}
	return start, errs
}

func requireField(errs map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = field + " is required"
	}
}

// trimGenres normalizes genre entries the same way the storage layer
// does, so a create/update response already shows what a later read
// returns: entries trimmed, blanks dropped.
func trimGenres(genres []string) []string {
	out := []string{}
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
