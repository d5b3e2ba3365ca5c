package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueInputValidateMissingFields(t *testing.T) {
	in := venueInput{Name: "  ", City: "San Francisco"}
	errs := in.validate()

	assert.Contains(t, errs, "name") // whitespace-only counts as missing
	assert.Contains(t, errs, "state")
	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "phone")
	assert.NotContains(t, errs, "city")
}

func TestVenueInputValidateComplete(t *testing.T) {
	in := venueInput{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
	}
	assert.Empty(t, in.validate())
}

func TestArtistInputValidate(t *testing.T) {
	in := artistInput{Name: "Guns N Petals"}
	errs := in.validate()

	assert.Contains(t, errs, "city")
	assert.Contains(t, errs, "state")
	assert.Contains(t, errs, "phone")
	// Artists carry no address.
	assert.NotContains(t, errs, "address")

	in = artistInput{Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000"}
	assert.Empty(t, in.validate())
}

func TestShowInputValidate(t *testing.T) {
	in := showInput{VenueID: 1, ArtistID: 4, StartTime: "2035-04-01T20:00:00Z"}
	start, errs := in.validate()

	require.Empty(t, errs)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), start)
}

func TestShowInputValidateMissing(t *testing.T) {
	var in showInput
	_, errs := in.validate()

	assert.Contains(t, errs, "venue_id")
	assert.Contains(t, errs, "artist_id")
	assert.Contains(t, errs, "start_time")
}

func TestShowInputValidateBadTimestamp(t *testing.T) {
	in := showInput{VenueID: 1, ArtistID: 1, StartTime: "next tuesday"}
	_, errs := in.validate()

	assert.Contains(t, errs, "start_time")
}

func TestVenueFromInputTrimsGenres(t *testing.T) {
	in := venueInput{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{" Jazz ", "", "Folk", "  "},
	}

	v := venueFromInput(&in)

	// The response payload must match what a later read returns.
	assert.Equal(t, []string{"Jazz", "Folk"}, v.Genres)
}

func TestArtistFromInputTrimsGenres(t *testing.T) {
	in := artistInput{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: []string{"Rock n Roll ", " "},
	}

	a := artistFromInput(&in)

	assert.Equal(t, []string{"Rock n Roll"}, a.Genres)
}

func TestShowInputValidateNormalizesToUTC(t *testing.T) {
	in := showInput{VenueID: 1, ArtistID: 1, StartTime: "2035-04-01T20:00:00+02:00"}
	start, errs := in.validate()

	require.Empty(t, errs)
	assert.Equal(t, time.UTC, start.Location())
	assert.Equal(t, 18, start.Hour())
}
