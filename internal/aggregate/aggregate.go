// Package aggregate computes the derived values attached to directory
// responses: the past/upcoming partition of an entity's shows and the
// (city, state) grouping of the venue listing.  Everything here is pure;
// callers fetch rows from the repositories and pass a single reference
// time so one response can never straddle two different nows.
package aggregate

import (
	"time"

	"github.com/stagewise/booking-directory/internal/repository"
)

// Partition splits show rows into past and upcoming relative to now.
// A show starting exactly at now is past: the boundary is start_time <= now
// for past and start_time > now for upcoming, the same operators the
// listing queries use.  Input order is preserved within each half, and
// every row lands in exactly one of them.
func Partition(rows []repository.ShowPartner, now time.Time) (past, upcoming []repository.ShowPartner) {
	past = []repository.ShowPartner{}
	upcoming = []repository.ShowPartner{}
	for _, row := range rows {
		if row.StartTime.After(now) {
			upcoming = append(upcoming, row)
		} else {
			past = append(past, row)
		}
	}
	return past, upcoming
}

// Area is one group of the venue listing: every venue sharing a
// (city, state) pair, each carrying its upcoming-show count.
type Area struct {
	City   string
	State  string
	Venues []repository.VenueArea
}

// GroupVenuesByArea folds venue rows into Areas.  Rows must arrive sorted
// by city then state (the repository query guarantees this), so a group
// ends whenever the pair changes; group order and venue order within a
// group follow the input.
func GroupVenuesByArea(rows []repository.VenueArea) []Area {
	areas := []Area{}
	for _, row := range rows {
		n := len(areas)
		if n == 0 || areas[n-1].City != row.City || areas[n-1].State != row.State {
			areas = append(areas, Area{City: row.City, State: row.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, row)
	}
	return areas
}
