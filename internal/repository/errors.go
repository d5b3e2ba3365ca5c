// Package repository defines error values that are reused across multiple
// repositories.  These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios, e.g. a missing row
// versus a delete blocked by dependent records.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrConflict is returned when a delete cannot be performed because of
// dependent state, such as removing a venue that still has shows booked
// against it.  Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
