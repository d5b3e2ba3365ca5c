// Package queue defines message payloads exchanged over the message broker.
package queue

// ShowBookedEvent is published after a show is successfully inserted.  It
// carries the resolved names so the consumer can log a line without
// touching the database.
type ShowBookedEvent struct {
	VenueID    uint64 `json:"venue_id"`
	VenueName  string `json:"venue_name"`
	ArtistID   uint64 `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	StartTime  string `json:"start_time"`
	BookedAt   string `json:"booked_at"`
}
