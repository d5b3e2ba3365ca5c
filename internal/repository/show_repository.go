// Package repository contains data access logic for the shows association.
// A Show links one venue and one artist at a scheduled start time.  Rows
// carry no surrogate key: the (venue_id, artist_id, start_time) tuple is
// the identity and duplicates of a venue/artist pair at different times
// are expected.  Shows are created but never updated or deleted
// individually.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Show is a bare association row.
type Show struct {
	VenueID   uint64
	ArtistID  uint64
	StartTime time.Time
}

// ShowPartner is one show row joined with the counterpart entity of a
// detail page: for a venue page the partner is the artist, for an artist
// page the venue.  The aggregation layer partitions these rows into past
// and upcoming against a single reference time.
type ShowPartner struct {
	ID        uint64
	Name      string
	ImageLink string
	StartTime time.Time
}

// ShowDetail is one row of the full show listing, joined with both sides.
type ShowDetail struct {
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowRepo manages persistence for the shows association.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show after verifying both referenced rows exist.
// The existence checks and the insert share one transaction, so a venue
// or artist deleted concurrently cannot leave a dangling row.  It returns
// ErrVenueNotFound or ErrArtistNotFound when a reference is missing.
func (r *ShowRepo) Create(ctx context.Context, s *Show) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var one int
	if err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM venues WHERE id = ? LIMIT 1`, s.VenueID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	if err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM artists WHERE id = ? LIMIT 1`, s.ArtistID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		s.VenueID, s.ArtistID, s.StartTime)
	return err
}

// ListAll returns every show joined with venue and artist names, ordered
// by start time.  The listing page does no temporal filtering; callers
// that need past/upcoming use the per-entity queries below.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowDetail, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time, s.venue_id, s.artist_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ShowDetail{}
	for rows.Next() {
		var d ShowDetail
		if err := rows.Scan(&d.VenueID, &d.VenueName, &d.ArtistID,
			&d.ArtistName, &d.ArtistImageLink, &d.StartTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListForVenue returns all shows booked at a venue joined with the
// performing artist, ordered by start time.  No temporal filter is applied
// here; the caller partitions the rows so list and counts always come from
// the same snapshot.
func (r *ShowRepo) ListForVenue(ctx context.Context, venueID uint64) ([]ShowPartner, error) {
	const q = `SELECT a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = ?
		ORDER BY s.start_time, a.id`
	return r.listPartners(ctx, q, venueID)
}

// ListForArtist returns all shows an artist performs joined with the
// hosting venue, ordered by start time.
func (r *ShowRepo) ListForArtist(ctx context.Context, artistID uint64) ([]ShowPartner, error) {
	const q = `SELECT v.id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = ?
		ORDER BY s.start_time, v.id`
	return r.listPartners(ctx, q, artistID)
}

func (r *ShowRepo) listPartners(ctx context.Context, q string, id uint64) ([]ShowPartner, error) {
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ShowPartner{}
	for rows.Next() {
		var p ShowPartner
		if err := rows.Scan(&p.ID, &p.Name, &p.ImageLink, &p.StartTime); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
