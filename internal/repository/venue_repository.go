// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Venue model and repository methods for CRUD, search
// and listing queries.  A Venue hosts shows performed by artists; the two
// are linked through the shows association table.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Venue represents a venue row.  Genres is decoded from the stored
// comma-separated column into an ordered slice.  CreatedAt and UpdatedAt
// are DB-maintained and not exposed via public API responses.
type Venue struct {
	ID                 uint64
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingTalent      bool
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// VenueArea is one row of the grouped venue listing: a venue plus the
// number of its upcoming shows, counted against a single reference time.
type VenueArea struct {
	ID       uint64
	Name     string
	City     string
	State    string
	NumShows int
}

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection which is injected at startup; there is
// no package-level handle.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = `id, name, city, state, address, phone, genres,
	image_link, facebook_link, website_link, seeking_talent,
	seeking_description, created_at, updated_at`

func scanVenue(row interface{ Scan(...any) error }) (*Venue, error) {
	var v Venue
	var genres string
	if err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&genres, &v.ImageLink, &v.FacebookLink, &v.WebsiteLink,
		&v.SeekingTalent, &v.SeekingDescription, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.Genres = splitGenres(genres)
	return &v, nil
}

// Create inserts a new venue.  On success the ID field is populated with
// the auto-generated value and a follow-up SELECT fills the DB-default
// timestamp fields so callers receive a fully populated record.
func (r *VenueRepo) Create(ctx context.Context, v *Venue) error {
	const q = `INSERT INTO venues
		(name, city, state, address, phone, genres, image_link, facebook_link,
		 website_link, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address,
		v.Phone, joinGenres(v.Genres), v.ImageLink, v.FacebookLink,
		v.WebsiteLink, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	const sel = `SELECT created_at, updated_at FROM venues WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt)
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*Venue, error) {
	v, err := scanVenue(r.db.QueryRowContext(ctx,
		`SELECT `+venueColumns+` FROM venues WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAreas returns one row per venue with its upcoming-show count,
// evaluated against the caller's reference time so every row in a response
// shares the same boundary.  Rows are ordered by city, state and id, which
// lets the aggregation layer fold them into (city, state) groups in a
// single pass with deterministic output.
func (r *VenueRepo) ListAreas(ctx context.Context, now time.Time) ([]VenueArea, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.venue_id)
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.city, v.state, v.id`
	rows, err := r.db.QueryContext(ctx, q, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VenueArea
	for rows.Next() {
		var va VenueArea
		if err := rows.Scan(&va.ID, &va.Name, &va.City, &va.State, &va.NumShows); err != nil {
			return nil, err
		}
		out = append(out, va)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName returns venues whose name contains the term,
// case-insensitively.  An empty term matches all rows.  One query produces
// both the rows and (via len) the count, so they can never disagree.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]*Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues
		WHERE LOWER(name) LIKE ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, searchPattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites all mutable fields of a venue.  There are no partial
// update semantics; callers must supply the full record.  It returns
// ErrVenueNotFound when the id does not exist.  An update that leaves every
// field unchanged affects zero rows in MySQL, so a follow-up existence
// check separates "not found" from "no change".
func (r *VenueRepo) Update(ctx context.Context, v *Venue) error {
	const q = `UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
		    image_link = ?, facebook_link = ?, website_link = ?,
		    seeking_talent = ?, seeking_description = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address,
		v.Phone, joinGenres(v.Genres), v.ImageLink, v.FacebookLink,
		v.WebsiteLink, v.SeekingTalent, v.SeekingDescription, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM venues WHERE id = ? LIMIT 1`, v.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	return nil // row exists, submitted values were identical
}

// Delete removes a venue provided no shows reference it.  The check and
// the delete run in one transaction so a show booked concurrently cannot
// slip between them.  It returns ErrConflict when shows exist and
// ErrVenueNotFound when the id is absent; deletion never cascades.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
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

	var refs int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shows WHERE venue_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		err = ErrConflict
		return err
	}
	res, execErr := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if execErr != nil {
		err = execErr
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrVenueNotFound
		return err
	}
	return nil
}
