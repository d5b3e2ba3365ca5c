// Package repository contains data access logic for Artist operations.
// An Artist performs shows at venues; the link is the shows association
// table.  Genres are stored the same way as for venues so both entities
// share one representation.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Artist represents an artist row.
type Artist struct {
	ID                 uint64
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingVenue       bool
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistColumns = `id, name, city, state, phone, genres, image_link,
	facebook_link, website_link, seeking_venue, seeking_description,
	created_at, updated_at`

func scanArtist(row interface{ Scan(...any) error }) (*Artist, error) {
	var a Artist
	var genres string
	if err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink,
		&a.SeekingVenue, &a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Genres = splitGenres(genres)
	return &a, nil
}

// Create inserts a new artist and populates the generated ID plus the
// DB-default timestamp fields.
func (r *ArtistRepo) Create(ctx context.Context, a *Artist) error {
	const q = `INSERT INTO artists
		(name, city, state, phone, genres, image_link, facebook_link,
		 website_link, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone,
		joinGenres(a.Genres), a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const sel = `SELECT created_at, updated_at FROM artists WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// GetByID fetches an artist by its ID.  It returns ErrArtistNotFound if no
// row is found.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*Artist, error) {
	a, err := scanArtist(r.db.QueryRowContext(ctx,
		`SELECT `+artistColumns+` FROM artists WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns all artists ordered by id.  Only ID and Name are
// selected; the listing page shows nothing else and detail pages issue
// their own fetch.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]*Artist, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Artist
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName returns artists whose name contains the term,
// case-insensitively.  An empty term matches all rows.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]*Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists
		WHERE LOWER(name) LIKE ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, searchPattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites all mutable fields of an artist.  Returns
// ErrArtistNotFound when the id does not exist; an update submitting
// identical values is a no-op success.
func (r *ArtistRepo) Update(ctx context.Context, a *Artist) error {
	const q = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
		    image_link = ?, facebook_link = ?, website_link = ?,
		    seeking_venue = ?, seeking_description = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone,
		joinGenres(a.Genres), a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM artists WHERE id = ? LIMIT 1`, a.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return err
	}
	return nil
}

// Delete removes an artist provided no shows reference it, mirroring the
// venue delete: transactional reference check, ErrConflict on dependents,
// no cascade.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
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
		`SELECT COUNT(*) FROM shows WHERE artist_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		err = ErrConflict
		return err
	}
	res, execErr := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	if execErr != nil {
		err = execErr
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrArtistNotFound
		return err
	}
	return nil
}
