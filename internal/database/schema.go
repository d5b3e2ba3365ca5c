package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the DDL for the directory tables.  Statements are idempotent
// so Migrate can run on every startup.  Shows carry no surrogate key; a row
// is identified by its (venue_id, artist_id, start_time) tuple and the same
// venue/artist pair may appear at different times.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(255) NOT NULL,
		city                VARCHAR(120) NOT NULL,
		state               VARCHAR(120) NOT NULL,
		address             VARCHAR(120) NOT NULL,
		phone               VARCHAR(120) NOT NULL,
		genres              VARCHAR(500) NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
		website_link        VARCHAR(120) NOT NULL DEFAULT '',
		seeking_talent      TINYINT(1) NOT NULL DEFAULT 0,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		created_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_venues_city_state (city, state)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS artists (
		id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(255) NOT NULL,
		city                VARCHAR(120) NOT NULL,
		state               VARCHAR(120) NOT NULL,
		phone               VARCHAR(120) NOT NULL,
		genres              VARCHAR(500) NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
		website_link        VARCHAR(120) NOT NULL DEFAULT '',
		seeking_venue       TINYINT(1) NOT NULL DEFAULT 0,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		created_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS shows (
		venue_id   BIGINT UNSIGNED NOT NULL,
		artist_id  BIGINT UNSIGNED NOT NULL,
		start_time DATETIME NOT NULL,
		INDEX idx_shows_venue (venue_id, start_time),
		INDEX idx_shows_artist (artist_id, start_time),
		CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id),
		CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate applies the schema statements in order.  It stops at the first
// failing statement so a broken DDL never leaves later tables half-defined.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
