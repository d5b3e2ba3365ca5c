package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stagewise/booking-directory/internal/config"
)

func TestDSNOmitsEmptyPassword(t *testing.T) {
	cfg := config.Config{DBUser: "app", DBHost: "db", DBPort: "3306", DBName: "directory"}

	assert.Equal(t,
		"app@tcp(db:3306)/directory?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}

func TestDSNIncludesPassword(t *testing.T) {
	cfg := config.Config{DBUser: "app", DBPass: "s3cret", DBHost: "db", DBPort: "3306", DBName: "directory"}

	assert.Equal(t,
		"app:s3cret@tcp(db:3306)/directory?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}
