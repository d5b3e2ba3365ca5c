// Package handler exposes the JSON API of the booking directory: grouped
// and flat listings, detail pages with past/upcoming show aggregates,
// name search, and the create/update/delete operations.  Handlers hold
// their repositories explicitly; nothing reads a package-level DB handle.
package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseID converts the :id path parameter into a uint64.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
