package repository

import "strings"

// searchPattern builds the LIKE argument for name searches.  The column
// is lowered in SQL and the term lowered here, so matching is
// case-insensitive regardless of collation.  An empty term yields "%%"
// and matches every row.
func searchPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
