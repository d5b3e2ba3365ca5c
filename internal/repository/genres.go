package repository

import "strings"

// Genres are persisted as a single comma-separated column for both venues
// and artists so the two entities share one representation.  Order is
// preserved; empty entries produced by stray commas are dropped.

func joinGenres(genres []string) string {
	parts := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			parts = append(parts, g)
		}
	}
	return strings.Join(parts, ",")
}

func splitGenres(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
