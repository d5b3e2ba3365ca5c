package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenresRoundTrip(t *testing.T) {
	in := []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"}
	assert.Equal(t, in, splitGenres(joinGenres(in)))
}

func TestJoinGenresDropsEmptyEntries(t *testing.T) {
	assert.Equal(t, "Jazz,Folk", joinGenres([]string{"Jazz", "", "  ", "Folk"}))
}

func TestSplitGenresEmptyColumn(t *testing.T) {
	got := splitGenres("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSplitGenresTrimsWhitespace(t *testing.T) {
	assert.Equal(t, []string{"Rock n Roll", "Jazz"}, splitGenres(" Rock n Roll , Jazz ,"))
}
