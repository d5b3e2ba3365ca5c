package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPatternIgnoresCase(t *testing.T) {
	assert.Equal(t, searchPattern("hop"), searchPattern("HOP"))
	assert.Equal(t, searchPattern("hop"), searchPattern("Hop"))
	assert.Equal(t, "%hop%", searchPattern("hOp"))
}

func TestSearchPatternSubstring(t *testing.T) {
	// The term is wrapped, never anchored, so any position matches.
	assert.Equal(t, "%musical%", searchPattern("Musical"))
}

func TestSearchPatternEmptyTermMatchesAll(t *testing.T) {
	assert.Equal(t, "%%", searchPattern(""))
}
