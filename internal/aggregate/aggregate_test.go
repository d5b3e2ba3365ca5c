package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagewise/booking-directory/internal/repository"
)

func showAt(id uint64, t time.Time) repository.ShowPartner {
	return repository.ShowPartner{ID: id, Name: "x", StartTime: t}
}

func TestPartitionBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	past, upcoming := Partition([]repository.ShowPartner{
		showAt(1, now.Add(-time.Hour)),
		showAt(2, now), // exactly now counts as past
		showAt(3, now.Add(time.Nanosecond)),
	}, now)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 1)
	assert.Equal(t, uint64(1), past[0].ID)
	assert.Equal(t, uint64(2), past[1].ID)
	assert.Equal(t, uint64(3), upcoming[0].ID)
}

func TestPartitionTotalAndDisjoint(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []repository.ShowPartner{
		showAt(1, now.Add(-48*time.Hour)),
		showAt(2, now.Add(-time.Minute)),
		showAt(3, now),
		showAt(4, now.Add(time.Minute)),
		showAt(5, now.Add(720*time.Hour)),
	}

	past, upcoming := Partition(rows, now)

	// Every row lands in exactly one half.
	assert.Equal(t, len(rows), len(past)+len(upcoming))
	seen := map[uint64]int{}
	for _, p := range past {
		seen[p.ID]++
		assert.False(t, p.StartTime.After(now))
	}
	for _, u := range upcoming {
		seen[u.ID]++
		assert.True(t, u.StartTime.After(now))
	}
	for _, r := range rows {
		assert.Equal(t, 1, seen[r.ID])
	}
}

func TestPartitionPreservesOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []repository.ShowPartner{
		showAt(10, now.Add(-3*time.Hour)),
		showAt(20, now.Add(2*time.Hour)),
		showAt(30, now.Add(-time.Hour)),
		showAt(40, now.Add(4*time.Hour)),
	}

	past, upcoming := Partition(rows, now)

	assert.Equal(t, []uint64{10, 30}, ids(past))
	assert.Equal(t, []uint64{20, 40}, ids(upcoming))
}

func TestPartitionFrozenNowIsStable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []repository.ShowPartner{
		showAt(1, now.Add(-time.Hour)),
		showAt(2, now.Add(time.Hour)),
	}

	p1, u1 := Partition(rows, now)
	p2, u2 := Partition(rows, now)

	assert.Equal(t, p1, p2)
	assert.Equal(t, u1, u2)
}

func TestPartitionEmpty(t *testing.T) {
	past, upcoming := Partition(nil, time.Now())
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestGroupVenuesByArea(t *testing.T) {
	rows := []repository.VenueArea{
		{ID: 2, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", NumShows: 1},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", NumShows: 0},
		{ID: 3, Name: "The Dueling Pianos Bar", City: "New York", State: "NY", NumShows: 2},
	}

	areas := GroupVenuesByArea(rows)

	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	require.Len(t, areas[0].Venues, 2)
	assert.Equal(t, uint64(2), areas[0].Venues[0].ID)
	assert.Equal(t, uint64(1), areas[0].Venues[1].ID)

	assert.Equal(t, "New York", areas[1].City)
	require.Len(t, areas[1].Venues, 1)
	assert.Equal(t, 2, areas[1].Venues[0].NumShows)
}

func TestGroupVenuesByAreaSameCityDifferentState(t *testing.T) {
	rows := []repository.VenueArea{
		{ID: 1, Name: "a", City: "Springfield", State: "IL"},
		{ID: 2, Name: "b", City: "Springfield", State: "MA"},
	}

	areas := GroupVenuesByArea(rows)

	require.Len(t, areas, 2)
	assert.Equal(t, "IL", areas[0].State)
	assert.Equal(t, "MA", areas[1].State)
}

func TestGroupVenuesByAreaEmpty(t *testing.T) {
	assert.Empty(t, GroupVenuesByArea(nil))
}

func ids(rows []repository.ShowPartner) []uint64 {
	out := make([]uint64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}
