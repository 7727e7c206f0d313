// internal/board/board_test.go
package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteEndpointsExist(t *testing.T) {
	for _, r := range Routes() {
		assert.True(t, CityExists(r.From), "route %d references unknown city %q", r.ID, r.From)
		assert.True(t, CityExists(r.To), "route %d references unknown city %q", r.ID, r.To)
		assert.NotEqual(t, r.From, r.To, "route %d is a self loop", r.ID)
	}
}

func TestRouteIDsUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, r := range Routes() {
		require.False(t, seen[r.ID], "duplicate route id %d", r.ID)
		seen[r.ID] = true
	}
}

func TestRouteLengthsInRange(t *testing.T) {
	for _, r := range Routes() {
		assert.GreaterOrEqual(t, r.Length, 1, "route %d", r.ID)
		assert.LessOrEqual(t, r.Length, 8, "route %d", r.ID)
	}
}

func TestFerriesRequireLocomotives(t *testing.T) {
	for _, r := range Routes() {
		if r.Type == Ferry {
			assert.Greater(t, r.Ferries, 0, "ferry route %d has no locomotive minimum", r.ID)
			assert.LessOrEqual(t, r.Ferries, r.Length, "ferry route %d demands more locomotives than its length", r.ID)
		} else {
			assert.Zero(t, r.Ferries, "non-ferry route %d has a locomotive minimum", r.ID)
		}
	}
}

func TestDoubleRoutesHaveTwins(t *testing.T) {
	for _, r := range Routes() {
		if !r.Double {
			continue
		}
		twin, ok := PairedRoute(r)
		require.True(t, ok, "double route %d has no twin", r.ID)
		assert.True(t, twin.Double, "twin %d of route %d is not flagged double", twin.ID, r.ID)
		assert.Equal(t, r.Length, twin.Length)
	}
}

func TestPairedRouteIsSymmetric(t *testing.T) {
	r, ok := RouteByID(1)
	require.True(t, ok)
	twin, ok := PairedRoute(r)
	require.True(t, ok)
	back, ok := PairedRoute(twin)
	require.True(t, ok)
	assert.Equal(t, r.ID, back.ID)
}

func TestTicketCitiesExist(t *testing.T) {
	all := append(NormalTickets(), LongTickets()...)
	for _, tk := range all {
		assert.True(t, CityExists(tk.From), "ticket %d references unknown city %q", tk.ID, tk.From)
		assert.True(t, CityExists(tk.To), "ticket %d references unknown city %q", tk.ID, tk.To)
	}
}

func TestTicketDecksAreCopies(t *testing.T) {
	a := NormalTickets()
	b := NormalTickets()
	a[0].Points = 99
	assert.NotEqual(t, a[0].Points, b[0].Points, "NormalTickets must return independent copies")
}

func TestRouteByID(t *testing.T) {
	r, ok := RouteByID(44)
	require.True(t, ok)
	assert.Equal(t, 8, r.Length)
	assert.Equal(t, Tunnel, r.Type)

	_, ok = RouteByID(99999)
	assert.False(t, ok)
}
