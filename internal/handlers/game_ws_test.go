// internal/handlers/game_ws_test.go
package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railways/internal/game"
)

// dispatch is exercised directly so the full message surface can be tested
// without a live WebSocket.

func TestDispatchDrivesAGameToPlaying(t *testing.T) {
	gs := NewGameServer()
	g := gs.GameStore.FindOrCreateWaiting()

	p1, p2 := uuid.New(), uuid.New()
	_, err := g.AddPlayer(p1, "anna")
	require.NoError(t, err)
	_, err = g.AddPlayer(p2, "ben")
	require.NoError(t, err)

	_, err = dispatch(g, p1, GameMessage{Type: "start"})
	require.NoError(t, err)
	assert.Equal(t, game.PhaseInitialTickets, g.Phase)

	for _, pid := range []uuid.UUID{p1, p2} {
		snap := g.SnapshotFor(pid)
		var pending []game.Ticket
		for _, pv := range snap.Players {
			if pv.ID == pid {
				pending = pv.PendingTickets
			}
		}
		require.Len(t, pending, 4)
		_, err = dispatch(g, pid, GameMessage{
			Type:      "choose_initial_tickets",
			TicketIDs: []int{pending[0].ID, pending[1].ID},
		})
		require.NoError(t, err)
	}
	assert.Equal(t, game.PhasePlaying, g.Phase)

	res, err := dispatch(g, p1, GameMessage{Type: "draw_card"})
	require.NoError(t, err)
	dr, ok := res.(*game.DrawResult)
	require.True(t, ok)
	assert.False(t, dr.TurnEnded)
}

func TestDispatchSurfacesRuleErrors(t *testing.T) {
	gs := NewGameServer()
	g := gs.GameStore.FindOrCreateWaiting()

	p1, p2 := uuid.New(), uuid.New()
	_, err := g.AddPlayer(p1, "anna")
	require.NoError(t, err)
	_, err = g.AddPlayer(p2, "ben")
	require.NoError(t, err)

	// Acting before the game starts is a rule error with a code the client
	// can act on, not an internal failure.
	_, err = dispatch(g, p1, GameMessage{Type: "draw_card"})
	var re *game.RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, game.CodeWrongPhase, re.Code)

	_, err = dispatch(g, p1, GameMessage{Type: "teleport"})
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "unknown_action", re.Code)
}

func TestReleaseSeatRemovesWaitingPlayer(t *testing.T) {
	gs := NewGameServer()
	g := gs.GameStore.FindOrCreateWaiting()

	p1, p2 := uuid.New(), uuid.New()
	_, err := g.AddPlayer(p1, "anna")
	require.NoError(t, err)
	_, err = g.AddPlayer(p2, "ben")
	require.NoError(t, err)

	gs.releaseSeat(g, p2)
	assert.Len(t, g.Players, 1)
	_, ok := gs.GameStore.GetGame(g.ID)
	assert.True(t, ok, "a game with seated players stays in the store")

	gs.releaseSeat(g, p1)
	_, ok = gs.GameStore.GetGame(g.ID)
	assert.False(t, ok, "an emptied waiting game is dropped")
}

func TestReleaseSeatDoesNotDeadlockWithConcurrentJoin(t *testing.T) {
	gs := NewGameServer()
	g := gs.GameStore.FindOrCreateWaiting()
	pid := uuid.New()
	_, err := g.AddPlayer(pid, "solo")
	require.NoError(t, err)

	// Park a joiner inside FindOrCreateWaiting: it grabs the store lock,
	// then blocks on g.Mu. The disconnect cleanup must still get through,
	// which it can only do if it never touches the store while holding g.Mu.
	g.Mu.Lock()
	joined := make(chan *game.Game, 1)
	go func() {
		joined <- gs.GameStore.FindOrCreateWaiting()
	}()
	time.Sleep(50 * time.Millisecond)

	released := make(chan struct{})
	go func() {
		gs.releaseSeat(g, pid)
		close(released)
	}()
	time.Sleep(50 * time.Millisecond)
	g.Mu.Unlock()

	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("releaseSeat wedged against a concurrent join")
	}
	select {
	case <-joined:
	case <-time.After(2 * time.Second):
		t.Fatal("join wedged against a concurrent disconnect")
	}
}

func TestConnRegistryTracksGames(t *testing.T) {
	gs := NewGameServer()
	gameID, playerID := uuid.New(), uuid.New()

	gs.registerConn(gameID, playerID, nil)
	assert.Len(t, gs.connsForGame(gameID), 1)

	gs.unregisterConn(gameID, playerID)
	assert.Empty(t, gs.connsForGame(gameID))
	gs.mu.Lock()
	assert.NotContains(t, gs.conns, gameID, "empty games are pruned from the registry")
	gs.mu.Unlock()
}
