// internal/game/game_test.go
package game

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railways/internal/board"
)

// seatedGame builds a waiting game with n seated players.
func seatedGame(t *testing.T, n int) (*Game, []uuid.UUID) {
	t.Helper()
	g := NewGame()
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		ids[i] = uuid.New()
		_, err := g.AddPlayer(ids[i], fmt.Sprintf("player-%d", i+1))
		require.NoError(t, err)
	}
	return g, ids
}

// playingGame starts a game and resolves every initial ticket offer by
// keeping the first two tickets, landing in the playing phase.
func playingGame(t *testing.T, n int) (*Game, []uuid.UUID) {
	t.Helper()
	g, ids := seatedGame(t, n)
	require.NoError(t, g.Start())
	for _, id := range ids {
		p := g.playerByID(id)
		require.Len(t, p.PendingTickets, 4)
		keep := []int{p.PendingTickets[0].ID, p.PendingTickets[1].ID}
		require.NoError(t, g.ChooseInitialTickets(id, keep))
	}
	require.Equal(t, PhasePlaying, g.Phase)
	require.Equal(t, 0, g.CurrentPlayerIndex)
	return g, ids
}

// giveHand replaces a player's hand for deterministic claim tests.
func giveHand(g *Game, id uuid.UUID, cards ...board.Color) *Player {
	p := g.playerByID(id)
	p.Hand = append([]board.Color{}, cards...)
	return p
}

func totalCards(g *Game) int {
	n := len(g.DrawPile) + len(g.DiscardPile) + len(g.FaceUp)
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	return n
}

func TestAddPlayerSeatsAndLimits(t *testing.T) {
	g, ids := seatedGame(t, 4)

	_, err := g.AddPlayer(uuid.New(), "fifth")
	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodeGameFull, re.Code)

	require.NoError(t, g.RemovePlayer(ids[3]))
	assert.Len(t, g.Players, 3)

	require.NoError(t, g.Start())
	_, err = g.AddPlayer(uuid.New(), "late")
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodeWrongPhase, re.Code)
	assert.ErrorContains(t, g.RemovePlayer(ids[0]), "in progress")
}

func TestStartNeedsTwoPlayers(t *testing.T) {
	g, _ := seatedGame(t, 1)
	var re *RuleError
	require.ErrorAs(t, g.Start(), &re)
	assert.Equal(t, CodeWrongPhase, re.Code)
	assert.Equal(t, PhaseWaiting, g.Phase)
}

func TestStartDealsHandsDisplayAndTickets(t *testing.T) {
	g, _ := seatedGame(t, 3)
	require.NoError(t, g.Start())

	assert.Equal(t, PhaseInitialTickets, g.Phase)
	assert.Len(t, g.FaceUp, 5)
	assert.Equal(t, 110, totalCards(g))
	assert.Less(t, countLocomotives(g.FaceUp), 3)

	for _, p := range g.Players {
		assert.Len(t, p.Hand, 4)
		assert.Equal(t, 45, p.Trains)
		assert.Equal(t, 3, p.Stations)
		require.Len(t, p.PendingTickets, 4)
		assert.True(t, p.PendingTickets[0].Long, "first offered ticket is the long one")
		assert.Equal(t, ChoiceInitial, p.TicketChoice)
	}
}

func TestInitialTicketChoiceMinimumTwo(t *testing.T) {
	g, ids := seatedGame(t, 2)
	require.NoError(t, g.Start())

	p := g.playerByID(ids[0])
	pending := len(p.PendingTickets)

	var re *RuleError
	err := g.ChooseInitialTickets(ids[0], []int{p.PendingTickets[0].ID})
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodeTicketsBelowMin, re.Code)
	assert.Len(t, p.PendingTickets, pending, "a rejected choice leaves the offer intact")

	err = g.ChooseInitialTickets(ids[0], []int{9999})
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodeNoPendingTickets, re.Code)

	normalBefore := len(g.TicketDeck)
	longBefore := len(g.LongTicketDeck)
	keep := []int{p.PendingTickets[1].ID, p.PendingTickets[2].ID}
	require.NoError(t, g.ChooseInitialTickets(ids[0], keep))
	assert.Len(t, p.Tickets, 2)
	assert.Nil(t, p.PendingTickets)
	assert.Equal(t, longBefore+1, len(g.LongTicketDeck), "declined long ticket returns to its deck")
	assert.Equal(t, normalBefore+1, len(g.TicketDeck))

	// Still waiting on the second player.
	assert.Equal(t, PhaseInitialTickets, g.Phase)

	p2 := g.playerByID(ids[1])
	require.NoError(t, g.ChooseInitialTickets(ids[1], []int{
		p2.PendingTickets[0].ID, p2.PendingTickets[1].ID, p2.PendingTickets[2].ID,
	}))
	assert.Equal(t, PhasePlaying, g.Phase)
	assert.Equal(t, 0, g.CurrentPlayerIndex)
}

func TestDrawFromDeckTwiceEndsTurn(t *testing.T) {
	g, ids := playingGame(t, 2)

	_, err := g.DrawFromDeck(ids[1])
	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodeNotYourTurn, re.Code)

	res, err := g.DrawFromDeck(ids[0])
	require.NoError(t, err)
	assert.False(t, res.TurnEnded)
	assert.Equal(t, ActionDrewOneCard, g.Action.Kind)

	res, err = g.DrawFromDeck(ids[0])
	require.NoError(t, err)
	assert.True(t, res.TurnEnded)
	assert.Nil(t, g.Action)
	assert.Equal(t, 1, g.CurrentPlayerIndex)
	assert.Len(t, g.playerByID(ids[0]).Hand, 6)
}

func TestDrawFaceUpLocomotiveRules(t *testing.T) {
	g, ids := playingGame(t, 2)

	g.FaceUp = []board.Color{board.Red, board.Locomotive, board.Blue, board.Green, board.Yellow}
	g.DrawPile = []board.Color{board.Black, board.White, board.Orange, board.Pink}
	g.DiscardPile = nil

	// A locomotive as the first draw ends the turn immediately.
	res, err := g.DrawFaceUp(ids[0], 1)
	require.NoError(t, err)
	assert.Equal(t, board.Locomotive, res.Card)
	assert.True(t, res.TurnEnded)
	assert.Equal(t, 1, g.CurrentPlayerIndex)
	assert.Len(t, g.FaceUp, 5, "the vacated slot refills from the draw pile")

	// A locomotive as the second draw is illegal, and the rejection does not
	// consume the draw.
	g.FaceUp = []board.Color{board.Red, board.Locomotive, board.Blue, board.Green, board.Yellow}
	_, err = g.DrawFaceUp(ids[1], 0)
	require.NoError(t, err)
	handAfterFirst := len(g.playerByID(ids[1]).Hand)

	_, err = g.DrawFaceUp(ids[1], 0)
	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodeLocomotiveSecond, re.Code)
	assert.Len(t, g.playerByID(ids[1]).Hand, handAfterFirst)
	assert.Equal(t, ActionDrewOneCard, g.Action.Kind)

	_, err = g.DrawFaceUp(ids[1], 5)
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodeBadSlot, re.Code)

	res, err = g.DrawFaceUp(ids[1], 1)
	require.NoError(t, err)
	assert.True(t, res.TurnEnded)
}

func TestFaceUpDisplaySettlesOnThreeLocomotives(t *testing.T) {
	g, _ := playingGame(t, 2)

	g.FaceUp = []board.Color{board.Locomotive, board.Locomotive, board.Locomotive, board.Red, board.Blue}
	g.DrawPile = []board.Color{board.Green, board.Green, board.Green, board.Green, board.Green, board.Green}
	g.DiscardPile = nil

	g.settleFaceUp()

	assert.Len(t, g.FaceUp, 5)
	assert.Less(t, countLocomotives(g.FaceUp), 3)
	assert.Len(t, g.DiscardPile, 5, "the struck display lands in the discard pile")
}

func TestDrawCardReshufflesDiscard(t *testing.T) {
	g, _ := playingGame(t, 2)

	g.DrawPile = nil
	g.DiscardPile = []board.Color{board.Red, board.Blue}

	c, ok := g.drawCard()
	assert.True(t, ok)
	assert.Contains(t, []board.Color{board.Red, board.Blue}, c)
	assert.Empty(t, g.DiscardPile)

	g.drawCard()
	_, ok = g.drawCard()
	assert.False(t, ok, "both piles empty")
}

func TestDrawTicketsSuspendsTurnUntilChosen(t *testing.T) {
	g, ids := playingGame(t, 2)

	require.NoError(t, g.DrawTickets(ids[0]))
	p := g.playerByID(ids[0])
	require.Len(t, p.PendingTickets, 3)
	assert.Equal(t, ChoiceDuringGame, p.TicketChoice)
	assert.Equal(t, ActionDrawingTickets, g.Action.Kind)

	_, err := g.DrawFromDeck(ids[0])
	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodePendingTickets, re.Code)

	err = g.ChooseTickets(ids[0], nil)
	require.ErrorAs(t, err, &re)
	assert.Equal(t, CodeTicketsBelowMin, re.Code)

	deckBefore := len(g.TicketDeck)
	require.NoError(t, g.ChooseTickets(ids[0], []int{p.PendingTickets[0].ID}))
	assert.Len(t, p.Tickets, 3, "two initial plus one kept")
	assert.Equal(t, deckBefore+2, len(g.TicketDeck), "declined tickets go back under the deck")
	assert.Equal(t, 1, g.CurrentPlayerIndex)
	assert.Nil(t, g.Action)
}

func TestDrawTicketsEmptyDeck(t *testing.T) {
	g, ids := playingGame(t, 2)
	g.TicketDeck = nil

	var re *RuleError
	require.ErrorAs(t, g.DrawTickets(ids[0]), &re)
	assert.Equal(t, CodeTicketDeckEmpty, re.Code)
	assert.Nil(t, g.Action)
}
