// internal/game/game.go
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"railways/internal/board"
)

const (
	maxPlayers      = 4
	minPlayers      = 2
	initialTrains   = 45
	initialStations = 3
	initialHandSize = 4
	faceUpSlots     = 5

	cardsPerColor    = 12
	locomotiveCopies = 14
)

// Seat palette, assigned by join order.
var (
	seatColors     = []string{"#DC2626", "#2563EB", "#16A34A", "#EAB308"}
	seatColorNames = []string{"Red", "Blue", "Green", "Yellow"}
)

// Game holds the entire authoritative state for one session. It is
// single-writer: the transport serializes calls per game by holding Mu around
// every operation; the engine itself never locks.
type Game struct {
	ID uuid.UUID

	Phase              Phase
	Players            []*Player
	CurrentPlayerIndex int
	TurnNumber         int

	// Action is the tagged in-turn state; nil means no action started.
	Action *Action

	DrawPile    []board.Color
	DiscardPile []board.Color
	FaceUp      []board.Color

	TicketDeck     []board.Ticket
	LongTicketDeck []board.Ticket

	// ClaimedRoutes maps a route id to its owner. A route id appears at most
	// once for the whole game.
	ClaimedRoutes map[int]uuid.UUID

	LastRoundStartedBy uuid.UUID

	Mu sync.Mutex

	rng *rand.Rand
}

// NewGame builds an empty session in the waiting phase.
func NewGame() *Game {
	id, _ := uuid.NewRandom()
	return &Game{
		ID:            id,
		Phase:         PhaseWaiting,
		ClaimedRoutes: make(map[int]uuid.UUID),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// AddPlayer seats a player. Only legal in the waiting phase, up to 4 seats.
// Returns the assigned seat index.
func (g *Game) AddPlayer(playerID uuid.UUID, name string) (int, error) {
	if g.Phase != PhaseWaiting {
		return 0, ruleErr(CodeWrongPhase, "the game has already started")
	}
	if len(g.Players) >= maxPlayers {
		return 0, ruleErr(CodeGameFull, "the game is full (maximum %d players)", maxPlayers)
	}
	idx := len(g.Players)
	g.Players = append(g.Players, &Player{
		ID:            playerID,
		Name:          name,
		Color:         seatColors[idx],
		ColorName:     seatColorNames[idx],
		Hand:          []board.Color{},
		Tickets:       []Ticket{},
		Trains:        initialTrains,
		Stations:      initialStations,
		StationCities: []string{},
		ClaimedRoutes: []int{},
	})
	return idx, nil
}

// RemovePlayer unseats a player. Only legal before the game starts.
func (g *Game) RemovePlayer(playerID uuid.UUID) error {
	if g.Phase != PhaseWaiting {
		return ruleErr(CodeWrongPhase, "cannot leave a game in progress")
	}
	for i, p := range g.Players {
		if p.ID == playerID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			return nil
		}
	}
	return ruleErr(CodePlayerNotFound, "player not found")
}

// Start deals hands, opens the face-up display, shuffles both ticket decks
// and offers every player their initial tickets. Needs at least 2 seated
// players.
func (g *Game) Start() error {
	if g.Phase != PhaseWaiting {
		return ruleErr(CodeWrongPhase, "the game has already started")
	}
	if len(g.Players) < minPlayers {
		return ruleErr(CodeWrongPhase, "need at least %d players to start", minPlayers)
	}

	g.buildDrawPile()

	for _, p := range g.Players {
		for i := 0; i < initialHandSize; i++ {
			if c, ok := g.drawCard(); ok {
				p.Hand = append(p.Hand, c)
			}
		}
	}

	g.refillFaceUp()

	g.TicketDeck = board.NormalTickets()
	g.LongTicketDeck = board.LongTickets()
	g.shuffleTickets(g.TicketDeck)
	g.shuffleTickets(g.LongTicketDeck)

	g.Phase = PhaseInitialTickets

	// Every player simultaneously gets 1 long + 3 normal tickets to pick from.
	for _, p := range g.Players {
		offer := make([]Ticket, 0, 4)
		if t, ok := popTicket(&g.LongTicketDeck); ok {
			offer = append(offer, Ticket{Ticket: t})
		}
		for i := 0; i < 3; i++ {
			if t, ok := popTicket(&g.TicketDeck); ok {
				offer = append(offer, Ticket{Ticket: t})
			}
		}
		p.PendingTickets = offer
		p.TicketChoice = ChoiceInitial
	}

	return nil
}

// playerByID finds a seated player, or nil.
func (g *Game) playerByID(playerID uuid.UUID) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// actingPlayer validates the common preconditions for a turn action: the game
// is running, it is this player's turn, no ticket offer is outstanding and no
// tunnel challenge is suspended.
func (g *Game) actingPlayer(playerID uuid.UUID) (*Player, error) {
	p := g.playerByID(playerID)
	if p == nil {
		return nil, ruleErr(CodePlayerNotFound, "player not found")
	}
	if g.Phase != PhasePlaying && g.Phase != PhaseLastRound {
		return nil, ruleErr(CodeWrongPhase, "it is not time to act")
	}
	if g.Players[g.CurrentPlayerIndex].ID != playerID {
		return nil, ruleErr(CodeNotYourTurn, "it is not your turn")
	}
	if p.PendingTickets != nil {
		return nil, ruleErr(CodePendingTickets, "resolve your ticket choice first")
	}
	if g.Action != nil && g.Action.Kind == ActionTunnelPending {
		return nil, ruleErr(CodeActionInProgress, "respond to the tunnel challenge first")
	}
	return p, nil
}

// endTurn clears the in-turn state and advances the seat. If the last round
// has come back around to the player who triggered it, the game finishes and
// scoring runs instead.
func (g *Game) endTurn() {
	g.Action = nil
	g.TurnNumber++

	next := (g.CurrentPlayerIndex + 1) % len(g.Players)
	if g.Phase == PhaseLastRound && g.Players[next].ID == g.LastRoundStartedBy {
		g.finishGame()
		return
	}
	g.CurrentPlayerIndex = next
}

// checkLastRound flips the game into its final lap the moment a player's
// train supply drops to 2 or fewer.
func (g *Game) checkLastRound(p *Player) {
	if p.Trains <= 2 && g.Phase == PhasePlaying {
		g.Phase = PhaseLastRound
		g.LastRoundStartedBy = p.ID
	}
}
