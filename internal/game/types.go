// internal/game/types.go
package game

import (
	"github.com/google/uuid"

	"railways/internal/board"
)

// Phase tracks the lifecycle of a single game session.
type Phase string

const (
	PhaseWaiting        Phase = "waiting"
	PhaseInitialTickets Phase = "initial_tickets"
	PhasePlaying        Phase = "playing"
	PhaseLastRound      Phase = "last_round"
	PhaseFinished       Phase = "finished"
)

// ActionKind tags the in-turn action state. A nil *Action on the game means no
// action has been started this turn.
type ActionKind string

const (
	// ActionDrewOneCard marks that the current player took one non-locomotive
	// card and may take exactly one more draw before the turn ends.
	ActionDrewOneCard ActionKind = "drew_one_card"

	// ActionDrawingTickets marks that the current player drew a ticket offer
	// and must resolve it before the turn ends.
	ActionDrawingTickets ActionKind = "drawing_tickets"

	// ActionTunnelPending marks a suspended tunnel claim awaiting the player's
	// accept/decline response. Tunnel carries the challenge details.
	ActionTunnelPending ActionKind = "tunnel_pending"
)

// Action is the tagged in-turn state. Tunnel is non-nil exactly when Kind is
// ActionTunnelPending, so illegal combinations are unrepresentable in practice.
type Action struct {
	Kind   ActionKind
	Tunnel *TunnelChallenge
}

// TunnelChallenge holds everything needed to resolve a suspended tunnel claim:
// the cards the player committed, the three revealed cards, how many extra
// matching cards the reveal demands, and which color counts as a match.
type TunnelChallenge struct {
	RouteID     int
	Committed   []board.Color
	Revealed    []board.Color
	ExtraNeeded int
	MatchColor  board.Color
}

// TicketChoice distinguishes the two minimum-keep regimes for a pending
// ticket offer.
type TicketChoice string

const (
	ChoiceInitial    TicketChoice = "initial"     // keep at least 2
	ChoiceDuringGame TicketChoice = "during_game" // keep at least 1
)

// Ticket is a dealt destination ticket. Completed is computed once, at
// scoring time.
type Ticket struct {
	board.Ticket
	Completed bool `json:"completed"`
}

// Player is one seat in a game. Seating order is join order and doubles as
// turn order.
type Player struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Color     string        `json:"color"`
	ColorName string        `json:"colorName"`
	Hand      []board.Color `json:"hand"`
	Tickets   []Ticket      `json:"tickets"`

	// PendingTickets is non-nil while a ticket offer awaits resolution; the
	// player may take no other action until it resolves.
	PendingTickets []Ticket     `json:"pendingTickets,omitempty"`
	TicketChoice   TicketChoice `json:"ticketChoiceType,omitempty"`

	Trains        int      `json:"trains"`
	Stations      int      `json:"stations"`
	StationCities []string `json:"stationCities"`
	ClaimedRoutes []int    `json:"claimedRoutes"`
	Points        int      `json:"points"`

	LongestPathBonus bool `json:"longestPathBonus"`
}

// DrawResult reports a single card draw. TurnEnded tells the caller whether
// the acting player's turn is over.
type DrawResult struct {
	Card      board.Color `json:"card"`
	TurnEnded bool        `json:"turnEnded"`
}

// ClaimResult reports the outcome of a route claim or tunnel response.
type ClaimResult struct {
	Points      int           `json:"points"`
	Tunnel      bool          `json:"tunnel,omitempty"`
	Revealed    []board.Color `json:"tunnelCards,omitempty"`
	ExtraNeeded int           `json:"extraNeeded,omitempty"`
	Pending     bool          `json:"pending,omitempty"`
	Declined    bool          `json:"declined,omitempty"`
}
