// internal/game/snapshot.go
package game

import (
	"github.com/google/uuid"

	"railways/internal/board"
)

// PlayerView is one seat as a given player is allowed to see it: full hand
// and tickets for the requesting player, counts only for everyone else.
type PlayerView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	ColorName     string    `json:"colorName"`
	HandSize      int       `json:"handSize"`
	TicketCount   int       `json:"ticketCount"`
	Trains        int       `json:"trains"`
	Stations      int       `json:"stations"`
	StationCities []string  `json:"stationCities"`
	ClaimedRoutes []int     `json:"claimedRoutes"`
	Points        int       `json:"points"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`

	// Private fields, present only on the requesting player's own entry.
	Hand           []board.Color `json:"hand,omitempty"`
	Tickets        []Ticket      `json:"tickets,omitempty"`
	PendingTickets []Ticket      `json:"pendingTickets,omitempty"`
	TicketChoice   TicketChoice  `json:"ticketChoiceType,omitempty"`
}

// RouteView is a route plus its current owner, if any.
type RouteView struct {
	board.Route
	ClaimedBy uuid.UUID `json:"claimedBy,omitempty"`
}

// Snapshot is the redacted game state for one player. Hidden zones appear as
// counts; the discard pile folds into the draw pile count since both are the
// same future supply.
type Snapshot struct {
	GameID             uuid.UUID     `json:"gameId"`
	Phase              Phase         `json:"phase"`
	TurnNumber         int           `json:"turnNumber"`
	CurrentPlayerID    uuid.UUID     `json:"currentPlayerId,omitempty"`
	LastRoundStartedBy uuid.UUID     `json:"lastRoundStartedBy,omitempty"`
	Action             ActionKind    `json:"action,omitempty"`
	FaceUp             []board.Color `json:"faceUpCards"`
	DrawPileCount      int           `json:"drawPileCount"`
	TicketDeckCount    int           `json:"ticketDeckCount"`
	Players            []PlayerView  `json:"players"`
	Cities             []board.City  `json:"cities"`
	Routes             []RouteView   `json:"routes"`
}

// SnapshotFor projects the game for one player. It is a pure read: calling it
// never changes state, and calling it twice yields the same snapshot. The
// caller holds Mu.
func (g *Game) SnapshotFor(playerID uuid.UUID) Snapshot {
	snap := Snapshot{
		GameID:             g.ID,
		Phase:              g.Phase,
		TurnNumber:         g.TurnNumber,
		LastRoundStartedBy: g.LastRoundStartedBy,
		FaceUp:             append([]board.Color{}, g.FaceUp...),
		DrawPileCount:      len(g.DrawPile) + len(g.DiscardPile),
		TicketDeckCount:    len(g.TicketDeck),
		Cities:             board.Cities(),
	}

	if g.Action != nil {
		snap.Action = g.Action.Kind
	}
	if (g.Phase == PhasePlaying || g.Phase == PhaseLastRound) && len(g.Players) > 0 {
		snap.CurrentPlayerID = g.Players[g.CurrentPlayerIndex].ID
	}

	for i, p := range g.Players {
		pv := PlayerView{
			ID:            p.ID,
			Name:          p.Name,
			Color:         p.Color,
			ColorName:     p.ColorName,
			HandSize:      len(p.Hand),
			TicketCount:   len(p.Tickets),
			Trains:        p.Trains,
			Stations:      p.Stations,
			StationCities: append([]string{}, p.StationCities...),
			ClaimedRoutes: append([]int{}, p.ClaimedRoutes...),
			Points:        p.Points,
			IsCurrentTurn: snap.CurrentPlayerID == p.ID && i == g.CurrentPlayerIndex,
		}
		if p.ID == playerID {
			pv.Hand = append([]board.Color{}, p.Hand...)
			pv.Tickets = append([]Ticket{}, p.Tickets...)
			if p.PendingTickets != nil {
				pv.PendingTickets = append([]Ticket{}, p.PendingTickets...)
				pv.TicketChoice = p.TicketChoice
			}
		}
		snap.Players = append(snap.Players, pv)
	}

	for _, r := range board.Routes() {
		rv := RouteView{Route: r}
		if owner, ok := g.ClaimedRoutes[r.ID]; ok {
			rv.ClaimedBy = owner
		}
		snap.Routes = append(snap.Routes, rv)
	}

	return snap
}
