// internal/game/tickets.go
package game

import (
	"github.com/google/uuid"
)

const (
	initialTicketMinKeep = 2
	drawnTicketMinKeep   = 1
	ticketsPerDraw       = 3
)

// ChooseInitialTickets resolves a player's opening ticket offer. At least two
// of the four offered tickets must be kept; the rest return to the bottom of
// the deck they came from. Once every seat has chosen, play begins with the
// first seat.
func (g *Game) ChooseInitialTickets(playerID uuid.UUID, keepIDs []int) error {
	if g.Phase != PhaseInitialTickets {
		return ruleErr(CodeWrongPhase, "initial tickets are not being chosen")
	}
	p := g.playerByID(playerID)
	if p == nil {
		return ruleErr(CodePlayerNotFound, "player not found")
	}
	if p.PendingTickets == nil || p.TicketChoice != ChoiceInitial {
		return ruleErr(CodeNoPendingTickets, "you have no initial tickets to choose from")
	}

	kept, returned, err := splitTickets(p.PendingTickets, keepIDs)
	if err != nil {
		return err
	}
	if len(kept) < initialTicketMinKeep {
		return ruleErr(CodeTicketsBelowMin, "you must keep at least %d tickets", initialTicketMinKeep)
	}

	p.Tickets = append(p.Tickets, kept...)
	p.PendingTickets = nil
	p.TicketChoice = ""
	g.returnTickets(returned)

	for _, other := range g.Players {
		if other.PendingTickets != nil {
			return nil
		}
	}
	g.Phase = PhasePlaying
	g.CurrentPlayerIndex = 0
	return nil
}

// DrawTickets deals up to three new tickets as the player's whole turn. The
// turn stays suspended until the player resolves the offer.
func (g *Game) DrawTickets(playerID uuid.UUID) error {
	p, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Action != nil {
		return ruleErr(CodeActionInProgress, "finish your current action first")
	}
	if len(g.TicketDeck) == 0 {
		return ruleErr(CodeTicketDeckEmpty, "the ticket deck is empty")
	}

	offer := make([]Ticket, 0, ticketsPerDraw)
	for i := 0; i < ticketsPerDraw; i++ {
		t, ok := popTicket(&g.TicketDeck)
		if !ok {
			break
		}
		offer = append(offer, Ticket{Ticket: t})
	}
	p.PendingTickets = offer
	p.TicketChoice = ChoiceDuringGame
	g.Action = &Action{Kind: ActionDrawingTickets}
	return nil
}

// ChooseTickets resolves a mid-game ticket offer. At least one ticket must be
// kept; the rest go back under the deck. Resolving the offer ends the turn.
func (g *Game) ChooseTickets(playerID uuid.UUID, keepIDs []int) error {
	if g.Phase != PhasePlaying && g.Phase != PhaseLastRound {
		return ruleErr(CodeWrongPhase, "it is not time to act")
	}
	p := g.playerByID(playerID)
	if p == nil {
		return ruleErr(CodePlayerNotFound, "player not found")
	}
	if p.PendingTickets == nil || p.TicketChoice != ChoiceDuringGame {
		return ruleErr(CodeNoPendingTickets, "you have no drawn tickets to choose from")
	}

	kept, returned, err := splitTickets(p.PendingTickets, keepIDs)
	if err != nil {
		return err
	}
	if len(kept) < drawnTicketMinKeep {
		return ruleErr(CodeTicketsBelowMin, "you must keep at least %d ticket", drawnTicketMinKeep)
	}

	p.Tickets = append(p.Tickets, kept...)
	p.PendingTickets = nil
	p.TicketChoice = ""
	g.returnTickets(returned)
	g.endTurn()
	return nil
}

// splitTickets partitions an offer by the keep ids, rejecting ids that are
// not part of the offer. Duplicated keep ids are tolerated.
func splitTickets(offer []Ticket, keepIDs []int) (kept, returned []Ticket, err error) {
	keep := make(map[int]bool, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = true
	}
	offered := make(map[int]bool, len(offer))
	for _, t := range offer {
		offered[t.ID] = true
	}
	for id := range keep {
		if !offered[id] {
			return nil, nil, ruleErr(CodeNoPendingTickets, "ticket %d was not offered to you", id)
		}
	}
	for _, t := range offer {
		if keep[t.ID] {
			kept = append(kept, t)
		} else {
			returned = append(returned, t)
		}
	}
	return kept, returned, nil
}

// returnTickets slides declined tickets under the deck they were dealt from.
func (g *Game) returnTickets(tickets []Ticket) {
	for _, t := range tickets {
		if t.Long {
			g.LongTicketDeck = append(g.LongTicketDeck, t.Ticket)
		} else {
			g.TicketDeck = append(g.TicketDeck, t.Ticket)
		}
	}
}
