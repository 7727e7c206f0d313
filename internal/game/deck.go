// internal/game/deck.go
package game

import (
	"github.com/google/uuid"

	"railways/internal/board"
)

// buildDrawPile assembles and shuffles the full 110 card deck: 12 of each
// train color plus 14 locomotives.
func (g *Game) buildDrawPile() {
	pile := make([]board.Color, 0, len(board.TrainColors)*cardsPerColor+locomotiveCopies)
	for _, c := range board.TrainColors {
		for i := 0; i < cardsPerColor; i++ {
			pile = append(pile, c)
		}
	}
	for i := 0; i < locomotiveCopies; i++ {
		pile = append(pile, board.Locomotive)
	}
	g.shuffleColors(pile)
	g.DrawPile = pile
	g.DiscardPile = []board.Color{}
	g.FaceUp = []board.Color{}
}

func (g *Game) shuffleColors(cards []board.Color) {
	g.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

func (g *Game) shuffleTickets(tickets []board.Ticket) {
	g.rng.Shuffle(len(tickets), func(i, j int) {
		tickets[i], tickets[j] = tickets[j], tickets[i]
	})
}

func popTicket(deck *[]board.Ticket) (board.Ticket, bool) {
	if len(*deck) == 0 {
		return board.Ticket{}, false
	}
	t := (*deck)[0]
	*deck = (*deck)[1:]
	return t, true
}

// drawCard takes the top card of the draw pile, reshuffling the discard pile
// into a new draw pile when it runs dry. Returns false only when both piles
// are empty.
func (g *Game) drawCard() (board.Color, bool) {
	if len(g.DrawPile) == 0 {
		if len(g.DiscardPile) == 0 {
			return "", false
		}
		g.DrawPile = g.DiscardPile
		g.DiscardPile = []board.Color{}
		g.shuffleColors(g.DrawPile)
	}
	c := g.DrawPile[0]
	g.DrawPile = g.DrawPile[1:]
	return c, true
}

// refillFaceUp tops the display back up to 5 cards, then settles it.
func (g *Game) refillFaceUp() {
	for len(g.FaceUp) < faceUpSlots {
		c, ok := g.drawCard()
		if !ok {
			break
		}
		g.FaceUp = append(g.FaceUp, c)
	}
	g.settleFaceUp()
}

// settleFaceUp enforces the locomotive rule: a full display holding three or
// more locomotives is discarded wholesale and redrawn. Bounded retries keep a
// locomotive-heavy remainder from looping forever.
func (g *Game) settleFaceUp() {
	for attempt := 0; attempt < 5; attempt++ {
		if len(g.FaceUp) < faceUpSlots || countLocomotives(g.FaceUp) < 3 {
			return
		}
		g.DiscardPile = append(g.DiscardPile, g.FaceUp...)
		g.FaceUp = g.FaceUp[:0]
		for len(g.FaceUp) < faceUpSlots {
			c, ok := g.drawCard()
			if !ok {
				break
			}
			g.FaceUp = append(g.FaceUp, c)
		}
	}
}

func countLocomotives(cards []board.Color) int {
	n := 0
	for _, c := range cards {
		if c == board.Locomotive {
			n++
		}
	}
	return n
}

// DrawFromDeck draws one blind card from the draw pile. The first blind or
// face-up non-locomotive draw of a turn leaves the turn open for a second
// card; the second draw ends the turn.
func (g *Game) DrawFromDeck(playerID uuid.UUID) (*DrawResult, error) {
	p, err := g.actingPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if g.Action != nil && g.Action.Kind != ActionDrewOneCard {
		return nil, ruleErr(CodeActionInProgress, "finish your current action first")
	}

	c, ok := g.drawCard()
	if !ok {
		return nil, ruleErr(CodeDeckEmpty, "the draw pile is empty")
	}
	p.Hand = append(p.Hand, c)

	if g.Action == nil {
		g.Action = &Action{Kind: ActionDrewOneCard}
		return &DrawResult{Card: c}, nil
	}
	g.endTurn()
	return &DrawResult{Card: c, TurnEnded: true}, nil
}

// DrawFaceUp takes one card from the open display. Taking a locomotive is
// only allowed as the sole draw of the turn and ends it immediately; the
// vacated slot is refilled from the draw pile.
func (g *Game) DrawFaceUp(playerID uuid.UUID, slot int) (*DrawResult, error) {
	p, err := g.actingPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if g.Action != nil && g.Action.Kind != ActionDrewOneCard {
		return nil, ruleErr(CodeActionInProgress, "finish your current action first")
	}
	if slot < 0 || slot >= len(g.FaceUp) {
		return nil, ruleErr(CodeBadSlot, "no face-up card in slot %d", slot)
	}

	c := g.FaceUp[slot]
	if c == board.Locomotive && g.Action != nil {
		return nil, ruleErr(CodeLocomotiveSecond, "a locomotive can only be taken as your first card")
	}

	p.Hand = append(p.Hand, c)
	g.FaceUp = append(g.FaceUp[:slot], g.FaceUp[slot+1:]...)
	if fill, ok := g.drawCard(); ok {
		g.FaceUp = append(g.FaceUp, fill)
	}
	g.settleFaceUp()

	if c == board.Locomotive || g.Action != nil {
		g.endTurn()
		return &DrawResult{Card: c, TurnEnded: true}, nil
	}
	g.Action = &Action{Kind: ActionDrewOneCard}
	return &DrawResult{Card: c}, nil
}
