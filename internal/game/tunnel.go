// internal/game/tunnel.go
package game

import (
	"github.com/google/uuid"

	"railways/internal/board"
)

const tunnelRevealCount = 3

// startTunnelChallenge reveals the top three cards of the draw pile and
// counts how many match the committed color (locomotives always match). With
// no matches the claim completes immediately; otherwise the turn suspends
// with the revealed cards held aside until the player responds.
func (g *Game) startTunnelChallenge(p *Player, route board.Route, cards []board.Color, matchColor board.Color) (*ClaimResult, error) {
	revealed := make([]board.Color, 0, tunnelRevealCount)
	for i := 0; i < tunnelRevealCount; i++ {
		c, ok := g.drawCard()
		if !ok {
			break
		}
		revealed = append(revealed, c)
	}

	extra := 0
	for _, c := range revealed {
		if c == board.Locomotive || c == matchColor {
			extra++
		}
	}

	if extra == 0 {
		g.DiscardPile = append(g.DiscardPile, revealed...)
		g.completeClaim(p, route, cards)
		return &ClaimResult{
			Points:   routePoints[route.Length],
			Tunnel:   true,
			Revealed: revealed,
		}, nil
	}

	g.Action = &Action{
		Kind: ActionTunnelPending,
		Tunnel: &TunnelChallenge{
			RouteID:     route.ID,
			Committed:   cards,
			Revealed:    revealed,
			ExtraNeeded: extra,
			MatchColor:  matchColor,
		},
	}
	return &ClaimResult{
		Tunnel:      true,
		Revealed:    revealed,
		ExtraNeeded: extra,
		Pending:     true,
	}, nil
}

// RespondToTunnel resolves a suspended tunnel challenge. Declining abandons
// the claim at no cost beyond the turn. Accepting pays the extra cards on top
// of the original commitment; a rejected acceptance leaves the challenge
// suspended and the state untouched so the player can retry or decline.
func (g *Game) RespondToTunnel(playerID uuid.UUID, accept bool, extraCards []board.Color) (*ClaimResult, error) {
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
	if g.Action == nil || g.Action.Kind != ActionTunnelPending || g.Action.Tunnel == nil {
		return nil, ruleErr(CodeNoTunnelPending, "no tunnel challenge is waiting on you")
	}

	ch := g.Action.Tunnel
	route, ok := board.RouteByID(ch.RouteID)
	if !ok {
		return nil, ruleErr(CodeRouteNotFound, "route %d does not exist", ch.RouteID)
	}

	if !accept {
		g.DiscardPile = append(g.DiscardPile, ch.Revealed...)
		g.endTurn()
		return &ClaimResult{Tunnel: true, Declined: true}, nil
	}

	if len(extraCards) < ch.ExtraNeeded {
		return nil, ruleErr(CodeBadCards, "the tunnel demands %d extra cards", ch.ExtraNeeded)
	}
	for _, c := range extraCards {
		if c != board.Locomotive && c != ch.MatchColor {
			return nil, ruleErr(CodeBadCards, "extra cards must be %s or locomotives", ch.MatchColor)
		}
	}

	payment := make([]board.Color, 0, len(ch.Committed)+len(extraCards))
	payment = append(payment, ch.Committed...)
	payment = append(payment, extraCards...)
	if !handHas(p.Hand, payment) {
		return nil, ruleErr(CodeCardsNotInHand, "you do not hold all of those cards")
	}

	g.DiscardPile = append(g.DiscardPile, ch.Revealed...)
	g.completeClaim(p, route, payment)
	return &ClaimResult{Points: routePoints[route.Length], Tunnel: true}, nil
}
