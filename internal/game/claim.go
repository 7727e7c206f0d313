// internal/game/claim.go
package game

import (
	"github.com/google/uuid"

	"railways/internal/board"
)

// routePoints maps a route length to the points it scores when claimed.
var routePoints = map[int]int{
	1: 1,
	2: 2,
	3: 4,
	4: 7,
	5: 10,
	6: 15,
	8: 21,
}

// ClaimRoute attempts to claim a route with the given cards. For plain and
// ferry routes a legal claim completes immediately and ends the turn. For
// tunnels the committed cards start a challenge: three cards are revealed and
// either the claim completes at once (no extras demanded) or the turn
// suspends until RespondToTunnel.
func (g *Game) ClaimRoute(playerID uuid.UUID, routeID int, cards []board.Color) (*ClaimResult, error) {
	p, err := g.actingPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if g.Action != nil {
		return nil, ruleErr(CodeActionInProgress, "finish your current action first")
	}

	route, ok := board.RouteByID(routeID)
	if !ok {
		return nil, ruleErr(CodeRouteNotFound, "route %d does not exist", routeID)
	}
	if _, taken := g.ClaimedRoutes[routeID]; taken {
		return nil, ruleErr(CodeRouteTaken, "that route is already claimed")
	}
	if err := g.checkParallelRoute(p, route); err != nil {
		return nil, err
	}
	if p.Trains < route.Length {
		return nil, ruleErr(CodeNotEnoughTrains, "you need %d trains but have %d", route.Length, p.Trains)
	}

	matchColor, err := validateCardsForRoute(route, cards)
	if err != nil {
		return nil, err
	}
	if !handHas(p.Hand, cards) {
		return nil, ruleErr(CodeCardsNotInHand, "you do not hold all of those cards")
	}

	if route.Type == board.Tunnel {
		return g.startTunnelChallenge(p, route, cards, matchColor)
	}

	g.completeClaim(p, route, cards)
	return &ClaimResult{Points: routePoints[route.Length]}, nil
}

// checkParallelRoute enforces the double-route rules: a player never owns
// both twins, and with fewer than four players a claimed route permanently
// blocks its twin.
func (g *Game) checkParallelRoute(p *Player, route board.Route) error {
	twin, ok := board.PairedRoute(route)
	if !ok {
		return nil
	}
	owner, claimed := g.ClaimedRoutes[twin.ID]
	if !claimed {
		return nil
	}
	if owner == p.ID {
		return ruleErr(CodeParallelRoute, "you already own the parallel route")
	}
	if len(g.Players) <= 3 {
		return ruleErr(CodeParallelRoute, "parallel routes are closed with %d players", len(g.Players))
	}
	return nil
}

// validateCardsForRoute checks the payment against the route and reports the
// color the payment is made in, which is what a tunnel reveal is matched
// against. An all-locomotive payment pays in Locomotive, so a tunnel reveal
// then only matches locomotives. Ferries additionally demand a minimum
// locomotive count.
func validateCardsForRoute(route board.Route, cards []board.Color) (board.Color, error) {
	if len(cards) != route.Length {
		return "", ruleErr(CodeBadCards, "this route needs exactly %d cards", route.Length)
	}

	payColor := board.Locomotive
	for _, c := range cards {
		if c != board.Locomotive {
			payColor = c
			break
		}
	}

	locomotives := 0
	for _, c := range cards {
		if c == board.Locomotive {
			locomotives++
			continue
		}
		if !validTrainColor(c) {
			return "", ruleErr(CodeBadCards, "%q is not a card color", c)
		}
		if c != payColor {
			return "", ruleErr(CodeBadCards, "all cards must be %s or locomotives", payColor)
		}
	}

	if route.Color != board.Any && payColor != board.Locomotive && payColor != route.Color {
		return "", ruleErr(CodeBadCards, "this route must be paid in %s or locomotives", route.Color)
	}
	if route.Type == board.Ferry && locomotives < route.Ferries {
		return "", ruleErr(CodeBadCards, "this ferry needs at least %d locomotives", route.Ferries)
	}

	return payColor, nil
}

func validTrainColor(c board.Color) bool {
	for _, t := range board.TrainColors {
		if c == t {
			return true
		}
	}
	return false
}

// handHas reports whether the hand covers the cards as a multiset.
func handHas(hand, cards []board.Color) bool {
	counts := make(map[board.Color]int, len(hand))
	for _, c := range hand {
		counts[c]++
	}
	for _, c := range cards {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}

// removeCardsFromHand moves the cards from the hand to the discard pile. The
// caller has already verified the hand covers them.
func (g *Game) removeCardsFromHand(p *Player, cards []board.Color) {
	for _, c := range cards {
		for i, h := range p.Hand {
			if h == c {
				p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
				break
			}
		}
		g.DiscardPile = append(g.DiscardPile, c)
	}
}

// completeClaim applies a validated claim: cards to the discard pile, trains
// off the supply, points on the score, ownership recorded, and the turn ends
// (possibly tipping the game into its last round).
func (g *Game) completeClaim(p *Player, route board.Route, cards []board.Color) {
	g.removeCardsFromHand(p, cards)
	p.Trains -= route.Length
	p.Points += routePoints[route.Length]
	p.ClaimedRoutes = append(p.ClaimedRoutes, route.ID)
	g.ClaimedRoutes[route.ID] = p.ID
	g.checkLastRound(p)
	g.endTurn()
}
