// internal/game/station.go
package game

import (
	"github.com/google/uuid"

	"railways/internal/board"
)

// stationCosts indexes the card price of the next station by how many have
// already been placed: the first costs 1, the second 2, the third 3.
var stationCosts = [3]int{1, 2, 3}

// BuildStation places one of the player's stations on a city. The cost must
// be paid in a single color (locomotives wild), and no player may hold two
// stations on the same city. Building ends the turn.
func (g *Game) BuildStation(playerID uuid.UUID, city string, cards []board.Color) error {
	p, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Action != nil {
		return ruleErr(CodeActionInProgress, "finish your current action first")
	}
	if p.Stations <= 0 {
		return ruleErr(CodeNoStations, "you have no stations left")
	}
	if !board.CityExists(city) {
		return ruleErr(CodeCityNotFound, "city %q does not exist", city)
	}
	for _, existing := range p.StationCities {
		if existing == city {
			return ruleErr(CodeStationExists, "you already have a station in %s", city)
		}
	}

	cost := stationCosts[initialStations-p.Stations]
	if len(cards) != cost {
		return ruleErr(CodeBadCards, "your next station costs exactly %d cards", cost)
	}

	var color board.Color
	for _, c := range cards {
		if c == board.Locomotive {
			continue
		}
		if !validTrainColor(c) {
			return ruleErr(CodeBadCards, "%q is not a card color", c)
		}
		if color == "" {
			color = c
		} else if c != color {
			return ruleErr(CodeBadCards, "all cards must share one color")
		}
	}
	if !handHas(p.Hand, cards) {
		return ruleErr(CodeCardsNotInHand, "you do not hold all of those cards")
	}

	g.removeCardsFromHand(p, cards)
	p.Stations--
	p.StationCities = append(p.StationCities, city)
	g.endTurn()
	return nil
}
