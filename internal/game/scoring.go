// internal/game/scoring.go
package game

import (
	"sort"

	"github.com/google/uuid"

	"railways/internal/board"
)

const (
	unusedStationPoints = 4
	longestPathPoints   = 10
)

// PlayerResult is one row of the final standings.
type PlayerResult struct {
	PlayerID         uuid.UUID `json:"playerId"`
	Name             string    `json:"name"`
	Color            string    `json:"color"`
	Points           int       `json:"points"`
	Tickets          []Ticket  `json:"tickets"`
	RoutesClaimed    int       `json:"routesClaimed"`
	TrainsLeft       int       `json:"trainsLeft"`
	StationsLeft     int       `json:"stationsLeft"`
	LongestPath      int       `json:"longestPath"`
	LongestPathBonus bool      `json:"longestPathBonus"`
}

// finishGame runs end-of-game scoring: ticket completion (with station
// borrowing), unused station bonuses, and the longest continuous path bonus.
func (g *Game) finishGame() {
	g.Phase = PhaseFinished
	g.Action = nil

	for _, p := range g.Players {
		network := g.scoringRoutes(p)
		for i := range p.Tickets {
			t := &p.Tickets[i]
			t.Completed = citiesConnected(network, t.From, t.To)
			if t.Completed {
				p.Points += t.Points
			} else {
				p.Points -= t.Points
			}
		}
		p.Points += p.Stations * unusedStationPoints
	}

	best := 0
	lengths := make([]int, len(g.Players))
	for i, p := range g.Players {
		lengths[i] = longestPath(g.ownedRoutes(p))
		if lengths[i] > best {
			best = lengths[i]
		}
	}
	for i, p := range g.Players {
		if lengths[i] == best && best > 0 {
			p.Points += longestPathPoints
			p.LongestPathBonus = true
		}
	}
}

// ownedRoutes resolves a player's claimed route ids to routes.
func (g *Game) ownedRoutes(p *Player) []board.Route {
	routes := make([]board.Route, 0, len(p.ClaimedRoutes))
	for _, id := range p.ClaimedRoutes {
		if r, ok := board.RouteByID(id); ok {
			routes = append(routes, r)
		}
	}
	return routes
}

// scoringRoutes is the network a player's tickets are judged against: their
// own routes plus, for each of their stations, one borrowed route belonging
// to another player that touches the station's city. The borrowed route is
// picked deterministically as the first qualifying route in board order.
func (g *Game) scoringRoutes(p *Player) []board.Route {
	network := g.ownedRoutes(p)
	for _, city := range p.StationCities {
		for _, r := range board.Routes() {
			owner, claimed := g.ClaimedRoutes[r.ID]
			if !claimed || owner == p.ID {
				continue
			}
			if r.From == city || r.To == city {
				network = append(network, r)
				break
			}
		}
	}
	return network
}

// citiesConnected reports whether from and to lie in the same component of
// the route network.
func citiesConnected(network []board.Route, from, to string) bool {
	if from == to {
		return true
	}
	adjacency := make(map[string][]string)
	for _, r := range network {
		adjacency[r.From] = append(adjacency[r.From], r.To)
		adjacency[r.To] = append(adjacency[r.To], r.From)
	}

	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		city := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[city] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// longestPath finds the length in trains of the longest continuous path over
// the routes, visiting each route at most once. Exhaustive search is fine at
// the scale of one player's network (at most 45 trains of track).
func longestPath(routes []board.Route) int {
	adjacency := make(map[string][]board.Route)
	for _, r := range routes {
		adjacency[r.From] = append(adjacency[r.From], r)
		adjacency[r.To] = append(adjacency[r.To], r)
	}

	used := make(map[int]bool, len(routes))
	best := 0

	var walk func(city string, length int)
	walk = func(city string, length int) {
		if length > best {
			best = length
		}
		for _, r := range adjacency[city] {
			if used[r.ID] {
				continue
			}
			next := r.To
			if next == city {
				next = r.From
			}
			used[r.ID] = true
			walk(next, length+r.Length)
			used[r.ID] = false
		}
	}

	for city := range adjacency {
		walk(city, 0)
	}
	return best
}

// FinalResults returns the standings, highest score first. Only available
// once the game has finished.
func (g *Game) FinalResults() ([]PlayerResult, error) {
	if g.Phase != PhaseFinished {
		return nil, ruleErr(CodeGameNotFinished, "the game is not over yet")
	}

	results := make([]PlayerResult, 0, len(g.Players))
	for _, p := range g.Players {
		results = append(results, PlayerResult{
			PlayerID:         p.ID,
			Name:             p.Name,
			Color:            p.Color,
			Points:           p.Points,
			Tickets:          p.Tickets,
			RoutesClaimed:    len(p.ClaimedRoutes),
			TrainsLeft:       p.Trains,
			StationsLeft:     p.Stations,
			LongestPath:      longestPath(g.ownedRoutes(p)),
			LongestPathBonus: p.LongestPathBonus,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Points > results[j].Points
	})
	return results, nil
}
