package game

import (
	"sync"

	"github.com/google/uuid"
)

type GameStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*Game
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[uuid.UUID]*Game),
	}
}

func (s *GameStore) AddGame(g *Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
}

func (s *GameStore) GetGame(id uuid.UUID) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, exists := s.games[id]
	return g, exists
}

func (s *GameStore) DeleteGame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}

// FindOrCreateWaiting returns the first waiting game with a free seat, or
// creates and registers a new one. The per-game lock is taken briefly to read
// the phase and seat count without racing a concurrent start.
func (s *GameStore) FindOrCreateWaiting() *Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		g.Mu.Lock()
		open := g.Phase == PhaseWaiting && len(g.Players) < maxPlayers
		g.Mu.Unlock()
		if open {
			return g
		}
	}
	g := NewGame()
	s.games[g.ID] = g
	return g
}
