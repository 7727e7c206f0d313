// internal/handlers/game_server.go
package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"railways/internal/game"
)

const wsWriteTimeout = 3 * time.Second

// GameServer owns the in-memory game store and the per-game map of live
// WebSocket connections. The engine itself knows nothing about transports;
// every connection-related concern lives here.
type GameServer struct {
	GameStore *game.GameStore

	mu    sync.Mutex
	conns map[uuid.UUID]map[uuid.UUID]*websocket.Conn // game id -> player id -> conn
}

func NewGameServer() *GameServer {
	return &GameServer{
		GameStore: game.NewGameStore(),
		conns:     make(map[uuid.UUID]map[uuid.UUID]*websocket.Conn),
	}
}

func (gs *GameServer) registerConn(gameID, playerID uuid.UUID, c *websocket.Conn) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.conns[gameID] == nil {
		gs.conns[gameID] = make(map[uuid.UUID]*websocket.Conn)
	}
	gs.conns[gameID][playerID] = c
}

func (gs *GameServer) unregisterConn(gameID, playerID uuid.UUID) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	delete(gs.conns[gameID], playerID)
	if len(gs.conns[gameID]) == 0 {
		delete(gs.conns, gameID)
	}
}

// releaseSeat frees a waiting player's seat after their connection drops,
// dropping the game from the store once its last seat empties. The store
// deletion happens after g.Mu is released: DeleteGame takes the store lock,
// and FindOrCreateWaiting acquires the two locks in the opposite order.
func (gs *GameServer) releaseSeat(g *game.Game, playerID uuid.UUID) {
	empty := false
	g.Mu.Lock()
	if g.Phase == game.PhaseWaiting {
		g.RemovePlayer(playerID)
		empty = len(g.Players) == 0
	}
	g.Mu.Unlock()
	if empty {
		gs.GameStore.DeleteGame(g.ID)
	}
}

// connsForGame snapshots the live connections so writes happen outside the
// server lock.
func (gs *GameServer) connsForGame(gameID uuid.UUID) map[uuid.UUID]*websocket.Conn {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	out := make(map[uuid.UUID]*websocket.Conn, len(gs.conns[gameID]))
	for pid, c := range gs.conns[gameID] {
		out[pid] = c
	}
	return out
}

// BroadcastSnapshots sends every connected player their own redacted view of
// the game. Snapshots are projected under the game lock; the writes happen
// asynchronously so a slow client never blocks game logic.
func (gs *GameServer) BroadcastSnapshots(logger *logrus.Logger, g *game.Game) {
	conns := gs.connsForGame(g.ID)

	g.Mu.Lock()
	payloads := make(map[uuid.UUID][]byte, len(conns))
	for pid := range conns {
		snap := g.SnapshotFor(pid)
		data, err := json.Marshal(wsEnvelope{Type: "game_state", State: &snap})
		if err != nil {
			logger.Errorf("failed to marshal snapshot for player %s in game %s: %v", pid, g.ID, err)
			continue
		}
		payloads[pid] = data
	}
	g.Mu.Unlock()

	go func() {
		for pid, data := range payloads {
			writeWithTimeout(logger, conns[pid], data, pid, g.ID)
		}
	}()
}

// BroadcastResults sends the final standings to every connected player once
// the game has finished.
func (gs *GameServer) BroadcastResults(logger *logrus.Logger, g *game.Game) {
	g.Mu.Lock()
	results, err := g.FinalResults()
	g.Mu.Unlock()
	if err != nil {
		return
	}

	data, err := json.Marshal(wsEnvelope{Type: "game_results", Results: results})
	if err != nil {
		logger.Errorf("failed to marshal results for game %s: %v", g.ID, err)
		return
	}

	conns := gs.connsForGame(g.ID)
	go func() {
		for pid, c := range conns {
			writeWithTimeout(logger, c, data, pid, g.ID)
		}
	}()
}

func writeWithTimeout(logger *logrus.Logger, c *websocket.Conn, data []byte, playerID, gameID uuid.UUID) {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), wsWriteTimeout)
	defer cancel()
	if err := c.Write(ctx, websocket.MessageText, data); err != nil {
		logger.Warnf("failed to write to player %s in game %s: %v", playerID, gameID, err)
	}
}
