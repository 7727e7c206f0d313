// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"railways/internal/board"
	"railways/internal/game"
	"railways/internal/middleware"
)

// GameMessage is an incoming client message. Type selects the action; the
// remaining fields carry that action's arguments.
type GameMessage struct {
	Type string `json:"type"`

	// Name is the display name, sent with the initial join message.
	Name string `json:"name,omitempty"`

	// TicketIDs selects which offered tickets to keep.
	TicketIDs []int `json:"ticketIds,omitempty"`

	// Slot addresses a face-up display position for draw_face_up.
	Slot int `json:"slot"`

	// RouteID and Cards describe a route claim; Cards is also the station
	// payment and the extra tunnel payment.
	RouteID int           `json:"routeId,omitempty"`
	Cards   []board.Color `json:"cards,omitempty"`

	// Accept answers a tunnel challenge.
	Accept bool `json:"accept,omitempty"`

	// City names the station target for build_station.
	City string `json:"city,omitempty"`
}

// wsEnvelope is the single outgoing message shape.
type wsEnvelope struct {
	Type     string              `json:"type"`
	GameID   uuid.UUID           `json:"gameId,omitempty"`
	PlayerID uuid.UUID           `json:"playerId,omitempty"`
	State    *game.Snapshot      `json:"state,omitempty"`
	Result   interface{}         `json:"result,omitempty"`
	Results  []game.PlayerResult `json:"results,omitempty"`
	Code     string              `json:"code,omitempty"`
	Reason   string              `json:"reason,omitempty"`
}

// GameWSHandler upgrades the connection, seats the client in the first
// waiting game with a free seat (creating one if needed), and runs the read
// loop until the connection drops.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "internal error")

		if c.Subprotocol() != "game" {
			c.Close(BadSubprotocolError, "client must use the 'game' subprotocol")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// The first message must be a join carrying the display name.
		var joinMsg GameMessage
		if _, data, err := c.Read(ctx); err != nil || json.Unmarshal(data, &joinMsg) != nil || joinMsg.Type != "join" {
			c.Close(BadJoinError, "expected a join message first")
			return
		}
		name := strings.TrimSpace(joinMsg.Name)
		if name == "" {
			name = "anonymous"
		}

		playerID := uuid.New()
		g := gs.GameStore.FindOrCreateWaiting()

		g.Mu.Lock()
		_, err = g.AddPlayer(playerID, name)
		g.Mu.Unlock()
		if err != nil {
			sendWsError(ctx, logger, c, err)
			c.Close(websocket.StatusTryAgainLater, "no seat available")
			return
		}

		gs.registerConn(g.ID, playerID, c)
		logger.Infof("player %s (%s) joined game %s", playerID, name, g.ID)

		sendWsMessage(ctx, logger, c, wsEnvelope{Type: "joined", GameID: g.ID, PlayerID: playerID})
		gs.BroadcastSnapshots(logger, g)

		readGameMessages(ctx, c, gs, g, playerID, logger)

		gs.unregisterConn(g.ID, playerID)

		// A seat in a waiting game frees up when its player walks away;
		// started games keep the seat so the player can reconnect later.
		gs.releaseSeat(g, playerID)

		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, nil)
		gs.BroadcastSnapshots(logger, g)
	}
}

// readGameMessages pumps client messages into the engine until the
// connection closes. Every engine call happens under the game lock; rule
// rejections go back to the offender only, successful mutations fan out as
// fresh snapshots to everyone.
func readGameMessages(ctx context.Context, c *websocket.Conn, gs *GameServer, g *game.Game, playerID uuid.UUID, logger *logrus.Logger) {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("websocket closed normally for player %s in game %s", playerID, g.ID)
			} else if !errors.Is(err, context.Canceled) {
				logger.Warnf("websocket read error for player %s in game %s: %v", playerID, g.ID, err)
			}
			return
		}
		if msgType != websocket.MessageText {
			continue
		}

		var msg GameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("invalid JSON from player %s in game %s: %v", playerID, g.ID, err)
			sendWsMessage(ctx, logger, c, wsEnvelope{Type: "error", Code: "bad_json", Reason: "invalid JSON"})
			continue
		}

		if msg.Type == "ping" {
			sendWsMessage(ctx, logger, c, wsEnvelope{Type: "pong"})
			continue
		}

		g.Mu.Lock()
		result, err := dispatch(g, playerID, msg)
		finished := g.Phase == game.PhaseFinished
		g.Mu.Unlock()

		if err != nil {
			sendWsError(ctx, logger, c, err)
			continue
		}

		if result != nil {
			sendWsMessage(ctx, logger, c, wsEnvelope{Type: msg.Type + "_result", Result: result})
		}
		gs.BroadcastSnapshots(logger, g)
		if finished {
			gs.BroadcastResults(logger, g)
		}
	}
}

// dispatch routes one message to the engine. The caller holds the game lock.
func dispatch(g *game.Game, playerID uuid.UUID, msg GameMessage) (interface{}, error) {
	switch msg.Type {
	case "start":
		return nil, g.Start()
	case "choose_initial_tickets":
		return nil, g.ChooseInitialTickets(playerID, msg.TicketIDs)
	case "draw_card":
		return g.DrawFromDeck(playerID)
	case "draw_face_up":
		return g.DrawFaceUp(playerID, msg.Slot)
	case "draw_tickets":
		return nil, g.DrawTickets(playerID)
	case "choose_tickets":
		return nil, g.ChooseTickets(playerID, msg.TicketIDs)
	case "claim_route":
		return g.ClaimRoute(playerID, msg.RouteID, msg.Cards)
	case "respond_tunnel":
		return g.RespondToTunnel(playerID, msg.Accept, msg.Cards)
	case "build_station":
		return nil, g.BuildStation(playerID, msg.City, msg.Cards)
	default:
		return nil, &game.RuleError{Code: "unknown_action", Reason: "unknown action type: " + msg.Type}
	}
}

// sendWsError reports a failure to the offending client. Rule errors keep
// their code; anything else is wrapped as internal.
func sendWsError(ctx context.Context, logger *logrus.Logger, c *websocket.Conn, err error) {
	env := wsEnvelope{Type: "error", Code: "internal", Reason: "internal error"}
	var re *game.RuleError
	if errors.As(err, &re) {
		env.Code = re.Code
		env.Reason = re.Reason
	}
	sendWsMessage(ctx, logger, c, env)
}

func sendWsMessage(ctx context.Context, logger *logrus.Logger, c *websocket.Conn, message wsEnvelope) {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Errorf("failed to marshal websocket message: %v", err)
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	if err := c.Write(writeCtx, websocket.MessageText, data); err != nil {
		logger.Warnf("failed to write websocket message: %v", err)
	}
}
