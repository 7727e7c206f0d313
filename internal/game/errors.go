// internal/game/errors.go
package game

import "fmt"

// Rule failure codes. Every rejected action maps to one of these; the engine
// never mutates state on a rejection.
const (
	CodeGameFull         = "game_full"
	CodeWrongPhase       = "wrong_phase"
	CodePlayerNotFound   = "player_not_found"
	CodeNotYourTurn      = "not_your_turn"
	CodePendingTickets   = "pending_tickets"
	CodeActionInProgress = "action_in_progress"
	CodeTicketsBelowMin  = "tickets_below_min"
	CodeNoPendingTickets = "no_pending_tickets"
	CodeBadSlot          = "bad_slot"
	CodeLocomotiveSecond = "locomotive_second_card"
	CodeDeckEmpty        = "deck_empty"
	CodeTicketDeckEmpty  = "ticket_deck_empty"
	CodeRouteNotFound    = "route_not_found"
	CodeRouteTaken       = "route_taken"
	CodeParallelRoute    = "parallel_route"
	CodeNotEnoughTrains  = "not_enough_trains"
	CodeBadCards         = "bad_cards"
	CodeCardsNotInHand   = "cards_not_in_hand"
	CodeNoTunnelPending  = "no_tunnel_pending"
	CodeNoStations       = "no_stations"
	CodeCityNotFound     = "city_not_found"
	CodeStationExists    = "station_exists"
	CodeGameNotFinished  = "game_not_finished"
)

// RuleError is a recoverable validation failure: the action was rejected, the
// game state is unchanged, and Reason is safe to show the offending player.
type RuleError struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

func (e *RuleError) Error() string {
	return e.Reason
}

func ruleErr(code, format string, args ...interface{}) *RuleError {
	return &RuleError{Code: code, Reason: fmt.Sprintf(format, args...)}
}
