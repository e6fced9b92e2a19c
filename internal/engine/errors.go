package engine

import "fmt"

// GameError is a rule or setup violation identified by a stable code.
type GameError struct {
	Code string
	Msg  string
}

func (e *GameError) ErrorCode() string { return e.Code }
func (e *GameError) Error() string     { return e.Msg }

var (
	// ErrInsufficientCards means the deck cannot satisfy a draw or deal
	ErrInsufficientCards = &GameError{"INSUFFICIENTCARDS", "insufficient cards in deck"}
	// ErrTooManyPlayers is returned by AddPlayer once the table is full
	ErrTooManyPlayers = &GameError{"TOOMANYPLAYERS", "too many players"}
	// ErrInvalidPlayerCount means Start was called without 3 to 6 players
	ErrInvalidPlayerCount = &GameError{"INVALIDPLAYERCOUNT", "invalid number of players"}
	// ErrAlreadyStarted is for setup calls after Start
	ErrAlreadyStarted = &GameError{"ALREADYSTARTED", "game has already started"}
	// ErrNoStrategy means a player was added without anything to make its decisions
	ErrNoStrategy = &GameError{"NOSTRATEGY", "player has no strategy"}

	// ErrInvalidDecisionType means a decision was structurally malformed
	ErrInvalidDecisionType = &GameError{"INVALIDDECISIONTYPE", "decision has an invalid type"}
	// ErrIllegalCardPlayed means the card is not in the legal subset of the hand
	ErrIllegalCardPlayed = &GameError{"ILLEGALCARD", "illegal card played"}
	// ErrIllegalBid means a bid outside [0, round] under BidsBounded
	ErrIllegalBid = &GameError{"ILLEGALBID", "illegal bid"}
	// ErrPlayerFault means the decision call failed, panicked or timed out
	ErrPlayerFault = &GameError{"PLAYERFAULT", "player failed to decide"}
)

// PlayerError reports a rejected decision. It matches its Kind and its cause with errors.Is.
type PlayerError struct {
	Kind     *GameError
	Player   PlayerID
	Name     string
	Decision any
	Err      error
}

func (e *PlayerError) Error() string {
	msg := fmt.Sprintf("player %s (%s): %s", e.Name, e.Player.Short(), e.Kind.Msg)
	if e.Decision != nil {
		msg += fmt.Sprintf(" %v", e.Decision)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PlayerError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func (p *Player) reject(kind *GameError, decision any, cause error) *PlayerError {
	return &PlayerError{Kind: kind, Player: p.ID, Name: p.Name, Decision: decision, Err: cause}
}
