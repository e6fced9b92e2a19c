package engine

import "github.com/rs/zerolog"

// EventKind names an event the engine emits on its logger.
type EventKind string

const (
	EventPlayerAdded  EventKind = "player_added"
	EventGameStarted  EventKind = "game_started"
	EventRoundStarted EventKind = "round_started"
	EventBidPlaced    EventKind = "bid_placed"
	EventCardPlayed   EventKind = "card_played"
	EventTrickWon     EventKind = "trick_won"
	EventRoundScored  EventKind = "round_scored"
	EventGameEnded    EventKind = "game_ended"
	EventGameAborted  EventKind = "game_aborted"
)

// emit tags e with the event kind. Disabled levels give a nil event, which zerolog ignores.
func emit(e *zerolog.Event, kind EventKind) *zerolog.Event {
	return e.Str("event", string(kind))
}

func withPlayer(e *zerolog.Event, p *Player) *zerolog.Event {
	if p == nil {
		return e
	}
	return e.Str("player", p.Name).Str("player_id", p.ID.Short())
}
