package engine

import (
	"context"
	"fmt"
)

// ErrTrickIncomplete is returned when a winner is asked for before every player played.
var ErrTrickIncomplete = &GameError{"TRICKINCOMPLETE", "trick is not complete"}

// Trick holds the state of a trick.
type Trick struct {
	Number  int
	Leader  PlayerID
	Plays   []Play
	LedSuit *Suit // suit of the first standard card
	Winner  *PlayerID

	round *Round
}

func (t *Trick) record(p PlayerID, c Card) {
	t.Plays = append(t.Plays, Play{Player: p, Card: c})
	if t.LedSuit == nil && c.Kind == KindStandard {
		s := c.Suit
		t.LedSuit = &s
	}
}

// Play runs one turn per player, starting with the leader and going around
// the table, then resolves the winner.
func (t *Trick) Play(ctx context.Context) (PlayerID, error) {
	r := t.round
	for _, p := range rotate(r.seats, t.Leader) {
		turn := &Turn{player: p, trick: t, round: r}
		card, err := turn.Play(ctx)
		if err != nil {
			return PlayerID{}, err
		}
		emit(withPlayer(r.log.Debug(), p), EventCardPlayed).
			Int("round", r.Number).
			Int("trick", t.Number).
			Stringer("card", card).
			Msg("card played")
	}
	w, err := t.DetermineWinner(r.Trump)
	if err != nil {
		return PlayerID{}, err
	}
	t.Winner = &w
	return w, nil
}

// DetermineWinner resolves a complete trick.
func (t *Trick) DetermineWinner(trump *Suit) (PlayerID, error) {
	if len(t.Plays) == 0 || (t.round != nil && len(t.Plays) != len(t.round.seats)) {
		return PlayerID{}, fmt.Errorf("trick %d with %d plays: %w", t.Number, len(t.Plays), ErrTrickIncomplete)
	}
	return t.Plays[WinningPlay(t.Plays, trump)].Player, nil
}

// WinningPlay returns the index of the winning play, or -1 for no plays.
// The checks run in this order and the order matters:
//  1. the first Wizard wins;
//  2. if all cards are Jesters, the first play wins;
//  3. the highest trump wins;
//  4. the highest card of the led suit wins.
func WinningPlay(plays []Play, trump *Suit) int {
	if len(plays) == 0 {
		return -1
	}
	for i, p := range plays {
		if p.Card.Kind == KindWizard {
			return i
		}
	}

	var led *Suit
	allJesters := true
	for _, p := range plays {
		if p.Card.Kind != KindJester {
			allJesters = false
		}
		if led == nil && p.Card.Kind == KindStandard {
			s := p.Card.Suit
			led = &s
		}
	}
	if allJesters {
		return 0
	}
	if trump != nil {
		if i := highestOfSuit(plays, *trump); i >= 0 {
			return i
		}
	}
	// no Wizard and not all Jesters, so a standard card set led
	return highestOfSuit(plays, *led)
}

func highestOfSuit(plays []Play, s Suit) int {
	best := -1
	for i, p := range plays {
		if p.Card.Is(s) && (best < 0 || p.Card.Rank > plays[best].Card.Rank) {
			best = i
		}
	}
	return best
}

// rotate returns the seating order starting at leader.
func rotate(seats []*Player, leader PlayerID) []*Player {
	for i, p := range seats {
		if p.ID == leader {
			out := make([]*Player, 0, len(seats))
			out = append(out, seats[i:]...)
			return append(out, seats[:i]...)
		}
	}
	return seats
}
