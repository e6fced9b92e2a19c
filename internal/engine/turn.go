package engine

import (
	"context"
	"slices"
)

// ValidCards returns the subset of hand that may be played on a trick where
// played cards are already down and led is the suit of its first standard card.
//
// A leader plays freely. A follower holding the led suit must play it or a
// Wizard or Jester; a follower without it, or following only special cards,
// plays freely.
func ValidCards(hand []Card, played []Play, led *Suit) []Card {
	if len(played) == 0 || led == nil || !holdsSuit(hand, *led) {
		return slices.Clone(hand)
	}
	var out []Card
	for _, c := range hand {
		if c.Special() || c.Is(*led) {
			out = append(out, c)
		}
	}
	return out
}

func holdsSuit(hand []Card, s Suit) bool {
	return slices.ContainsFunc(hand, func(c Card) bool { return c.Is(s) })
}

// Turn is one player's card play within a trick.
type Turn struct {
	player *Player
	trick  *Trick
	round  *Round
}

// Play asks the player for a card, validates it against the legal subset of
// the hand and applies it to the hand and the trick. A rejected decision is
// returned as a *PlayerError and nothing is changed.
func (t *Turn) Play(ctx context.Context) (Card, error) {
	id := t.player.ID
	hand := t.round.hands[id]
	legal := ValidCards(hand, t.trick.Plays, t.trick.LedSuit)
	snap := t.round.snapshot(id)

	card, err := decide(ctx, t.round.params.DecisionTimeout, t.player, "play card",
		func(ctx context.Context, s Strategy) (Card, error) { return s.PlayCard(ctx, snap) })
	if err != nil {
		return Card{}, err
	}
	if err := card.Validate(); err != nil {
		return Card{}, t.player.reject(ErrInvalidDecisionType, card, err)
	}
	if !slices.Contains(legal, card) {
		return Card{}, t.player.reject(ErrIllegalCardPlayed, card, nil)
	}

	i := slices.Index(hand, card)
	t.round.hands[id] = slices.Delete(hand, i, i+1)
	t.trick.record(id, card)
	return card, nil
}
