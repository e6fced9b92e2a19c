package player

import (
	"context"
	"math/rand/v2"

	"github.com/ZygmuntJakub/wizard/internal/engine"
)

// SimpleBot bids its Wizards and trumps. While short of its bid it leads with
// its strongest card; otherwise it plays the first legal card.
type SimpleBot struct {
	rng *rand.Rand
}

func NewSimpleBot(rng *rand.Rand) engine.Strategy {
	return &SimpleBot{rng: rng}
}

func (b *SimpleBot) Bid(_ context.Context, s engine.Snapshot) (int, error) {
	return min(countStrong(s.Hand, s.Trump), s.Round), nil
}

func countStrong(hand []engine.Card, trump *engine.Suit) int {
	n := 0
	for _, c := range hand {
		if c.Kind == engine.KindWizard || (trump != nil && c.Is(*trump)) {
			n++
		}
	}
	return n
}

func (b *SimpleBot) PlayCard(_ context.Context, s engine.Snapshot) (engine.Card, error) {
	bid, _ := s.OwnBid()
	if len(s.Trick.Plays) == 0 && s.TricksWon[s.Self] < bid {
		return strongestCard(s.Hand, s.Trump), nil
	}
	return s.ValidCards()[0], nil
}

func (b *SimpleBot) ChooseTrumpSuit(_ context.Context, s engine.Snapshot) (engine.Suit, error) {
	if suit, ok := mostCommonSuit(s.Hand); ok {
		return suit, nil
	}
	return randomSuit(b.rng), nil
}
