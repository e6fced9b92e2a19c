package player

import (
	"context"
	"math/rand/v2"

	"github.com/ZygmuntJakub/wizard/internal/engine"
)

// RandomBot bids and plays uniformly at random among legal options.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(rng *rand.Rand) engine.Strategy {
	return &RandomBot{rng: rng}
}

func (b *RandomBot) Bid(_ context.Context, s engine.Snapshot) (int, error) {
	return b.rng.IntN(s.Round + 1), nil
}

func (b *RandomBot) PlayCard(_ context.Context, s engine.Snapshot) (engine.Card, error) {
	valid := s.ValidCards()
	return valid[b.rng.IntN(len(valid))], nil
}

func (b *RandomBot) ChooseTrumpSuit(_ context.Context, _ engine.Snapshot) (engine.Suit, error) {
	return randomSuit(b.rng), nil
}

// DebugBot bids zero and always plays its first legal card.
type DebugBot struct {
	rng *rand.Rand
}

func NewDebugBot(rng *rand.Rand) engine.Strategy {
	return &DebugBot{rng: rng}
}

func (b *DebugBot) Bid(context.Context, engine.Snapshot) (int, error) { return 0, nil }

func (b *DebugBot) PlayCard(_ context.Context, s engine.Snapshot) (engine.Card, error) {
	return s.ValidCards()[0], nil
}

func (b *DebugBot) ChooseTrumpSuit(context.Context, engine.Snapshot) (engine.Suit, error) {
	return randomSuit(b.rng), nil
}
