package player

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/ZygmuntJakub/wizard/internal/engine"
)

// PlayerFactory builds a fresh strategy. Every seat of every game gets its own
// instance and its own random source.
type PlayerFactory func(rng *rand.Rand) engine.Strategy

var registry = map[string]PlayerFactory{
	"random":   NewRandomBot,
	"debug":    NewDebugBot,
	"simple":   NewSimpleBot,
	"cautious": NewCautiousBot,
}

// Lookup returns the factory registered under name.
func Lookup(name string) (PlayerFactory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (have %v)", name, Names())
	}
	return f, nil
}

// Names lists the registered strategies.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// mostCommonSuit returns the suit held most often, ties going to the first in
// engine.Suits order, or false for a hand without standard cards.
func mostCommonSuit(hand []engine.Card) (engine.Suit, bool) {
	counts := map[engine.Suit]int{}
	for _, c := range hand {
		if c.Kind == engine.KindStandard {
			counts[c.Suit]++
		}
	}
	best, n := engine.NoSuit, 0
	for _, s := range engine.Suits {
		if counts[s] > n {
			best, n = s, counts[s]
		}
	}
	return best, n > 0
}

func randomSuit(rng *rand.Rand) engine.Suit {
	return engine.Suits[rng.IntN(len(engine.Suits))]
}

// strongestCard picks a Wizard, else the highest trump, else the highest other
// standard card, else the first card.
func strongestCard(hand []engine.Card, trump *engine.Suit) engine.Card {
	if i := slices.IndexFunc(hand, func(c engine.Card) bool { return c.Kind == engine.KindWizard }); i >= 0 {
		return hand[i]
	}
	highest := func(keep func(engine.Card) bool) (engine.Card, bool) {
		var best engine.Card
		found := false
		for _, c := range hand {
			if keep(c) && (!found || c.Rank > best.Rank) {
				best, found = c, true
			}
		}
		return best, found
	}
	if trump != nil {
		if c, ok := highest(func(c engine.Card) bool { return c.Is(*trump) }); ok {
			return c
		}
	}
	if c, ok := highest(func(c engine.Card) bool { return c.Kind == engine.KindStandard }); ok {
		return c
	}
	return hand[0]
}
