package player

import (
	"context"
	"math/rand/v2"

	"github.com/ZygmuntJakub/wizard/internal/engine"
)

// CautiousBot plays like SimpleBot but weighs the single card of round one by
// its expected score, and counts high cards in the last round.
type CautiousBot struct {
	SimpleBot
}

func NewCautiousBot(rng *rand.Rand) engine.Strategy {
	return &CautiousBot{SimpleBot{rng: rng}}
}

func (b *CautiousBot) Bid(_ context.Context, s engine.Snapshot) (int, error) {
	if s.Round == 1 && len(s.Hand) == 1 {
		if expectedValue(s) > 0 {
			return 1, nil
		}
	}
	bid := countStrong(s.Hand, s.Trump)
	if len(s.Players) > 0 && s.Round == engine.DeckSize/len(s.Players) {
		for _, c := range s.Hand {
			if c.Kind == engine.KindStandard && c.Rank >= 10 && (s.Trump == nil || !c.Is(*s.Trump)) {
				bid++
			}
		}
	}
	return min(bid, s.Round), nil
}

// expectedValue estimates the score of bidding one with the single card of
// round one: +30 when no relevant opponent holds a beating card, -10 otherwise.
// A negative result means the bot should not try.
func expectedValue(s engine.Snapshot) float64 {
	const win, lose = 30.0, -10.0
	card := s.Hand[0]
	seat := s.Seat(s.Self)
	opponents := len(s.Players) - 1

	unseen := engine.DeckSize - 1
	if s.TrumpCard != nil {
		unseen--
	}
	trumps := 0
	if s.Trump != nil {
		trumps = engine.MaxRank
		if s.TrumpCard != nil && s.TrumpCard.Is(*s.Trump) {
			trumps--
		}
	}

	var beating, dangerous int
	switch {
	case card.Kind == engine.KindJester:
		return -1
	case card.Kind == engine.KindWizard:
		// only an earlier Wizard beats a Wizard
		beating, dangerous = engine.SpecialCopies-1, seat
	case s.Trump != nil && card.Is(*s.Trump):
		beating, dangerous = engine.SpecialCopies+engine.MaxRank-card.Rank, opponents
	default:
		if seat != 0 {
			return -1
		}
		beating, dangerous = engine.SpecialCopies+trumps+engine.MaxRank-card.Rank, opponents
	}

	safe := unseen - beating
	pWin := 1.0
	for i := 0; i < dangerous; i++ {
		pWin *= float64(safe-i) / float64(unseen-i)
	}
	return pWin*win + (1-pWin)*lose
}
