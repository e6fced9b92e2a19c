package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// fakeStrategy answers with the given funcs; unset ones bid 0, play the first
// legal card and declare hearts.
type fakeStrategy struct {
	bid   func(s Snapshot) (int, error)
	play  func(ctx context.Context, s Snapshot) (Card, error)
	trump func(s Snapshot) (Suit, error)

	seen []Snapshot
}

func (f *fakeStrategy) Bid(_ context.Context, s Snapshot) (int, error) {
	f.seen = append(f.seen, s)
	if f.bid == nil {
		return 0, nil
	}
	return f.bid(s)
}

func (f *fakeStrategy) PlayCard(ctx context.Context, s Snapshot) (Card, error) {
	f.seen = append(f.seen, s)
	if f.play == nil {
		return s.ValidCards()[0], nil
	}
	return f.play(ctx, s)
}

func (f *fakeStrategy) ChooseTrumpSuit(_ context.Context, s Snapshot) (Suit, error) {
	f.seen = append(f.seen, s)
	if f.trump == nil {
		return Hearts, nil
	}
	return f.trump(s)
}

func playing(c Card) func(context.Context, Snapshot) (Card, error) {
	return func(context.Context, Snapshot) (Card, error) { return c, nil }
}

func bidding(n int) func(Snapshot) (int, error) {
	return func(Snapshot) (int, error) { return n, nil }
}

func newSeats(names ...string) []*Player {
	seats := make([]*Player, len(names))
	for i, n := range names {
		seats[i] = &Player{ID: NewPlayerID(), Name: n, Strategy: &fakeStrategy{}}
	}
	return seats
}

func fake(p *Player) *fakeStrategy { return p.Strategy.(*fakeStrategy) }

// testRound builds a round in the playing phase with the given hands.
func testRound(seats []*Player, hands map[PlayerID][]Card, trump *Suit) *Round {
	r := &Round{
		Number:    len(hands[seats[0].ID]),
		Phase:     RoundPlaying,
		Trump:     trump,
		Bids:      map[PlayerID]int{},
		TricksWon: map[PlayerID]int{},
		Leader:    seats[0].ID,
		seats:     seats,
		hands:     hands,
		params:    GameParams{DecisionTimeout: time.Second},
		log:       zerolog.Nop(),
	}
	for _, p := range seats {
		r.TricksWon[p.ID] = 0
	}
	r.snapshot = func(id PlayerID) Snapshot { return buildSnapshot(id, r.seats, nil, r) }
	return r
}

func suitPtr(s Suit) *Suit { return &s }

// stackedDeck deals hands in seat order, then flips trump, then fills up with
// cards nobody will see.
func stackedDeck(hands [][]Card, trump *Card) *Deck {
	var cards []Card
	for _, h := range hands {
		cards = append(cards, h...)
	}
	if trump != nil {
		cards = append(cards, *trump)
	}
	return NewDeckOf(cards)
}
