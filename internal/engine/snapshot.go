package engine

import (
	"maps"
	"slices"
)

// SnapshotFunc assembles the view of the game a player is entitled to see.
type SnapshotFunc func(PlayerID) Snapshot

// TrickView is the public state of the trick in progress.
type TrickView struct {
	Number  int
	Leader  PlayerID
	Plays   []Play
	LedSuit *Suit
}

// Snapshot is an immutable per-player view of the game. It is a deep copy:
// holding on to it never exposes live engine state.
type Snapshot struct {
	Self      PlayerID
	Players   []PlayerInfo // seating order
	Round     int
	Scores    map[PlayerID]int
	Bids      map[PlayerID]int // bids placed so far this round
	TricksWon map[PlayerID]int
	TrumpCard *Card
	Trump     *Suit
	Trick     TrickView
	Hand      []Card
}

// ValidCards returns the cards of the own hand that may be played now.
func (s Snapshot) ValidCards() []Card {
	return ValidCards(s.Hand, s.Trick.Plays, s.Trick.LedSuit)
}

// Seat returns the position of a player in the seating order, or -1.
func (s Snapshot) Seat(id PlayerID) int {
	return slices.IndexFunc(s.Players, func(p PlayerInfo) bool { return p.ID == id })
}

// Name returns the display name of a player.
func (s Snapshot) Name(id PlayerID) string {
	if i := s.Seat(id); i >= 0 {
		return s.Players[i].Name
	}
	return ""
}

// OwnBid returns the player's bid for the round, if placed.
func (s Snapshot) OwnBid() (int, bool) {
	b, ok := s.Bids[s.Self]
	return b, ok
}

func buildSnapshot(self PlayerID, seats []*Player, scores map[PlayerID]int, r *Round) Snapshot {
	s := Snapshot{
		Self:    self,
		Players: make([]PlayerInfo, len(seats)),
		Scores:  make(map[PlayerID]int, len(seats)),
	}
	for i, p := range seats {
		s.Players[i] = PlayerInfo{ID: p.ID, Name: p.Name}
		s.Scores[p.ID] = scores[p.ID]
	}
	if r == nil {
		return s
	}
	s.Round = r.Number
	s.Bids = maps.Clone(r.Bids)
	s.TricksWon = maps.Clone(r.TricksWon)
	if r.TrumpCard != nil {
		c := *r.TrumpCard
		s.TrumpCard = &c
	}
	if r.Trump != nil {
		t := *r.Trump
		s.Trump = &t
	}
	if t := r.Current; t != nil {
		s.Trick = TrickView{Number: t.Number, Leader: t.Leader, Plays: slices.Clone(t.Plays)}
		if t.LedSuit != nil {
			led := *t.LedSuit
			s.Trick.LedSuit = &led
		}
	}
	s.Hand = slices.Clone(r.hands[self])
	return s
}
