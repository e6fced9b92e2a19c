package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinningPlay_TableDriven(t *testing.T) {
	a, b, c, d := NewPlayerID(), NewPlayerID(), NewPlayerID(), NewPlayerID()
	tests := []struct {
		name  string
		plays []Play
		trump *Suit
		want  int
	}{
		{
			name:  "no plays",
			plays: nil,
			want:  -1,
		},
		{
			name:  "highest of led suit",
			plays: []Play{{a, NewStandard(Hearts, 5)}, {b, NewStandard(Hearts, 12)}, {c, NewStandard(Hearts, 7)}},
			want:  1,
		},
		{
			name:  "off-suit rank does not matter",
			plays: []Play{{a, NewStandard(Hearts, 5)}, {b, NewStandard(Spades, 13)}, {c, NewStandard(Clubs, 12)}},
			trump: suitPtr(Diamonds),
			want:  0,
		},
		{
			name:  "wizard beats trump",
			plays: []Play{{a, NewStandard(Hearts, 13)}, {b, NewWizard()}, {c, NewStandard(Hearts, 12)}},
			trump: suitPtr(Hearts),
			want:  1,
		},
		{
			name:  "first wizard wins over later wizard",
			plays: []Play{{a, NewStandard(Clubs, 2)}, {b, NewWizard()}, {c, NewWizard()}, {d, NewJester()}},
			trump: suitPtr(Clubs),
			want:  1,
		},
		{
			name:  "all jesters go to the first player",
			plays: []Play{{a, NewJester()}, {b, NewJester()}, {c, NewJester()}},
			trump: suitPtr(Spades),
			want:  0,
		},
		{
			name:  "any trump beats the led suit",
			plays: []Play{{a, NewStandard(Hearts, 13)}, {b, NewStandard(Spades, 2)}, {c, NewStandard(Hearts, 12)}},
			trump: suitPtr(Spades),
			want:  1,
		},
		{
			name:  "highest trump wins",
			plays: []Play{{a, NewStandard(Spades, 4)}, {b, NewStandard(Hearts, 2)}, {c, NewStandard(Spades, 11)}, {d, NewStandard(Spades, 9)}},
			trump: suitPtr(Spades),
			want:  2,
		},
		{
			name:  "no trump suit",
			plays: []Play{{a, NewStandard(Diamonds, 3)}, {b, NewStandard(Spades, 13)}, {c, NewStandard(Diamonds, 8)}},
			trump: nil,
			want:  2,
		},
		{
			name:  "jester lead, led suit set by first standard card",
			plays: []Play{{a, NewJester()}, {b, NewStandard(Clubs, 3)}, {c, NewStandard(Hearts, 13)}, {d, NewStandard(Clubs, 9)}},
			want:  3,
		},
		{
			name:  "jesters lose to any standard card",
			plays: []Play{{a, NewJester()}, {b, NewJester()}, {c, NewStandard(Hearts, 1)}},
			trump: suitPtr(Spades),
			want:  2,
		},
		{
			name:  "trump not played falls back to led suit",
			plays: []Play{{a, NewStandard(Clubs, 6)}, {b, NewStandard(Clubs, 10)}, {c, NewJester()}},
			trump: suitPtr(Diamonds),
			want:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WinningPlay(tt.plays, tt.trump))
		})
	}
}

func TestTrick_PlayRotatesFromLeader(t *testing.T) {
	seats := newSeats("A", "B", "C", "D")
	hands := map[PlayerID][]Card{
		seats[0].ID: {NewStandard(Hearts, 13)},
		seats[1].ID: {NewStandard(Hearts, 2)},
		seats[2].ID: {NewStandard(Hearts, 5)},
		seats[3].ID: {NewStandard(Spades, 1)},
	}
	r := testRound(seats, hands, suitPtr(Spades))
	trick := &Trick{Number: 1, Leader: seats[2].ID, round: r}
	r.Current = trick

	w, err := trick.Play(context.Background())
	require.NoError(t, err)

	var order []PlayerID
	for _, p := range trick.Plays {
		order = append(order, p.Player)
	}
	assert.Equal(t, []PlayerID{seats[2].ID, seats[3].ID, seats[0].ID, seats[1].ID}, order)
	require.NotNil(t, trick.LedSuit)
	assert.Equal(t, Hearts, *trick.LedSuit)
	// D could not follow hearts, played a trump
	assert.Equal(t, seats[3].ID, w)
	assert.Equal(t, &w, trick.Winner)
	for _, p := range seats {
		assert.Empty(t, r.Hand(p.ID))
	}
}

func TestTrick_PlayStopsAtFirstRejection(t *testing.T) {
	seats := newSeats("A", "B", "C")
	hands := map[PlayerID][]Card{
		seats[0].ID: {NewStandard(Hearts, 13)},
		seats[1].ID: {NewStandard(Hearts, 2), NewStandard(Clubs, 2)},
		seats[2].ID: {NewStandard(Hearts, 5)},
	}
	r := testRound(seats, hands, nil)
	fake(seats[1]).play = playing(NewStandard(Clubs, 2))
	trick := &Trick{Number: 1, Leader: seats[0].ID, round: r}

	_, err := trick.Play(context.Background())
	assert.ErrorIs(t, err, ErrIllegalCardPlayed)
	assert.Len(t, trick.Plays, 1)
	assert.Nil(t, trick.Winner)
	assert.Empty(t, fake(seats[2]).seen, "nobody plays after a rejection")
}

func TestTrick_DetermineWinnerNeedsEveryPlay(t *testing.T) {
	seats := newSeats("A", "B", "C")
	r := testRound(seats, map[PlayerID][]Card{}, nil)
	trick := &Trick{Number: 2, round: r}

	_, err := trick.DetermineWinner(nil)
	assert.ErrorIs(t, err, ErrTrickIncomplete)

	trick.record(seats[0].ID, NewWizard())
	_, err = trick.DetermineWinner(nil)
	assert.ErrorIs(t, err, ErrTrickIncomplete)
}

// Three players, trump hearts: hearts 5 leads, hearts 9 follows, the third
// player without hearts may play anything and an off-suit king still loses.
func TestTrick_ThreePlayerTrumpScenario(t *testing.T) {
	seats := newSeats("A", "B", "C")
	hands := map[PlayerID][]Card{
		seats[0].ID: {NewStandard(Hearts, 5), NewStandard(Clubs, 1), NewStandard(Spades, 2)},
		seats[1].ID: {NewStandard(Hearts, 9), NewStandard(Diamonds, 4), NewJester()},
		seats[2].ID: {NewStandard(Spades, 13), NewStandard(Clubs, 13), NewStandard(Diamonds, 13)},
	}
	r := testRound(seats, hands, suitPtr(Hearts))
	require.Equal(t, 3, r.Number)
	fake(seats[0]).play = playing(NewStandard(Hearts, 5))
	fake(seats[1]).play = playing(NewStandard(Hearts, 9))
	fake(seats[2]).play = func(_ context.Context, s Snapshot) (Card, error) {
		assert.ElementsMatch(t, s.Hand, s.ValidCards(), "no hearts, every card is legal")
		return NewStandard(Diamonds, 13), nil
	}
	trick := &Trick{Number: 1, Leader: seats[0].ID, round: r}
	r.Current = trick

	w, err := trick.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Hearts, *trick.LedSuit)
	assert.Equal(t, seats[1].ID, w)
}
