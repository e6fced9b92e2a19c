package engine

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// TrumpChooser names the player who declares trump when the flipped card is a
// Wizard. seats is the bidding order of the round.
type TrumpChooser func(seats []PlayerID, round int) PlayerID

// DealerChooses lets the last seat of the bidding order declare trump.
func DealerChooses(seats []PlayerID, _ int) PlayerID {
	return seats[len(seats)-1]
}

// Round is one deal-bid-play-score cycle. Round n deals n cards per player
// and plays n tricks.
type Round struct {
	Number    int
	Phase     RoundPhase
	TrumpCard *Card // nil when dealing used the whole deck
	Trump     *Suit
	Bids      map[PlayerID]int
	TricksWon map[PlayerID]int
	Current   *Trick
	Leader    PlayerID

	seats    []*Player
	hands    map[PlayerID][]Card
	params   GameParams
	log      zerolog.Logger
	snapshot SnapshotFunc
}

func newRound(number int, seats []*Player, deck *Deck, params GameParams, log zerolog.Logger) (*Round, error) {
	r := &Round{
		Number:    number,
		Phase:     RoundCreated,
		Bids:      map[PlayerID]int{},
		TricksWon: map[PlayerID]int{},
		Leader:    seats[0].ID,
		seats:     seats,
		params:    params,
		log:       log,
	}
	r.snapshot = func(id PlayerID) Snapshot { return buildSnapshot(id, r.seats, nil, r) }

	hands, err := deck.Deal(seatIDs(seats), number)
	if err != nil {
		return nil, fmt.Errorf("round %d: %w", number, err)
	}
	r.hands = hands
	for _, p := range seats {
		r.TricksWon[p.ID] = 0
	}
	if deck.Remaining() > 0 {
		c, _ := deck.DrawOne()
		r.TrumpCard = &c
		if c.Kind == KindStandard {
			s := c.Suit
			r.Trump = &s
		}
	}
	r.Phase = RoundDealt
	return r, nil
}

// Hand returns a copy of a player's remaining cards.
func (r *Round) Hand(id PlayerID) []Card { return slices.Clone(r.hands[id]) }

// Play runs bidding and all tricks, and returns the round scores.
func (r *Round) Play(ctx context.Context) (map[PlayerID]int, error) {
	if err := r.declareTrump(ctx); err != nil {
		return nil, err
	}
	ev := r.log.Info()
	if r.TrumpCard != nil {
		ev = ev.Stringer("trump_card", r.TrumpCard)
	}
	if r.Trump != nil {
		ev = ev.Str("trump", r.Trump.Name())
	}
	emit(ev, EventRoundStarted).Int("round", r.Number).Msg("round started")

	if err := r.runBidding(ctx); err != nil {
		return nil, err
	}

	r.Phase = RoundPlaying
	for n := 1; n <= r.Number; n++ {
		r.Current = &Trick{Number: n, Leader: r.Leader, round: r}
		w, err := r.Current.Play(ctx)
		if err != nil {
			return nil, fmt.Errorf("trick %d: %w", n, err)
		}
		r.TricksWon[w]++
		r.Leader = w
		emit(withPlayer(r.log.Debug(), r.player(w)), EventTrickWon).
			Int("round", r.Number).
			Int("trick", n).
			Msg("trick won")
	}

	scores := r.Scores()
	r.Phase = RoundScored
	return scores, nil
}

func (r *Round) declareTrump(ctx context.Context) error {
	if r.TrumpCard == nil || r.TrumpCard.Kind != KindWizard || r.params.WizardTrump == nil {
		return nil
	}
	id := r.params.WizardTrump(seatIDs(r.seats), r.Number)
	p := r.player(id)
	if p == nil {
		return fmt.Errorf("round %d: trump chooser picked unknown player %s", r.Number, id)
	}
	snap := r.snapshot(id)
	s, err := decide(ctx, r.params.DecisionTimeout, p, "choose trump",
		func(ctx context.Context, st Strategy) (Suit, error) { return st.ChooseTrumpSuit(ctx, snap) })
	if err != nil {
		return err
	}
	if !s.Valid() {
		return p.reject(ErrInvalidDecisionType, s, fmt.Errorf("not a trump suit"))
	}
	r.Trump = &s
	return nil
}

func (r *Round) runBidding(ctx context.Context) error {
	r.Phase = RoundBidding
	for _, p := range r.seats {
		snap := r.snapshot(p.ID)
		bid, err := decide(ctx, r.params.DecisionTimeout, p, "bid",
			func(ctx context.Context, s Strategy) (int, error) { return s.Bid(ctx, snap) })
		if err != nil {
			return err
		}
		if r.params.BidPolicy == BidsBounded && (bid < 0 || bid > r.Number) {
			return p.reject(ErrIllegalBid, bid, fmt.Errorf("allowed 0..%d", r.Number))
		}
		r.Bids[p.ID] = bid
		emit(withPlayer(r.log.Debug(), p), EventBidPlaced).
			Int("round", r.Number).
			Int("bid", bid).
			Msg("bid placed")
	}
	return nil
}

// Scores converts bids and tricks won into the round score of every player.
func (r *Round) Scores() map[PlayerID]int {
	out := make(map[PlayerID]int, len(r.seats))
	for _, p := range r.seats {
		out[p.ID] = Score(r.Bids[p.ID], r.TricksWon[p.ID])
	}
	return out
}

// Score is 20 plus 10 per trick for an exact bid, minus 10 per trick of difference otherwise.
func Score(bid, won int) int {
	if bid == won {
		return 20 + 10*bid
	}
	diff := bid - won
	if diff < 0 {
		diff = -diff
	}
	return -10 * diff
}

// Result returns the record of the round.
func (r *Round) Result() RoundResult {
	res := RoundResult{
		Number:    r.Number,
		Bids:      maps.Clone(r.Bids),
		TricksWon: maps.Clone(r.TricksWon),
		Scores:    r.Scores(),
	}
	if r.TrumpCard != nil {
		c := *r.TrumpCard
		res.TrumpCard = &c
	}
	if r.Trump != nil {
		s := *r.Trump
		res.Trump = &s
	}
	return res
}

func (r *Round) player(id PlayerID) *Player {
	for _, p := range r.seats {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func seatIDs(seats []*Player) []PlayerID {
	ids := make([]PlayerID, len(seats))
	for i, p := range seats {
		ids[i] = p.ID
	}
	return ids
}
