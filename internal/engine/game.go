package engine

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	MinPlayers = 3
	MaxPlayers = 6
)

// GameParams parameterizes game rules.
type GameParams struct {
	BidPolicy BidPolicy
	// WizardTrump, when set, lets a player declare trump under a flipped Wizard.
	WizardTrump     TrumpChooser
	DecisionTimeout time.Duration
	// Seed drives seating and every shuffle. Zero picks a random seed.
	Seed         uint64
	Deck         DeckSource
	FixedSeating bool
	Logger       *zerolog.Logger
}

// Game runs rounds 1..60/players and keeps the cumulative scores.
type Game struct {
	ID     string
	Params GameParams

	phase   Phase
	players []*Player
	scores  map[PlayerID]int
	results []RoundResult
	round   *Round
	winners []PlayerID

	rng *rand.Rand
	log zerolog.Logger
}

// NewGame returns a game in setup phase, filling zero params with defaults.
func NewGame(params GameParams) *Game {
	if params.DecisionTimeout == 0 {
		params.DecisionTimeout = DefaultDecisionTimeout
	}
	if params.Seed == 0 {
		params.Seed = rand.Uint64()
	}
	if params.Deck == nil {
		params.Deck = ShuffledDeck
	}
	base := zerolog.Nop()
	if params.Logger != nil {
		base = *params.Logger
	}
	id := uuid.NewString()
	return &Game{
		ID:     id,
		Params: params,
		phase:  PhaseSetup,
		scores: map[PlayerID]int{},
		rng:    rand.New(rand.NewPCG(params.Seed, params.Seed^0x9e3779b97f4a7c15)),
		log:    base.With().Str("game", id[:8]).Logger(),
	}
}

// AddPlayer seats a new player and returns its identity.
func (g *Game) AddPlayer(name string, s Strategy) (PlayerID, error) {
	if g.phase != PhaseSetup {
		return PlayerID{}, ErrAlreadyStarted
	}
	if len(g.players) >= MaxPlayers {
		return PlayerID{}, ErrTooManyPlayers
	}
	if s == nil {
		return PlayerID{}, ErrNoStrategy
	}
	p := &Player{ID: NewPlayerID(), Name: name, Strategy: s}
	g.players = append(g.players, p)
	emit(withPlayer(g.log.Info(), p), EventPlayerAdded).Msg("player added")
	return p.ID, nil
}

// Start shuffles the seating, plays every round and ends the game. Any error
// aborts the game; the scores gathered so far stay readable.
func (g *Game) Start(ctx context.Context) error {
	if g.phase != PhaseSetup {
		return ErrAlreadyStarted
	}
	if n := len(g.players); n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("%d players: %w", n, ErrInvalidPlayerCount)
	}
	if !g.Params.FixedSeating {
		g.rng.Shuffle(len(g.players), func(i, j int) { g.players[i], g.players[j] = g.players[j], g.players[i] })
	}
	for _, p := range g.players {
		g.scores[p.ID] = 0
	}
	g.phase = PhasePlaying
	emit(g.log.Info(), EventGameStarted).
		Int("players", len(g.players)).
		Int("rounds", g.Rounds()).
		Uint64("seed", g.Params.Seed).
		Msg("game started")

	for n := 1; n <= g.Rounds(); n++ {
		if err := g.playRound(ctx, n); err != nil {
			g.phase = PhaseAborted
			emit(g.log.Error(), EventGameAborted).Err(err).Int("round", n).Msg("game aborted")
			return err
		}
	}
	g.end()
	return nil
}

func (g *Game) playRound(ctx context.Context, n int) error {
	deck := g.Params.Deck(n, g.rng)
	r, err := newRound(n, g.players, deck, g.Params, g.log)
	if err != nil {
		return err
	}
	r.snapshot = g.snapshotFor
	g.round = r

	scores, err := r.Play(ctx)
	if err != nil {
		return fmt.Errorf("round %d: %w", n, err)
	}
	for id, s := range scores {
		g.scores[id] += s
	}
	g.results = append(g.results, r.Result())
	r.Phase = RoundComplete

	for _, p := range g.players {
		emit(withPlayer(g.log.Info(), p), EventRoundScored).
			Int("round", n).
			Int("bid", r.Bids[p.ID]).
			Int("won", r.TricksWon[p.ID]).
			Int("score", scores[p.ID]).
			Int("total", g.scores[p.ID]).
			Msg("round scored")
	}
	return nil
}

func (g *Game) end() {
	best := 0
	for i, p := range g.players {
		if s := g.scores[p.ID]; i == 0 || s > best {
			best = s
		}
	}
	g.winners = nil
	for _, p := range g.players {
		if g.scores[p.ID] == best {
			g.winners = append(g.winners, p.ID)
		}
	}
	g.phase = PhaseEnded

	names := make([]string, len(g.winners))
	for i, id := range g.winners {
		names[i] = g.player(id).Name
	}
	emit(g.log.Info(), EventGameEnded).Strs("winners", names).Int("score", best).Msg("game ended")
}

func (g *Game) snapshotFor(id PlayerID) Snapshot {
	return buildSnapshot(id, g.players, g.scores, g.round)
}

func (g *Game) player(id PlayerID) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Rounds returns how many rounds the game plays with the current players.
func (g *Game) Rounds() int {
	if len(g.players) == 0 {
		return 0
	}
	return DeckSize / len(g.players)
}

// Phase returns the game phase.
func (g *Game) Phase() Phase { return g.phase }

// Players returns the seating order.
func (g *Game) Players() []PlayerInfo {
	out := make([]PlayerInfo, len(g.players))
	for i, p := range g.players {
		out[i] = PlayerInfo{ID: p.ID, Name: p.Name}
	}
	return out
}

// Strategy returns the strategy playing for a player.
func (g *Game) Strategy(id PlayerID) Strategy {
	if p := g.player(id); p != nil {
		return p.Strategy
	}
	return nil
}

// Scores returns the cumulative scores.
func (g *Game) Scores() map[PlayerID]int { return maps.Clone(g.scores) }

// RoundResults returns the records of the completed rounds in order.
func (g *Game) RoundResults() []RoundResult { return slices.Clone(g.results) }

// Winners returns every player tied at the top score once the game has ended.
func (g *Game) Winners() []PlayerID { return slices.Clone(g.winners) }

// CurrentRound returns the round in progress or last played, nil before Start.
func (g *Game) CurrentRound() *Round { return g.round }

// SnapshotFor returns the view of the game for one player.
func (g *Game) SnapshotFor(id PlayerID) Snapshot { return g.snapshotFor(id) }
