// Package simulation plays batches of independent games between bots and
// aggregates per-strategy statistics.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ZygmuntJakub/wizard/internal/engine"
	"github.com/ZygmuntJakub/wizard/internal/player"
)

var ErrNoGames = errors.New("at least one game is required")

// Config describes a batch. Strategies holds one registered strategy name per
// seat; the same name may appear more than once.
type Config struct {
	Strategies      []string
	Games           int
	Seed            uint64 // 0 picks a random master seed
	Workers         int    // 0 means runtime.NumCPU()
	DecisionTimeout time.Duration
	BidPolicy       engine.BidPolicy
	WizardTrump     engine.TrumpChooser
	Logger          *zerolog.Logger
}

func (c Config) Validate() error {
	n := len(c.Strategies)
	if n < engine.MinPlayers {
		return fmt.Errorf("%w: %d strategies", engine.ErrInvalidPlayerCount, n)
	}
	if n > engine.MaxPlayers {
		return fmt.Errorf("%w: %d strategies", engine.ErrTooManyPlayers, n)
	}
	for _, name := range c.Strategies {
		if _, err := player.Lookup(name); err != nil {
			return err
		}
	}
	if c.Games < 1 {
		return ErrNoGames
	}
	return nil
}

type seatOutcome struct {
	strategy string
	score    int
	position int
	winner   bool
	bids     map[int]bool // round number -> bid made exactly
}

type outcome struct {
	seats []seatOutcome
}

// Run plays cfg.Games games on a bounded worker pool. Every game gets its own
// seed drawn from the master seed, so a batch is reproducible whatever the
// number of workers. A game that aborts is counted in Result.Errors; only a
// canceled ctx fails the whole batch.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	master := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	seeds := make([]uint64, cfg.Games)
	for i := range seeds {
		if seeds[i] = master.Uint64(); seeds[i] == 0 {
			seeds[i] = 1
		}
	}

	log.Info().
		Strs("strategies", cfg.Strategies).
		Int("games", cfg.Games).
		Int("workers", workers).
		Uint64("seed", seed).
		Msg("simulation started")

	start := time.Now()
	outcomes := make([]*outcome, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			o, err := playOne(gctx, cfg, s)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn().Err(err).Int("game", i).Uint64("seed", s).Msg("game aborted")
				return nil
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := summarize(cfg.Strategies, outcomes)
	res.Seed = seed
	res.Workers = workers
	res.Duration = time.Since(start)
	log.Info().
		Int("completed", res.Completed).
		Int("errors", res.Errors).
		Dur("took", res.Duration).
		Msg("simulation finished")
	return res, nil
}

func playOne(ctx context.Context, cfg Config, seed uint64) (*outcome, error) {
	game := engine.NewGame(engine.GameParams{
		BidPolicy:       cfg.BidPolicy,
		WizardTrump:     cfg.WizardTrump,
		DecisionTimeout: cfg.DecisionTimeout,
		Seed:            seed,
	})
	strategies := make(map[engine.PlayerID]string, len(cfg.Strategies))
	for seat, name := range cfg.Strategies {
		factory, err := player.Lookup(name)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewPCG(seed, uint64(seat)+1))
		id, err := game.AddPlayer(fmt.Sprintf("%s-%d", name, seat+1), factory(rng))
		if err != nil {
			return nil, err
		}
		strategies[id] = name
	}
	if err := game.Start(ctx); err != nil {
		return nil, err
	}

	scores := game.Scores()
	winners := map[engine.PlayerID]bool{}
	for _, id := range game.Winners() {
		winners[id] = true
	}
	results := game.RoundResults()

	o := &outcome{}
	for _, p := range game.Players() {
		position := 1
		for _, other := range game.Players() {
			if scores[other.ID] > scores[p.ID] {
				position++
			}
		}
		bids := make(map[int]bool, len(results))
		for _, r := range results {
			bids[r.Number] = r.Bids[p.ID] == r.TricksWon[p.ID]
		}
		o.seats = append(o.seats, seatOutcome{
			strategy: strategies[p.ID],
			score:    scores[p.ID],
			position: position,
			winner:   winners[p.ID],
			bids:     bids,
		})
	}
	return o, nil
}
