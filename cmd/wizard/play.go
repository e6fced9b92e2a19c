package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ZygmuntJakub/wizard/internal/config"
	"github.com/ZygmuntJakub/wizard/internal/engine"
	"github.com/ZygmuntJakub/wizard/internal/player"
)

func runPlay(ctx context.Context, _ config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	name := fs.String("name", "You", "your display name")
	bots := fs.String("bots", "simple,simple,cautious", "comma separated opponent strategies")
	seed := fs.Uint64("seed", 0, "game seed (0 = random)")
	timeout := fs.Duration("timeout", 30*time.Minute, "how long to wait for each of your decisions")
	wizardTrump := fs.Bool("wizard-trump", true, "dealer declares trump under a flipped Wizard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seed == 0 {
		*seed = rand.Uint64()
	}

	term, closeTerm, err := player.NewReadlineTerminal()
	if err != nil {
		return err
	}
	defer closeTerm()

	params := engine.GameParams{
		BidPolicy:       engine.BidsBounded,
		DecisionTimeout: *timeout,
		Seed:            *seed,
		Logger:          &log.Logger,
	}
	if *wizardTrump {
		params.WizardTrump = engine.DealerChooses
	}
	game := engine.NewGame(params)
	if _, err := game.AddPlayer(*name, term); err != nil {
		return err
	}
	for i, b := range splitList(*bots) {
		factory, err := player.Lookup(b)
		if err != nil {
			return err
		}
		rng := rand.New(rand.NewPCG(*seed, uint64(i)+1))
		if _, err := game.AddPlayer(fmt.Sprintf("%s-%d", b, i+1), factory(rng)); err != nil {
			return err
		}
	}

	if err := game.Start(ctx); err != nil {
		return err
	}

	scores := game.Scores()
	names := map[engine.PlayerID]string{}
	fmt.Println("final scores:")
	for _, p := range game.Players() {
		names[p.ID] = p.Name
		fmt.Printf("  %-12s %4d\n", p.Name, scores[p.ID])
	}
	for _, id := range game.Winners() {
		fmt.Printf("winner: %s\n", names[id])
	}
	return nil
}
