package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"

	"github.com/ZygmuntJakub/wizard/internal/config"
	"github.com/ZygmuntJakub/wizard/internal/engine"
	"github.com/ZygmuntJakub/wizard/internal/simulation"
)

func runSimulate(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	games := fs.Int("games", 1000, "number of games")
	players := fs.String("players", "simple,debug,cautious,random", "comma separated strategy per seat")
	seed := fs.Uint64("seed", 0, "master seed (0 = random)")
	workers := fs.Int("workers", cfg.Workers, "parallel games (0 = one per CPU)")
	bounded := fs.Bool("bounded", false, "restrict bids to [0, round]")
	wizardTrump := fs.Bool("wizard-trump", false, "dealer declares trump under a flipped Wizard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sim := simulation.Config{
		Strategies:      splitList(*players),
		Games:           *games,
		Seed:            *seed,
		Workers:         *workers,
		DecisionTimeout: cfg.DecisionTimeout,
		Logger:          &log.Logger,
	}
	if *bounded {
		sim.BidPolicy = engine.BidsBounded
	}
	if *wizardTrump {
		sim.WizardTrump = engine.DealerChooses
	}

	res, err := simulation.Run(ctx, sim)
	if err != nil {
		return err
	}
	fmt.Println(summaryTable(res))
	fmt.Println(bidTable(res))
	fmt.Printf("seed %d, %d/%d games completed in %s\n", res.Seed, res.Completed, res.Games, res.Duration)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func styled(t *table.Table) *table.Table {
	return t.Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func summaryTable(res *simulation.Result) string {
	t := styled(table.New()).
		Headers("strategy", "games", "wins", "win rate", "avg score", "stddev", "avg pos", "positions 1..6")
	for _, s := range res.Strategies {
		pos := make([]string, len(s.Positions))
		for i, n := range s.Positions {
			pos[i] = strconv.Itoa(n)
		}
		t.Row(
			s.Name,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			fmt.Sprintf("%.1f%%", 100*s.WinRate),
			fmt.Sprintf("%.1f", s.AvgScore),
			fmt.Sprintf("%.1f", s.StdDevScore),
			fmt.Sprintf("%.2f", s.AvgPosition),
			strings.Join(pos, "/"),
		)
	}
	return t.String()
}

// bidTable shows the share of exact bids per round, one column per strategy.
func bidTable(res *simulation.Result) string {
	if len(res.Strategies) == 0 {
		return ""
	}
	headers := []string{"round"}
	for _, s := range res.Strategies {
		headers = append(headers, s.Name)
	}
	t := styled(table.New()).Headers(headers...)
	for _, round := range res.Strategies[0].Rounds() {
		row := []string{strconv.Itoa(round)}
		for _, s := range res.Strategies {
			row = append(row, fmt.Sprintf("%.0f%%", 100*s.BidAccuracy[round]))
		}
		t.Row(row...)
	}
	return t.String()
}
