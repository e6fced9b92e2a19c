package simulation

import (
	"math"
	"slices"
	"time"

	"github.com/ZygmuntJakub/wizard/internal/engine"
)

// Result is the outcome of a batch.
type Result struct {
	Seed       uint64          `json:"seed"`
	Games      int             `json:"games"`
	Completed  int             `json:"completed"`
	Errors     int             `json:"errors"`
	Workers    int             `json:"workers"`
	Duration   time.Duration   `json:"duration_ns"`
	Strategies []StrategyStats `json:"strategies"`
}

// StrategyStats aggregates every seat played by one strategy. A strategy on
// two seats contributes two entries per game to Games.
type StrategyStats struct {
	Name        string  `json:"name"`
	Games       int     `json:"games"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"`
	TotalScore  int     `json:"total_score"`
	AvgScore    float64 `json:"avg_score"`
	StdDevScore float64 `json:"stddev_score"`
	AvgPosition float64 `json:"avg_position"`
	// Positions[i] counts finishes in place i+1; tied players share a place.
	Positions []int `json:"positions"`
	// BidAccuracy maps a round number to the share of exact bids.
	BidAccuracy map[int]float64 `json:"bid_accuracy"`
}

type accumulator struct {
	stats     StrategyStats
	scores    []int
	positions int
	made      map[int]int
	bid       map[int]int
}

func summarize(order []string, outcomes []*outcome) *Result {
	res := &Result{Games: len(outcomes)}
	var names []string
	accs := map[string]*accumulator{}
	for _, name := range order {
		if _, ok := accs[name]; ok {
			continue
		}
		names = append(names, name)
		accs[name] = &accumulator{
			stats: StrategyStats{Name: name, Positions: make([]int, engine.MaxPlayers)},
			made:  map[int]int{},
			bid:   map[int]int{},
		}
	}

	for _, o := range outcomes {
		if o == nil {
			res.Errors++
			continue
		}
		res.Completed++
		for _, seat := range o.seats {
			a := accs[seat.strategy]
			a.stats.Games++
			if seat.winner {
				a.stats.Wins++
			}
			a.stats.TotalScore += seat.score
			a.scores = append(a.scores, seat.score)
			a.stats.Positions[seat.position-1]++
			a.positions += seat.position
			for round, ok := range seat.bids {
				a.bid[round]++
				if ok {
					a.made[round]++
				}
			}
		}
	}

	for _, name := range names {
		res.Strategies = append(res.Strategies, accs[name].finish())
	}
	return res
}

func (a *accumulator) finish() StrategyStats {
	s := a.stats
	s.BidAccuracy = make(map[int]float64, len(a.bid))
	if s.Games == 0 {
		return s
	}
	n := float64(s.Games)
	s.WinRate = float64(s.Wins) / n
	s.AvgScore = float64(s.TotalScore) / n
	s.AvgPosition = float64(a.positions) / n
	var sq float64
	for _, v := range a.scores {
		d := float64(v) - s.AvgScore
		sq += d * d
	}
	s.StdDevScore = math.Sqrt(sq / n)
	for round, total := range a.bid {
		s.BidAccuracy[round] = float64(a.made[round]) / float64(total)
	}
	return s
}

// Rounds lists the round numbers present in BidAccuracy in ascending order.
func (s StrategyStats) Rounds() []int {
	rounds := make([]int, 0, len(s.BidAccuracy))
	for r := range s.BidAccuracy {
		rounds = append(rounds, r)
	}
	slices.Sort(rounds)
	return rounds
}
