// Package statistics aggregates per-hand simulation results into
// win-rate estimates with confidence intervals, measured in big blinds
// per hand.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult is the outcome of a single simulated hand from the hero's
// point of view.
type HandResult struct {
	NetBB          float64 // net big blinds won or lost
	Seed           int64   // rng seed for replaying the hand
	Position       int     // hero's seat for the hand
	WentToShowdown bool
	FinalPot       int
	StreetReached  string
}

// PositionStats tracks results for one seat
type PositionStats struct {
	Hands int
	SumBB float64
}

// Statistics accumulates hand results. Zero value is ready to use.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64

	Positions map[int]PositionStats

	MaxPot  int
	BigPots int // pots of at least 50bb
}

// Add incorporates one hand result
func (s *Statistics) Add(result HandResult) {
	net := result.NetBB
	s.Hands++
	s.SumBB += net
	s.SumBB2 += net * net
	s.Values = append(s.Values, net)

	if net > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += net
	} else {
		s.NonShowdownBB += net
	}

	if s.Positions == nil {
		s.Positions = make(map[int]PositionStats)
	}
	ps := s.Positions[result.Position]
	ps.Hands++
	ps.SumBB += net
	s.Positions[result.Position] = ps

	if result.FinalPot > s.MaxPot {
		s.MaxPot = result.FinalPot
	}
}

// Merge folds another accumulator into this one. Used to combine results
// from parallel simulation shards.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.BigPots += other.BigPots
	if other.MaxPot > s.MaxPot {
		s.MaxPot = other.MaxPot
	}
	if s.Positions == nil {
		s.Positions = make(map[int]PositionStats)
	}
	for pos, ps := range other.Positions {
		merged := s.Positions[pos]
		merged.Hands += ps.Hands
		merged.SumBB += ps.SumBB
		s.Positions[pos] = merged
	}
}

// Mean returns big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median result
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Validate checks internal consistency of the accumulated buckets
func (s *Statistics) Validate() error {
	if s.Hands != len(s.Values) {
		return fmt.Errorf("hand count %d does not match %d recorded values", s.Hands, len(s.Values))
	}
	total := s.ShowdownBB + s.NonShowdownBB
	if math.Abs(total-s.SumBB) > 1e-6 {
		return fmt.Errorf("bucket totals %.6f do not sum to %.6f", total, s.SumBB)
	}
	return nil
}

// Summary renders a one-paragraph report
func (s *Statistics) Summary() string {
	lo, hi := s.ConfidenceInterval95()
	return fmt.Sprintf(
		"%d hands: %.3f bb/hand (95%% CI %.3f to %.3f, stddev %.3f)\n"+
			"showdown: %d wins %.1fbb, non-showdown: %d wins %.1fbb, largest pot %d chips",
		s.Hands, s.Mean(), lo, hi, s.StdDev(),
		s.ShowdownWins, s.ShowdownBB, s.NonShowdownWins, s.NonShowdownBB, s.MaxPot)
}
