// Package statistics aggregates simulated round results into summary
// measures: mean return, spread, confidence interval, and outcome counts.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult is the outcome of one simulated round for a single seat.
// Monetary amounts are in units of the base bet, so a plain win is +1,
// a natural +1.5 and a doubled loss -2.
type RoundResult struct {
	NetUnits float64
	Seed     int64 // worker seed, for replaying the round

	Hands    int // hand count after splits
	Wins     int
	Losses   int
	Pushes   int
	Naturals int
	Doubles  int
	Splits   int
}

// Statistics accumulates round results. Shards produced by parallel workers
// combine with Merge.
type Statistics struct {
	Rounds int
	Sum    float64
	Sum2   float64  // sum of squares for variance
	Values []float64 // per-round values for median/percentile

	Hands    int
	Wins     int
	Losses   int
	Pushes   int
	Naturals int
	Doubles  int
	Splits   int
}

// Add incorporates one round result.
func (s *Statistics) Add(result RoundResult) {
	net := result.NetUnits
	s.Rounds++
	s.Sum += net
	s.Sum2 += net * net
	s.Values = append(s.Values, net)

	s.Hands += result.Hands
	s.Wins += result.Wins
	s.Losses += result.Losses
	s.Pushes += result.Pushes
	s.Naturals += result.Naturals
	s.Doubles += result.Doubles
	s.Splits += result.Splits
}

// Merge folds another shard into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)

	s.Hands += other.Hands
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Naturals += other.Naturals
	s.Doubles += other.Doubles
	s.Splits += other.Splits
}

// Mean returns the arithmetic mean return in units per round.
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Sum / float64(s.Rounds)
}

// EdgePercent returns the house edge as a percentage of the base bet: the
// negated mean return per round. Positive means the house is winning.
func (s *Statistics) EdgePercent() float64 {
	return -s.Mean() * 100
}

// Variance returns the sample variance of the per-round returns.
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the per-round returns.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-round return.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the interpolated value at the given percentile
// (0.0 to 1.0).
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks internal consistency of the accumulated counts.
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid round count: %d", s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match round count (%d)",
			len(s.Values), s.Rounds)
	}
	if s.Wins+s.Losses+s.Pushes != s.Hands {
		return fmt.Errorf("outcome counts (%d+%d+%d) do not sum to hand count (%d)",
			s.Wins, s.Losses, s.Pushes, s.Hands)
	}
	if s.Hands < s.Rounds {
		return fmt.Errorf("hand count (%d) below round count (%d)", s.Hands, s.Rounds)
	}
	if s.Naturals > s.Wins+s.Pushes {
		return fmt.Errorf("natural count (%d) exceeds wins plus pushes (%d)",
			s.Naturals, s.Wins+s.Pushes)
	}
	return nil
}
