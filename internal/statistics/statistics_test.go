package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanAndVariance(t *testing.T) {
	s := &Statistics{}
	for _, v := range []float64{2, -1, 3, -2, 2} {
		s.Add(HandResult{NetBB: v})
	}

	assert.InDelta(t, 0.8, s.Mean(), 1e-9)
	assert.InDelta(t, 4.7, s.Variance(), 1e-9)
	assert.Equal(t, 5, s.Hands)
	require.NoError(t, s.Validate())
}

func TestShowdownBuckets(t *testing.T) {
	s := &Statistics{}
	s.Add(HandResult{NetBB: 5, WentToShowdown: true})
	s.Add(HandResult{NetBB: 1.5})
	s.Add(HandResult{NetBB: -3, WentToShowdown: true})

	assert.Equal(t, 1, s.ShowdownWins)
	assert.Equal(t, 1, s.NonShowdownWins)
	assert.InDelta(t, 2.0, s.ShowdownBB, 1e-9)
	assert.InDelta(t, 1.5, s.NonShowdownBB, 1e-9)
	require.NoError(t, s.Validate())
}

func TestMedian(t *testing.T) {
	s := &Statistics{}
	for _, v := range []float64{5, -1, 2} {
		s.Add(HandResult{NetBB: v})
	}
	assert.InDelta(t, 2.0, s.Median(), 1e-9)

	s.Add(HandResult{NetBB: 3})
	assert.InDelta(t, 2.5, s.Median(), 1e-9)
}

func TestMergeMatchesSequentialAdds(t *testing.T) {
	results := []HandResult{
		{NetBB: 2, Position: 0, WentToShowdown: true, FinalPot: 120},
		{NetBB: -1, Position: 1},
		{NetBB: 4, Position: 0, FinalPot: 300},
		{NetBB: -2, Position: 2, WentToShowdown: true},
	}

	sequential := &Statistics{}
	for _, r := range results {
		sequential.Add(r)
	}

	a, b := &Statistics{}, &Statistics{}
	a.Add(results[0])
	a.Add(results[1])
	b.Add(results[2])
	b.Add(results[3])
	a.Merge(b)

	assert.Equal(t, sequential.Hands, a.Hands)
	assert.InDelta(t, sequential.Mean(), a.Mean(), 1e-9)
	assert.InDelta(t, sequential.Variance(), a.Variance(), 1e-9)
	assert.Equal(t, sequential.MaxPot, a.MaxPot)
	assert.Equal(t, sequential.Positions[0], a.Positions[0])
	require.NoError(t, a.Validate())
}

func TestConfidenceIntervalBracketsMean(t *testing.T) {
	s := &Statistics{}
	for i := 0; i < 100; i++ {
		v := float64(i%5) - 2
		s.Add(HandResult{NetBB: v})
	}

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
}

func TestValidateCatchesCorruption(t *testing.T) {
	s := &Statistics{}
	s.Add(HandResult{NetBB: 1})
	s.ShowdownBB = 99

	assert.Error(t, s.Validate())
}
