package strategies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tally/internal/domain"
)

func TestCopelandStrategy_Score(t *testing.T) {
	strategy, err := NewCopelandStrategy("copeland")
	require.NoError(t, err)

	table, err := strategy.Score(context.Background(), threeWayRecords())
	require.NoError(t, err)

	want := domain.ScoreTable{
		{Alternative: "a", Value: 2},
		{Alternative: "b", Value: 0},
		{Alternative: "c", Value: -2},
	}
	assert.Equal(t, want, table)
}

func TestCopelandStrategy_ScoresSumToZeroWithoutTies(t *testing.T) {
	strategy, err := NewCopelandStrategy("copeland")
	require.NoError(t, err)

	records := []domain.Comparison{
		{Winner: "a", Loser: "b", Count: 9},
		{Winner: "b", Loser: "a", Count: 4},
		{Winner: "a", Loser: "c", Count: 2},
		{Winner: "c", Loser: "a", Count: 7},
		{Winner: "b", Loser: "c", Count: 5},
		{Winner: "c", Loser: "b", Count: 1},
		{Winner: "d", Loser: "a", Count: 3},
		{Winner: "d", Loser: "b", Count: 3},
		{Winner: "c", Loser: "d", Count: 8},
	}
	table, err := strategy.Score(context.Background(), records)
	require.NoError(t, err)

	var sum float64
	for _, s := range table {
		sum += s.Value
	}
	assert.Zero(t, sum)
}

func TestCopelandStrategy_ExactTiesCountForNeitherSide(t *testing.T) {
	strategy, err := NewCopelandStrategy("copeland")
	require.NoError(t, err)

	records := []domain.Comparison{
		{Winner: "a", Loser: "b", Count: 5},
		{Winner: "b", Loser: "a", Count: 5},
		{Winner: "a", Loser: "c", Count: 3},
		{Winner: "c", Loser: "a", Count: 1},
	}
	table, err := strategy.Score(context.Background(), records)
	require.NoError(t, err)

	// a beats c only; the a-b matchup is an exact tie and the b-c matchup
	// was never observed.
	valueA, _ := table.Lookup("a")
	valueB, _ := table.Lookup("b")
	valueC, _ := table.Lookup("c")
	assert.Equal(t, 1.0, valueA)
	assert.Equal(t, 0.0, valueB)
	assert.Equal(t, -1.0, valueC)
}

func TestCopelandStrategy_DuplicateDirectedEntriesNeverDoubleCount(t *testing.T) {
	strategy, err := NewCopelandStrategy("copeland")
	require.NoError(t, err)

	// Two a-over-b entries summing to 6 against a single b-over-a entry
	// of 7: b must win the matchup.
	records := []domain.Comparison{
		{Winner: "a", Loser: "b", Count: 3},
		{Winner: "a", Loser: "b", Count: 3},
		{Winner: "b", Loser: "a", Count: 7},
	}
	table, err := strategy.Score(context.Background(), records)
	require.NoError(t, err)

	valueB, _ := table.Lookup("b")
	assert.Equal(t, 1.0, valueB)
}
