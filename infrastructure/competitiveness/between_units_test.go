package competitiveness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectionCompetitiveness_EvenlyMatchedEverywhere(t *testing.T) {
	rows := []UnitVotes{
		{Unit: "u1", Candidate: "x", Votes: 50},
		{Unit: "u1", Candidate: "y", Votes: 50},
		{Unit: "u2", Candidate: "x", Votes: 50},
		{Unit: "u2", Candidate: "y", Votes: 50},
	}

	index, details := ElectionCompetitiveness(rows)

	// Identical shares in every unit make each candidate maximally
	// antagonized: 0.5 apiece, 1.0 in total.
	require.Len(t, details, 2)
	for _, d := range details {
		assert.InDelta(t, 0.5, d.Antagonism, 1e-9, "candidate %s", d.Candidate)
	}
	assert.InDelta(t, 1.0, index, 1e-9)
}

func TestElectionCompetitiveness_FullyPolarizedUnits(t *testing.T) {
	rows := []UnitVotes{
		{Unit: "u1", Candidate: "x", Votes: 100},
		{Unit: "u2", Candidate: "y", Votes: 100},
	}

	index, details := ElectionCompetitiveness(rows)

	// Each candidate's votes sit entirely in units where the rival has no
	// support at all, so no unit hosts any real competition.
	require.Len(t, details, 2)
	for _, d := range details {
		assert.InDelta(t, 0.0, d.Antagonism, 1e-9, "candidate %s", d.Candidate)
	}
	assert.InDelta(t, 0.0, index, 1e-9)
}

func TestElectionCompetitiveness_DegenerateInputs(t *testing.T) {
	index, details := ElectionCompetitiveness(nil)
	assert.Zero(t, index)
	assert.Empty(t, details)

	index, details = ElectionCompetitiveness([]UnitVotes{
		{Unit: "u1", Candidate: "x", Votes: 10},
	})
	assert.Zero(t, index, "a single candidate has nobody to compete with")
	assert.Empty(t, details)
}

func TestElectionCompetitiveness_DetailsSortedDescending(t *testing.T) {
	rows := []UnitVotes{
		{Unit: "u1", Candidate: "x", Votes: 90},
		{Unit: "u1", Candidate: "y", Votes: 10},
		{Unit: "u2", Candidate: "x", Votes: 50},
		{Unit: "u2", Candidate: "y", Votes: 50},
		{Unit: "u1", Candidate: "z", Votes: 40},
	}

	_, details := ElectionCompetitiveness(rows)

	require.NotEmpty(t, details)
	for i := 1; i < len(details); i++ {
		assert.GreaterOrEqual(t, details[i-1].Antagonism, details[i].Antagonism)
	}
}
