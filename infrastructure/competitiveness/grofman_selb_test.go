package competitiveness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tally/infrastructure/allocation"
)

func TestGrofmanSelb_TwoPartyDistrict(t *testing.T) {
	parties := []allocation.PartyVotes{
		{Party: "a", Votes: 0.6},
		{Party: "b", Votes: 0.4},
	}

	index, details, err := GrofmanSelb(parties, 2)
	require.NoError(t, err)

	// With 2 seats each party holds one; both sit 1/15 of the electorate
	// away from a seat change, so each scores 0.8 against the threshold
	// of exclusion 1/3, and the index is the vote-weighted sum 0.8.
	require.Len(t, details, 2)
	for _, d := range details {
		assert.InDelta(t, 0.8, d.Competition, 1e-9, "party %s", d.Party)
	}
	assert.InDelta(t, 0.8, index, 1e-9)
}

func TestGrofmanSelb_GainAndLossMargins(t *testing.T) {
	parties := []allocation.PartyVotes{
		{Party: "a", Votes: 0.6},
		{Party: "b", Votes: 0.4},
	}

	_, details, err := GrofmanSelb(parties, 2)
	require.NoError(t, err)

	byParty := make(map[string]PartyCompetitionDetail, len(details))
	for _, d := range details {
		byParty[d.Party] = d
	}

	// a needs 1/15 more of the vote for a second seat and is 4/15 away
	// from losing its seat to b.
	assert.InDelta(t, 1.0/15.0, byParty["a"].Gain, 1e-9)
	assert.InDelta(t, 4.0/15.0, byParty["a"].Loss, 1e-9)
	assert.InDelta(t, 4.0/15.0, byParty["b"].Gain, 1e-9)
	assert.InDelta(t, 1.0/15.0, byParty["b"].Loss, 1e-9)
}

func TestGrofmanSelb_Validation(t *testing.T) {
	_, _, err := GrofmanSelb([]allocation.PartyVotes{{Party: "a", Votes: 1}}, 0)
	assert.Error(t, err)

	index, details, err := GrofmanSelb(nil, 3)
	require.NoError(t, err)
	assert.Zero(t, index)
	assert.Empty(t, details)
}

func TestGrofmanSelb_OnlyWinnersAppearInDetails(t *testing.T) {
	parties := []allocation.PartyVotes{
		{Party: "a", Votes: 0.7},
		{Party: "b", Votes: 0.25},
		{Party: "c", Votes: 0.05},
	}

	_, details, err := GrofmanSelb(parties, 3)
	require.NoError(t, err)

	for _, d := range details {
		assert.NotEqual(t, "c", d.Party, "seatless parties carry no competition score")
	}
}
