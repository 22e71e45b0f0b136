package competitiveness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tally/infrastructure/allocation"
)

func TestBlaisLago_SMP(t *testing.T) {
	parties := []allocation.PartyVotes{
		{Party: "a", Votes: 5000},
		{Party: "b", Votes: 4000},
		{Party: "c", Votes: 1000},
	}

	index, details, err := BlaisLago(parties, 1, SystemSMP)
	require.NoError(t, err)

	// Distances to the plurality winner are 0, 1000, 4000, each divided
	// by votes-per-seat 10000.
	require.Len(t, details, 3)
	byParty := make(map[string]float64, len(details))
	for _, d := range details {
		byParty[d.Party] = d.Value
	}
	assert.InDelta(t, 0.0, byParty["a"], 1e-9)
	assert.InDelta(t, 0.1, byParty["b"], 1e-9)
	assert.InDelta(t, 0.4, byParty["c"], 1e-9)
	assert.InDelta(t, 0.5, index, 1e-9)

	// Details arrive sorted descending by value.
	assert.Equal(t, "c", details[0].Party)
	assert.Equal(t, "a", details[2].Party)
}

func TestBlaisLago_DHondtAndHareRun(t *testing.T) {
	parties := []allocation.PartyVotes{
		{Party: "a", Votes: 100000},
		{Party: "b", Votes: 80000},
		{Party: "c", Votes: 30000},
		{Party: "d", Votes: 20000},
	}

	for _, system := range []ElectoralSystem{SystemDHondt, SystemHare} {
		t.Run(string(system), func(t *testing.T) {
			_, details, err := BlaisLago(parties, 8, system)
			require.NoError(t, err)
			assert.NotEmpty(t, details)
		})
	}
}

func TestBlaisLago_UnknownSystemFailsFast(t *testing.T) {
	parties := []allocation.PartyVotes{{Party: "a", Votes: 10}}

	_, _, err := BlaisLago(parties, 1, "sainte-lague")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"sainte-lague"`)
	assert.Contains(t, err.Error(), "dhondt")
	assert.Contains(t, err.Error(), "hare")
	assert.Contains(t, err.Error(), "smp")
}

func TestBlaisLago_Validation(t *testing.T) {
	parties := []allocation.PartyVotes{{Party: "a", Votes: 10}}

	_, _, err := BlaisLago(parties, 0, SystemSMP)
	assert.Error(t, err)

	index, details, err := BlaisLago(nil, 3, SystemSMP)
	require.NoError(t, err)
	assert.Zero(t, index)
	assert.Empty(t, details)
}
