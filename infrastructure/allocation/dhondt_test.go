package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourPartyDistrict() []PartyVotes {
	return []PartyVotes{
		{Party: "a", Votes: 100000},
		{Party: "b", Votes: 80000},
		{Party: "c", Votes: 30000},
		{Party: "d", Votes: 20000},
	}
}

func TestDHondt_TextbookDistrict(t *testing.T) {
	shares, err := DHondt(fourPartyDistrict(), 8)
	require.NoError(t, err)

	want := []SeatShare{
		{Party: "a", Seats: 4},
		{Party: "b", Seats: 3},
		{Party: "c", Seats: 1},
	}
	assert.Equal(t, want, shares, "seatless parties are omitted from the summary")
}

func TestDHondt_InputValidation(t *testing.T) {
	_, err := DHondt(fourPartyDistrict(), 0)
	assert.Error(t, err)

	shares, err := DHondt(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestDHondt_SeatsAddUp(t *testing.T) {
	tests := []struct {
		name  string
		seats int
	}{
		{name: "one seat", seats: 1},
		{name: "five seats", seats: 5},
		{name: "twelve seats", seats: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := DHondt(fourPartyDistrict(), tt.seats)
			require.NoError(t, err)

			var total int
			for _, s := range shares {
				total += s.Seats
			}
			assert.Equal(t, tt.seats, total)
		})
	}
}

func TestWinningQuota(t *testing.T) {
	quota, err := WinningQuota(fourPartyDistrict(), 8)
	require.NoError(t, err)
	assert.Equal(t, 25000.0, quota, "the 8th highest quotient is a/4")

	_, err = WinningQuota(nil, 5)
	assert.Error(t, err, "not enough quotients to fill the seats")
}

func TestSeatsByParty_IncludesSeatlessParties(t *testing.T) {
	byParty, err := SeatsByParty(fourPartyDistrict(), 8)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"a": 4, "b": 3, "c": 1, "d": 0}, byParty)
}
