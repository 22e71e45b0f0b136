package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuota(t *testing.T) {
	tests := []struct {
		name   string
		method QuotaMethod
		want   float64
	}{
		{name: "hare", method: QuotaHare, want: 10000},
		{name: "droop", method: QuotaDroop, want: 9091},
		{name: "imperiali", method: QuotaImperiali, want: 100000.0 / 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quota, err := Quota(tt.method, 100000, 10)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, quota, 1e-9)
		})
	}
}

func TestQuota_UnknownMethodFailsFast(t *testing.T) {
	_, err := Quota("hagenbach", 1000, 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"hagenbach"`)
	assert.Contains(t, err.Error(), "hare")
	assert.Contains(t, err.Error(), "droop")
	assert.Contains(t, err.Error(), "imperiali")
}

func TestQuota_SeatValidation(t *testing.T) {
	_, err := Quota(QuotaHare, 1000, 0)
	assert.Error(t, err)
}

func TestLargestRemainder_TextbookHareExample(t *testing.T) {
	parties := []PartyVotes{
		{Party: "a", Votes: 47000},
		{Party: "b", Votes: 16000},
		{Party: "c", Votes: 15800},
		{Party: "d", Votes: 12000},
		{Party: "e", Votes: 6100},
		{Party: "f", Votes: 3100},
	}

	shares, err := LargestRemainder(parties, 10, QuotaHare)
	require.NoError(t, err)

	want := []SeatShare{
		{Party: "a", Seats: 5},
		{Party: "b", Seats: 2},
		{Party: "c", Seats: 1},
		{Party: "d", Seats: 1},
		{Party: "e", Seats: 1},
		{Party: "f", Seats: 0},
	}
	assert.Equal(t, want, shares)
}

func TestLargestRemainder_SeatsAddUp(t *testing.T) {
	parties := []PartyVotes{
		{Party: "a", Votes: 53000},
		{Party: "b", Votes: 24000},
		{Party: "c", Votes: 23000},
	}

	for _, method := range []QuotaMethod{QuotaHare, QuotaDroop} {
		t.Run(string(method), func(t *testing.T) {
			shares, err := LargestRemainder(parties, 7, method)
			require.NoError(t, err)

			var total int
			for _, s := range shares {
				total += s.Seats
			}
			assert.Equal(t, 7, total)
		})
	}
}

func TestLargestRemainder_Validation(t *testing.T) {
	parties := []PartyVotes{{Party: "a", Votes: 10}}

	_, err := LargestRemainder(parties, 0, QuotaHare)
	assert.Error(t, err)

	_, err = LargestRemainder(parties, 3, "hagenbach")
	assert.Error(t, err)

	_, err = LargestRemainder([]PartyVotes{{Party: "a", Votes: 0}}, 3, QuotaHare)
	assert.Error(t, err, "a zero vote total cannot produce a positive quota")
}
