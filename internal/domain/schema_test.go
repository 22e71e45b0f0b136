package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_NormalizeFillsDefaults(t *testing.T) {
	normalized := Schema{Winner: "option"}.Normalize()

	assert.Equal(t, "option", normalized.Winner)
	assert.Equal(t, "wins_over", normalized.Loser)
	assert.Equal(t, "count", normalized.Count)
	assert.Equal(t, "voter", normalized.Voter)

	assert.Equal(t, DefaultSchema(), Schema{}.Normalize())
}

func TestDecodeTable(t *testing.T) {
	tests := []struct {
		name    string
		rows    []map[string]any
		schema  Schema
		want    []Comparison
		wantErr string
	}{
		{
			name: "default schema with mixed numeric types",
			rows: []map[string]any{
				{"proposal": "a", "wins_over": "b", "count": 3, "voter": "v1"},
				{"proposal": "b", "wins_over": "a", "count": 1.5},
			},
			want: []Comparison{
				{Winner: "a", Loser: "b", Count: 3, Voter: "v1"},
				{Winner: "b", Loser: "a", Count: 1.5},
			},
		},
		{
			name: "count defaults to 1 when absent",
			rows: []map[string]any{
				{"proposal": "a", "wins_over": "b"},
			},
			want: []Comparison{{Winner: "a", Loser: "b", Count: 1}},
		},
		{
			name:   "custom column names",
			schema: Schema{Winner: "choice", Loser: "rejected"},
			rows: []map[string]any{
				{"choice": "x", "rejected": "y", "count": int64(2)},
			},
			want: []Comparison{{Winner: "x", Loser: "y", Count: 2}},
		},
		{
			name: "missing winner column fails",
			rows: []map[string]any{
				{"wins_over": "b", "count": 1},
			},
			wantErr: `column "proposal" missing or not a string`,
		},
		{
			name: "non-numeric count fails",
			rows: []map[string]any{
				{"proposal": "a", "wins_over": "b", "count": "many"},
			},
			wantErr: "unsupported numeric type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeTable(tt.rows, tt.schema)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTable_PreservesRowOrder(t *testing.T) {
	rows := []map[string]any{
		{"proposal": "b", "wins_over": "a"},
		{"proposal": "a", "wins_over": "b"},
		{"proposal": "b", "wins_over": "a"},
	}

	records, err := DecodeTable(rows, Schema{})
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "b", records[0].Winner)
	assert.Equal(t, "a", records[1].Winner)
	assert.Equal(t, "b", records[2].Winner)
}

func TestRangeError_MatchesSentinel(t *testing.T) {
	err := NewRangeError("alpha", 2.5, "[0, 1.6)")

	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Contains(t, err.Error(), "alpha")
	assert.Contains(t, err.Error(), "[0, 1.6)")
}
