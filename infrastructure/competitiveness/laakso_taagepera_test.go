package competitiveness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tally/internal/domain"
)

func TestLaaksoTaagepera(t *testing.T) {
	tests := []struct {
		name   string
		shares []float64
		alpha  float64
		want   float64
	}{
		{
			name:   "four equal parties count as four",
			shares: []float64{0.25, 0.25, 0.25, 0.25},
			alpha:  2,
			want:   4,
		},
		{
			name:   "two equal parties count as two",
			shares: []float64{0.5, 0.5},
			alpha:  2,
			want:   2,
		},
		{
			name:   "dominant party shrinks the effective count",
			shares: []float64{0.7, 0.1, 0.1, 0.1},
			alpha:  2,
			want:   1 / (0.49 + 0.01 + 0.01 + 0.01),
		},
		{
			name:   "empty shares yield zero",
			shares: nil,
			alpha:  2,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LaaksoTaagepera(tt.shares, tt.alpha)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLaaksoTaagepera_AlphaDomain(t *testing.T) {
	for _, alpha := range []float64{0, -1, 1} {
		_, err := LaaksoTaagepera([]float64{0.5, 0.5}, alpha)
		require.Error(t, err, "alpha=%v", alpha)
		assert.ErrorIs(t, err, domain.ErrOutOfRange)
	}
}
