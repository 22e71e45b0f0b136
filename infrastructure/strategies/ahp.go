package strategies

import (
	"context"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

var _ ports.Strategy = (*AHPStrategy)(nil)

// randomIndex holds Saaty's Random Index constants for reciprocal matrices
// of size 1 through 10. Sizes above 10 are clamped to the size-10 value.
var randomIndex = [...]float64{0, 0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49}

// AHPStrategy implements the Analytic Hierarchy Process: it builds a
// reciprocal pairwise-comparison matrix from vote ratios and extracts the
// principal eigenvector via the power method as priority weights.
// The returned scores are normalized to sum to 1.
//
// If the power method does not reach the configured tolerance within
// MaxIterations, the last computed (unconverged) vector is still returned.
// This is a soft failure; callers analyzing ill-conditioned inputs should
// treat the result as approximate.
//
// Reference: Saaty, T. L. (1980). The Analytic Hierarchy Process.
type AHPStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
	// config contains validated parameters, immutable after creation.
	config AHPConfig
}

// AHPConfig defines the power-method parameters.
type AHPConfig struct {
	// MaxIterations bounds the power-method iteration count. Default: 100.
	MaxIterations int `yaml:"max_iterations" json:"max_iterations" validate:"min=1"`

	// Tolerance is the maximum coordinate-wise change between iterations
	// below which the method stops early. Default: 1e-6.
	Tolerance float64 `yaml:"tolerance" json:"tolerance" validate:"gt=0"`
}

// DefaultAHPConfig returns the conventional power-method parameters:
// 100 iterations, 1e-6 tolerance.
func DefaultAHPConfig() AHPConfig {
	return AHPConfig{MaxIterations: 100, Tolerance: 1e-6}
}

// NewAHPStrategy creates an AHP strategy with the given name and
// validated configuration.
func NewAHPStrategy(name string, config AHPConfig) (*AHPStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &AHPStrategy{name: name, config: config}, nil
}

// Name returns the unique identifier for this strategy instance.
func (a *AHPStrategy) Name() string { return a.name }

// Score builds the reciprocal comparison matrix and runs the power method
// from a uniform weight vector. The result sums to 1; for fully symmetric
// input (all pairwise counts equal) every alternative receives an equal
// share. Fewer than 2 alternatives yields a degenerate zero table.
func (a *AHPStrategy) Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error) {
	alternatives := domain.Alternatives(records)
	n := len(alternatives)
	if n < 2 {
		return zeroTable(alternatives), nil
	}

	matrix := buildComparisonMatrix(domain.BuildPairTable(records), alternatives)
	weights, _ := a.powerMethod(matrix)

	table := make(domain.ScoreTable, 0, n)
	for i, alt := range alternatives {
		table = append(table, domain.Score{Alternative: alt, Value: weights[i]})
	}
	table.Sort()
	return table, nil
}

// ConsistencyRatio computes Saaty's consistency diagnostic for the
// comparison matrix implied by the records. It returns the Consistency
// Index (λmax − n)/(n − 1) and the Consistency Ratio CI/RI, where RI is
// the Random Index for the matrix size (clamped to the size-10 constant
// above 10).
//
// The diagnostic is advisory output; it never alters the scores. A ratio
// above 0.1 conventionally indicates inconsistent judgments. Matrices of
// size 2 or smaller are defined to have zero inconsistency.
func (a *AHPStrategy) ConsistencyRatio(ctx context.Context, records []domain.Comparison) (ci, cr float64, err error) {
	alternatives := domain.Alternatives(records)
	n := len(alternatives)
	if n <= 2 {
		return 0, 0, nil
	}

	matrix := buildComparisonMatrix(domain.BuildPairTable(records), alternatives)
	_, lambdaMax := a.powerMethod(matrix)

	ci = (lambdaMax - float64(n)) / (float64(n) - 1)

	riIdx := n
	if riIdx > 10 {
		riIdx = 10
	}
	ri := randomIndex[riIdx]
	if ri > 0 {
		cr = ci / ri
	}
	return ci, cr, nil
}

// buildComparisonMatrix constructs the reciprocal comparison matrix for
// the given pair table, indexed by the fixed alternative ordering.
// Cells are seeded at 1, observed counts are added, then each upper
// triangle cell becomes the ratio of the two directions (falling back to
// the raw numerator when the reverse direction holds no weight) with the
// lower triangle set to its reciprocal. The diagonal is forced to 1,
// preserving M[i][j] == 1/M[j][i] throughout.
func buildComparisonMatrix(pairs domain.PairTable, alternatives []string) [][]float64 {
	n := len(alternatives)
	index := make(map[string]int, n)
	for i, alt := range alternatives {
		index[alt] = i
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			matrix[i][j] = 1
		}
	}
	for pair, count := range pairs {
		matrix[index[pair.Winner]][index[pair.Loser]] += count
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ratio := matrix[i][j]
			if matrix[j][i] > 0 {
				ratio = matrix[i][j] / matrix[j][i]
			}
			matrix[i][j] = ratio
			matrix[j][i] = 1 / ratio
		}
	}
	for i := 0; i < n; i++ {
		matrix[i][i] = 1
	}
	return matrix
}

// powerMethod approximates the principal eigenvector of the matrix by
// repeated multiplication and renormalization, starting from a uniform
// vector. It stops early once the maximum coordinate-wise change falls
// below the configured tolerance, or after MaxIterations regardless.
//
// The second return value is the dominant eigenvalue estimate: with the
// weight vector normalized to sum 1, the sum of the matrix-vector product
// equals λmax at the fixed point (Perron-Frobenius guarantees a real
// dominant eigenvalue for this positive matrix).
func (a *AHPStrategy) powerMethod(matrix [][]float64) (weights []float64, lambdaMax float64) {
	n := len(matrix)
	weights = make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < a.config.MaxIterations; iter++ {
		var total float64
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				sum += matrix[i][j] * weights[j]
			}
			next[i] = sum
			total += sum
		}
		lambdaMax = total

		var maxDelta float64
		for i := 0; i < n; i++ {
			next[i] /= total
			if delta := math.Abs(next[i] - weights[i]); delta > maxDelta {
				maxDelta = delta
			}
		}
		weights, next = next, weights

		if maxDelta < a.config.Tolerance {
			break
		}
	}
	return weights, lambdaMax
}

// Validate checks the strategy's configuration against its constraints.
func (a *AHPStrategy) Validate() error {
	if a.name == "" {
		return ErrEmptyStrategyName
	}
	if err := validate.Struct(a.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters deserializes YAML parameters and replaces the
// strategy's configuration after validation.
// Not safe for concurrent use with Score.
func (a *AHPStrategy) UnmarshalParameters(params yaml.Node) error {
	config := DefaultAHPConfig()
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	a.config = config
	return nil
}

// NewAHPFromConfig creates an AHPStrategy from a configuration map.
// Defaults are applied first, then overlaid with the caller's values.
func NewAHPFromConfig(id string, config map[string]any) (ports.Strategy, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	cfg := DefaultAHPConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return NewAHPStrategy(id, cfg)
}
