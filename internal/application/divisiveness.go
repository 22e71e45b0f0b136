package application

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

// DivisivenessEngine measures how differently voter subpopulations
// evaluate each alternative. For every alternative X and rival Y, it
// splits the electorate into the faction that preferred X over Y and the
// faction that preferred Y over X, re-runs the configured aggregation
// strategy on each faction's data, and accumulates the squared score
// divergence:
//
//	D(X) = sqrt(Σ_{Y≠X} (S_X(X>Y voters) − S_X(Y>X voters))²) / (N − 1)
//
// structurally analogous to a standard deviation of X's perceived standing
// across the electorate's factions.
//
// Two modes are provided. Exact requires voter identity on every record
// and partitions the electorate precisely. Approximate works from
// aggregated pair counts alone, reconstructing the partition with weighted
// sub-tables; it trades exactness for applicability and its results must
// not be presented as equivalent to the exact mode.
//
// The (X, Y) subproblems are independent; the engine fans them out across
// a bounded number of goroutines. Results are combined only by summation
// and averaging, so scheduling order never affects the output.
type DivisivenessEngine struct {
	// strategy is the aggregation strategy applied to each faction.
	strategy ports.Strategy
	// parallelism bounds concurrent per-alternative computations.
	parallelism int
}

// NewDivisivenessEngine creates an engine around the given strategy.
// parallelism bounds the concurrent per-alternative computations; values
// below 1 default to runtime.NumCPU().
func NewDivisivenessEngine(strategy ports.Strategy, parallelism int) (*DivisivenessEngine, error) {
	if strategy == nil {
		return nil, fmt.Errorf("strategy cannot be nil")
	}
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	return &DivisivenessEngine{strategy: strategy, parallelism: parallelism}, nil
}

// Exact computes divisiveness with precise voter-level partitions.
// Every record must carry a voter identity; records missing one fail fast
// with ErrMissingVoter before any computation begins.
//
// For each rival pair the two factions are the sets of voters who
// expressed X-over-Y and Y-over-X anywhere in the dataset. A rival pair
// contributes zero difference unless both factions are non-empty: where
// nobody dissents there is no faction to diverge from, so a fully
// unanimous electorate yields exactly zero divisiveness everywhere.
//
// Returns the mean divisiveness across the universe and the per-alternative
// table sorted descending. Fewer than 2 alternatives yields (0, zero table).
func (e *DivisivenessEngine) Exact(ctx context.Context, records []domain.Comparison) (float64, domain.DivisivenessTable, error) {
	alternatives := domain.Alternatives(records)
	n := len(alternatives)
	if n < 2 {
		return 0, zeroDivisiveness(alternatives), nil
	}

	for i, r := range records {
		if r.Voter == "" {
			return 0, nil, fmt.Errorf("record %d (%s over %s): %w", i, r.Winner, r.Loser, domain.ErrMissingVoter)
		}
	}

	// Voters who expressed each directed preference anywhere in the data.
	factions := make(map[domain.Pair]map[string]struct{})
	for _, r := range records {
		key := domain.Pair{Winner: r.Winner, Loser: r.Loser}
		if factions[key] == nil {
			factions[key] = make(map[string]struct{})
		}
		factions[key][r.Voter] = struct{}{}
	}

	values := make([]float64, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for i, alt := range alternatives {
		i, alt := i, alt
		g.Go(func() error {
			var squaredSum float64
			for _, rival := range alternatives {
				if rival == alt {
					continue
				}
				forAlt := factions[domain.Pair{Winner: alt, Loser: rival}]
				forRival := factions[domain.Pair{Winner: rival, Loser: alt}]
				if len(forAlt) == 0 || len(forRival) == 0 {
					continue
				}

				scoreFor, err := e.scoreAmong(gctx, records, forAlt, alt)
				if err != nil {
					return err
				}
				scoreAgainst, err := e.scoreAmong(gctx, records, forRival, alt)
				if err != nil {
					return err
				}

				diff := scoreFor - scoreAgainst
				squaredSum += diff * diff
			}
			values[i] = math.Sqrt(squaredSum) / float64(n-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	return assembleDivisiveness(alternatives, values)
}

// scoreAmong restricts the records to the given voter set, re-aggregates
// them into a canonical pair table, runs the strategy, and extracts the
// score of the given alternative. An alternative absent from the faction's
// universe scores 0.
func (e *DivisivenessEngine) scoreAmong(
	ctx context.Context,
	records []domain.Comparison,
	voters map[string]struct{},
	alternative string,
) (float64, error) {
	subset := make([]domain.Comparison, 0, len(records))
	for _, r := range records {
		if _, ok := voters[r.Voter]; ok {
			subset = append(subset, r)
		}
	}

	scores, err := e.strategy.Score(ctx, domain.BuildPairTable(subset).Records())
	if err != nil {
		return 0, fmt.Errorf("strategy %s on voter subset: %w", e.strategy.Name(), err)
	}
	value, _ := scores.Lookup(alternative)
	return value, nil
}

// Approximate computes divisiveness from aggregated pair counts alone,
// for datasets where voter identity was never recorded.
//
// For each rival pair (X, Y) with positive total directional votes, two
// synthetic weighted sub-tables stand in for the factions:
//
//   - the prefers-X subset keeps every aggregated row except the single
//     Y-over-X row, and
//   - the prefers-Y subset keeps every row except the X-over-Y row.
//
// The strategy runs on each sub-table and X's score on each side is
// min-max normalized to [0, 1] using the GLOBAL score table's observed
// bounds, so strategies with different natural output scales (unbounded
// Elo ratings, 0-1 win rates) stay comparable before differencing.
//
// The result is an approximation of the exact mode, not a substitute for
// it. The global-range normalization of subpopulation scores is a
// heuristic carried from the method's source, validated empirically
// against the exact mode rather than derived.
func (e *DivisivenessEngine) Approximate(ctx context.Context, records []domain.Comparison) (float64, domain.DivisivenessTable, error) {
	pairs := domain.BuildPairTable(records)
	alternatives := pairs.Alternatives()
	n := len(alternatives)
	if n < 2 {
		return 0, zeroDivisiveness(alternatives), nil
	}

	global, err := e.strategy.Score(ctx, pairs.Records())
	if err != nil {
		return 0, nil, fmt.Errorf("strategy %s on full table: %w", e.strategy.Name(), err)
	}
	lo, hi := global.Bounds()
	scoreRange := hi - lo
	if scoreRange == 0 {
		scoreRange = 1
	}

	values := make([]float64, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for i, alt := range alternatives {
		i, alt := i, alt
		g.Go(func() error {
			var squaredSum float64
			for _, rival := range alternatives {
				if rival == alt {
					continue
				}
				if pairs.Votes(alt, rival)+pairs.Votes(rival, alt) <= 0 {
					continue
				}

				scoreFor, err := e.normalizedSubsetScore(gctx, prefersSubset(pairs, alt, rival), alt, lo, scoreRange)
				if err != nil {
					return err
				}
				scoreAgainst, err := e.normalizedSubsetScore(gctx, prefersSubset(pairs, rival, alt), alt, lo, scoreRange)
				if err != nil {
					return err
				}

				diff := scoreFor - scoreAgainst
				squaredSum += diff * diff
			}
			values[i] = math.Sqrt(squaredSum) / float64(n-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	return assembleDivisiveness(alternatives, values)
}

// prefersSubset derives the weighted sub-table representing the
// population that prefers one alternative over another: every aggregated
// row is retained except the single row recording the opposite direction.
func prefersSubset(pairs domain.PairTable, preferred, over string) domain.PairTable {
	excluded := domain.Pair{Winner: over, Loser: preferred}
	subset := make(domain.PairTable, len(pairs))
	for pair, count := range pairs {
		if pair == excluded {
			continue
		}
		subset[pair] = count
	}
	return subset
}

// normalizedSubsetScore runs the strategy on the sub-table and rescales
// the alternative's score by the global bounds. An empty sub-table or an
// alternative missing from it scores 0.
func (e *DivisivenessEngine) normalizedSubsetScore(
	ctx context.Context,
	subset domain.PairTable,
	alternative string,
	globalMin, globalRange float64,
) (float64, error) {
	if len(subset) == 0 {
		return 0, nil
	}
	scores, err := e.strategy.Score(ctx, subset.Records())
	if err != nil {
		return 0, fmt.Errorf("strategy %s on derived subset: %w", e.strategy.Name(), err)
	}
	value, ok := scores.Lookup(alternative)
	if !ok {
		return 0, nil
	}
	return (value - globalMin) / globalRange, nil
}

// assembleDivisiveness pairs alternatives with their computed values,
// sorts descending, and reports the population mean.
func assembleDivisiveness(alternatives []string, values []float64) (float64, domain.DivisivenessTable, error) {
	table := make(domain.DivisivenessTable, 0, len(alternatives))
	for i, alt := range alternatives {
		table = append(table, domain.Divisiveness{Alternative: alt, Value: values[i]})
	}
	table.Sort()
	return table.Mean(), table, nil
}

// zeroDivisiveness builds the degenerate table returned for universes
// with fewer than 2 alternatives.
func zeroDivisiveness(alternatives []string) domain.DivisivenessTable {
	table := make(domain.DivisivenessTable, 0, len(alternatives))
	for _, alt := range alternatives {
		table = append(table, domain.Divisiveness{Alternative: alt})
	}
	return table
}
