package domain

import "fmt"

// Schema names the columns of a tabular comparison dataset.
// Callers with differently named exports map their columns here; the zero
// value is completed by Normalize with the conventional defaults.
type Schema struct {
	// Winner is the column holding the preferred alternative, default "proposal".
	Winner string
	// Loser is the column holding the alternative preferred against,
	// default "wins_over".
	Loser string
	// Count is the column holding the vote weight, default "count".
	Count string
	// Voter is the column holding the voter identity, default "voter".
	// Only the exact divisiveness mode reads it.
	Voter string
}

// DefaultSchema returns the conventional column naming used by survey
// exports: proposal, wins_over, count, voter.
func DefaultSchema() Schema {
	return Schema{Winner: "proposal", Loser: "wins_over", Count: "count", Voter: "voter"}
}

// Normalize fills empty column names with their defaults.
func (s Schema) Normalize() Schema {
	def := DefaultSchema()
	if s.Winner == "" {
		s.Winner = def.Winner
	}
	if s.Loser == "" {
		s.Loser = def.Loser
	}
	if s.Count == "" {
		s.Count = def.Count
	}
	if s.Voter == "" {
		s.Voter = def.Voter
	}
	return s
}

// DecodeTable converts generic row maps into comparison records using the
// given schema. Winner and loser cells must be strings; the count cell
// accepts numeric types and defaults to 1 when absent; the voter cell is
// optional. Row order is preserved exactly as supplied because
// order-sensitive strategies depend on it.
func DecodeTable(rows []map[string]any, schema Schema) ([]Comparison, error) {
	schema = schema.Normalize()
	records := make([]Comparison, 0, len(rows))
	for i, row := range rows {
		winner, ok := row[schema.Winner].(string)
		if !ok {
			return nil, fmt.Errorf("row %d: column %q missing or not a string", i, schema.Winner)
		}
		loser, ok := row[schema.Loser].(string)
		if !ok {
			return nil, fmt.Errorf("row %d: column %q missing or not a string", i, schema.Loser)
		}

		count := 1.0
		if raw, present := row[schema.Count]; present {
			c, err := toFloat(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %q: %w", i, schema.Count, err)
			}
			count = c
		}

		voter, _ := row[schema.Voter].(string)

		records = append(records, Comparison{
			Winner: winner,
			Loser:  loser,
			Count:  count,
			Voter:  voter,
		})
	}
	return records, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}
