package testutils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ahrav/go-tally/internal/domain"
)

// SaveComparisonsCSV writes comparison records to path as CSV using the
// column names from schema, creating parent directories as needed.
func SaveComparisonsCSV(records []domain.Comparison, schema domain.Schema, path string) error {
	schema = schema.Normalize()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{schema.Winner, schema.Loser, schema.Count, schema.Voter}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Winner,
			r.Loser,
			strconv.FormatFloat(r.Count, 'f', -1, 64),
			r.Voter,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
