// Command generate_election_dataset writes a synthetic pairwise comparison
// dataset to CSV for exercising the aggregation strategies and divisiveness
// engine against data with a known faction structure.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/testutils"
)

func main() {
	var (
		voters       = flag.Int("voters", 200, "Number of voters")
		alternatives = flag.Int("alternatives", 5, "Number of alternatives compared")
		factions     = flag.Int("factions", 3, "Number of voter preference factions")
		noise        = flag.Float64("noise", 0.1, "Probability a comparison is flipped against the faction ranking")
		seed         = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
		outputPath   = flag.String("output", "testdata/election_dataset/comparisons.csv", "Output CSV path")
	)
	flag.Parse()

	var electorate *testutils.Electorate
	if *seed == 0 {
		electorate = testutils.GenerateElectorateDefault(*voters, *alternatives, *factions, *noise)
	} else {
		electorate = testutils.GenerateElectorate(testutils.ElectorateSpec{
			Voters:       *voters,
			Alternatives: *alternatives,
			Factions:     *factions,
			Noise:        *noise,
			Seed:         *seed,
		})
	}

	if err := testutils.SaveComparisonsCSV(electorate.Records, domain.DefaultSchema(), *outputPath); err != nil {
		log.Fatalf("Failed to save dataset: %v", err)
	}

	fmt.Printf("Generated election dataset:\n")
	fmt.Printf("- Path: %s\n", *outputPath)
	fmt.Printf("- Comparisons: %d\n", len(electorate.Records))
	fmt.Printf("- Alternatives: %v\n", electorate.Alternatives)
	fmt.Printf("- Factions: %d\n", len(electorate.FactionRankings))
	for i, ranking := range electorate.FactionRankings {
		fmt.Printf("  - Faction %d ranking: %v\n", i, ranking)
	}
	fmt.Printf("\nDataset saved successfully!\n")
}
