package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lowindex"
)

var (
	// Enumerate command flags.
	rank        int
	maxDegree   int
	shortWords  []string
	longWords   []string
	numThreads  int
	noSpinShort bool
	jsonOutput  bool
)

// enumerateCmd enumerates the subgroups of one presentation.
var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Enumerate subgroups of one group presentation",
	Example: `  # Conjugacy classes of subgroups of index ≤ 6 in ⟨a,b | a³, b³, (ab)³⟩
  lowindex enumerate --rank 2 --max-degree 6 --short aaa --short bbb --short ababab

  # Fundamental group relator as a long relator, JSON output
  lowindex enumerate --rank 2 --max-degree 7 --long aabbbabbbb --json`,
	RunE: runEnumerate,
}

func init() {
	rootCmd.AddCommand(enumerateCmd)

	enumerateCmd.Flags().IntVarP(&rank, "rank", "r", 0, "number of generators (required)")
	enumerateCmd.Flags().IntVarP(&maxDegree, "max-degree", "d", 0, "maximum subgroup index (required)")
	enumerateCmd.Flags().StringArrayVarP(&shortWords, "short", "s", nil, "short relator word (repeatable)")
	enumerateCmd.Flags().StringArrayVarP(&longWords, "long", "l", nil, "long relator word (repeatable)")
	enumerateCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "worker count (0 = one per CPU, 1 = single-threaded)")
	enumerateCmd.Flags().BoolVar(&noSpinShort, "no-spin-short", false, "do not expand short relators by cyclic shifts")
	enumerateCmd.Flags().BoolVar(&jsonOutput, "json", false, "print representations as JSON")

	_ = enumerateCmd.MarkFlagRequired("rank")
	_ = enumerateCmd.MarkFlagRequired("max-degree")
}

func runEnumerate(_ *cobra.Command, _ []string) error {
	opts := []lowindex.Option{lowindex.WithNumThreads(numThreads)}
	if noSpinShort {
		opts = append(opts, lowindex.WithStrategy(lowindex.StrategyNone))
	}

	reps, err := lowindex.PermutationRepsWords(rank, shortWords, longWords, maxDegree, opts...)
	if err != nil {
		return err
	}

	return printReps(reps)
}

// printReps writes representations to stdout, one block per conjugacy
// class, or a single JSON document with --json.
func printReps(reps []lowindex.PermRep) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(reps)
	}

	for i, rep := range reps {
		degree := 0
		if len(rep) > 0 {
			degree = len(rep[0])
		}
		fmt.Printf("#%d: index %d\n", i+1, degree)
		for k, perm := range rep {
			fmt.Printf("  x%-2d -> %v\n", k+1, perm)
		}
	}
	fmt.Printf("%d conjugacy class(es)\n", len(reps))

	return nil
}
