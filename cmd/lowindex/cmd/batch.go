package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lowindex"
)

// batchJob is one named presentation in a batch config file.
type batchJob struct {
	Name      string   `mapstructure:"name"`
	Rank      int      `mapstructure:"rank"`
	MaxDegree int      `mapstructure:"max_degree"`
	Short     []string `mapstructure:"short"`
	Long      []string `mapstructure:"long"`
	Threads   int      `mapstructure:"threads"`
}

var batchConfig string

// batchCmd enumerates every presentation listed in a config file.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Enumerate subgroups for every presentation in a config file",
	Long: `Batch reads a YAML (or JSON/TOML) config file with a list of named
presentations and enumerates each in turn:

    jobs:
      - name: klein-four
        rank: 2
        max_degree: 4
        short: ["aa", "bb", "abAB"]
      - name: figure-eight-knot
        rank: 2
        max_degree: 7
        short: ["aabABB"]
        threads: 4`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "lowindex.yaml", "config file with a jobs list")
	batchCmd.Flags().BoolVar(&jsonOutput, "json", false, "print representations as JSON")
}

func runBatch(_ *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetConfigFile(batchConfig)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var jobs []batchJob
	if err := v.UnmarshalKey("jobs", &jobs); err != nil {
		return fmt.Errorf("parsing jobs: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("config %s: no jobs", batchConfig)
	}

	for _, job := range jobs {
		reps, err := lowindex.PermutationRepsWords(
			job.Rank, job.Short, job.Long, job.MaxDegree,
			lowindex.WithNumThreads(job.Threads))
		if err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
		fmt.Printf("== %s (rank %d, index ≤ %d)\n", job.Name, job.Rank, job.MaxDegree)
		if err := printReps(reps); err != nil {
			return err
		}
	}

	return nil
}
