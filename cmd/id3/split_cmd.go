package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*rootCmdConfig
	inputConfig
	setInput         string
	setOutput        string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, for instance to obtain training and testing sets`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			features, err := config.features(&config.inputConfig)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, labels, err := config.readInput(config.setInput, config.classFeature, &config.inputConfig, features)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading input set: %v\n", err)
				os.Exit(3)
			}
			seed := config.seed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			config.Logf("Splitting input set with %d samples using seed %d...", t.Len(), seed)
			kept, split := splitIndices(t.Len(), config.splitProbability, rand.New(rand.NewSource(seed)))
			for _, o := range []struct {
				output  string
				indices []int
			}{{config.setOutput, kept}, {config.splitOutput, split}} {
				st, err := t.Select(o.indices)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				err = config.writeOutput(o.output, &config.inputConfig, st, config.classFeature, selectLabels(labels, o.indices))
				if err != nil {
					fmt.Fprintf(os.Stderr, "writing set: %v\n", err)
					os.Exit(5)
				}
			}
			config.Logf("Done")
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", t.Len(), len(kept), len(split))
		},
	}
	config.bindFlags(cmd)
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the set to split (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to an output CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL connection URL to dump the output set (defaults to STDOUT, as CSV)")
	cmd.Flags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to an output CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL connection URL to dump the split set (required)")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of samples to sets (defaults to the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitOutput == scc.setOutput {
		return fmt.Errorf("the split set must be written to a different output than the output set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return scc.inputConfig.Validate()
}

// splitIndices assigns each index in [0, n) to the split set with the given
// percent probability, and to the kept set otherwise.
func splitIndices(n, probability int, randomizer *rand.Rand) (kept, split []int) {
	for i := 0; i < n; i++ {
		if (100 * randomizer.Float32()) >= float32(probability) {
			kept = append(kept, i)
		} else {
			split = append(split, i)
		}
	}
	return kept, split
}

func selectLabels(labels []string, indices []int) []string {
	result := make([]string, len(indices))
	for i, j := range indices {
		result[i] = labels[j]
	}
	return result
}
