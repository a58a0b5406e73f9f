package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	inputConfig
	setInput  string
	setOutput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy a set to another storage",
		Long:  `Read a set from an input and write it to an output, for instance to load a CSV file into an SQLite3 or PostgreSQL database`,
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
			config.Logf("Writing set with %d samples...", t.Len())
			err = config.writeOutput(config.setOutput, &config.inputConfig, t, config.classFeature, labels)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
		},
	}
	config.bindFlags(cmd)
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the set to copy (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to an output CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL connection URL to write the set to (defaults to STDOUT, as CSV)")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.setInput != "" && scc.setInput == scc.setOutput {
		return fmt.Errorf("the set must be written to a different output than its input")
	}
	return scc.inputConfig.Validate()
}
