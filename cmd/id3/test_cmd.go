package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pbanos/id3/dataset"
)

type testCmdConfig struct {
	*rootCmdConfig
	inputConfig
	dataInput    string
	testingInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training set and test its performance against a testing set`,
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
			classifier, err := config.fit(config.dataInput, &config.inputConfig, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			t, labels, err := config.readInput(config.testingInput, config.classFeature, &config.inputConfig, features)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(4)
			}
			testingSet, err := dataset.New(t, labels)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Testing tree against testing set with %d samples...", testingSet.Count())
			successRate, errorCount, err := classifier.Tree().Test(testingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			fmt.Printf("%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
		},
	}
	config.bindFlags(cmd)
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to grow the tree from (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.testingInput), "testing-set", "t", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree against (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testingInput == "" {
		return fmt.Errorf("required testing-set flag was not set")
	}
	if tcc.testingInput == tcc.dataInput {
		return fmt.Errorf("the testing set must be read from a different input than the training set")
	}
	return tcc.inputConfig.Validate()
}
