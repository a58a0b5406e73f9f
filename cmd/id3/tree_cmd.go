package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/feature"
)

type treeCmdConfig struct {
	*rootCmdConfig
	inputConfig
	dataInput string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow a decision tree and print it",
		Long:  `Grow a decision tree from a training set and print it`,
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
			fmt.Print(classifier.Tree())
		},
	}
	config.bindFlags(cmd)
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to grow the tree from (defaults to STDIN, interpreted as CSV)")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	return tcc.inputConfig.Validate()
}

// fit reads a training set from the given input and returns a classifier
// fitted on it.
func (rc *rootCmdConfig) fit(input string, ic *inputConfig, features []feature.Feature) (*id3.Classifier, error) {
	t, labels, err := rc.readInput(input, ic.classFeature, ic, features)
	if err != nil {
		return nil, fmt.Errorf("reading training set: %v", err)
	}
	rc.Logf("Training set with %d samples read", t.Len())
	classifier := id3.New(id3.WithLabel(ic.classFeature), id3.WithLogger(rc.Logger()))
	err = classifier.Fit(t, labels)
	if err != nil {
		return nil, err
	}
	rc.Logf("Tree grown with depth %d", classifier.Tree().Depth())
	return classifier, nil
}
