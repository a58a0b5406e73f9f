package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// UnclassifiedValue is written as the class of samples that could not be
// classified.
const UnclassifiedValue = "?"

type classifyCmdConfig struct {
	*rootCmdConfig
	inputConfig
	dataInput     string
	classifyInput string
	output        string
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify samples with a tree",
		Long:  `Grow a tree from a training set and use it to classify the samples of another set, writing them out along with their predicted class`,
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
			t, err := config.samplesToClassify(features)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading samples to classify: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Classifying %d samples...", t.Len())
			classes, err := config.classify(classifier, t)
			if err != nil {
				fmt.Fprintf(os.Stderr, "classifying samples: %v\n", err)
				os.Exit(5)
			}
			err = config.writeOutput(config.output, &config.inputConfig, t, config.classFeature, classes)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing classified samples: %v\n", err)
				os.Exit(6)
			}
			config.Logf("Done")
		},
	}
	config.bindFlags(cmd)
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to grow the tree from (required)")
	cmd.Flags().StringVarP(&(config.classifyInput), "data", "d", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the samples to classify (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to an output CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL connection URL to write the classified samples to (defaults to STDOUT, as CSV)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.dataInput == "" {
		return fmt.Errorf("required input flag was not set")
	}
	return ccc.inputConfig.Validate()
}

// samplesToClassify reads the samples to classify, leaving out their class
// column if they have one.
func (ccc *classifyCmdConfig) samplesToClassify(features []feature.Feature) (*dataset.Table, error) {
	t, _, err := ccc.readInput(ccc.classifyInput, "", &ccc.inputConfig, features)
	if err != nil {
		return nil, err
	}
	if t.HasFeature(ccc.classFeature) {
		ccc.Logf("Ignoring the %s column of the samples to classify", ccc.classFeature)
		t = t.Drop(ccc.classFeature)
	}
	return t, nil
}

// classify returns the class predicted for every row of the table, or
// UnclassifiedValue for the rows that could not be classified.
func (ccc *classifyCmdConfig) classify(classifier *id3.Classifier, t *dataset.Table) ([]string, error) {
	classes, err := classifier.Predict(t)
	if classes == nil {
		return nil, err
	}
	for _, e := range multierr.Errors(err) {
		ccc.Warnf("%v", e)
	}
	for i, c := range classes {
		if c == "" {
			classes[i] = UnclassifiedValue
		}
	}
	return classes, nil
}
