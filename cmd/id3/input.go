package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/mongotable"
	"github.com/pbanos/id3/dataset/sqltable"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
)

type inputConfig struct {
	metadataInput string
	classFeature  string
	query         string
	collection    string
	outputTable   string
	maxDBConns    int
}

func (ic *inputConfig) bindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(ic.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features and their valid values (required for MongoDB inputs)")
	cmd.PersistentFlags().StringVarP(&(ic.classFeature), "class-feature", "c", "", "name of the column holding the class to predict (required)")
	cmd.PersistentFlags().StringVar(&(ic.query), "query", "", "SQL query to obtain samples from SQLite3 or PostgreSQL inputs (defaults to every row in the samples table)")
	cmd.PersistentFlags().StringVar(&(ic.collection), "collection", "", "collection to read samples from on MongoDB inputs (defaults to samples)")
	cmd.PersistentFlags().StringVar(&(ic.outputTable), "output-table", "samples", "table to write samples to on SQLite3 or PostgreSQL outputs")
	cmd.PersistentFlags().IntVar(&(ic.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}

func (ic *inputConfig) Validate() error {
	if ic.classFeature == "" {
		return fmt.Errorf("required class-feature flag was not set")
	}
	return nil
}

// features reads the features in the metadata file, if any was given.
func (rc *rootCmdConfig) features(ic *inputConfig) ([]feature.Feature, error) {
	if ic.metadataInput == "" {
		return nil, nil
	}
	rc.Logf("Reading features from metadata at %s...", ic.metadataInput)
	features, err := yaml.ReadFeaturesFromFile(ic.metadataInput)
	if err != nil {
		return nil, err
	}
	rc.Logf("Features from metadata read")
	return features, nil
}

// readInput reads a table and the values of its label column from the
// given input: a PostgreSQL or MongoDB URL, an SQLite3 (.db) file or a CSV
// file (STDIN if empty). If label is empty no label column is read. When
// features are given, the table and labels are validated against them.
func (rc *rootCmdConfig) readInput(input, label string, ic *inputConfig, features []feature.Feature) (*dataset.Table, []string, error) {
	var t *dataset.Table
	var labels []string
	var err error
	switch {
	case mongotable.IsDataSource(input):
		t, labels, err = rc.readMongoDBInput(input, label, ic, features)
	case sqltable.IsDataSource(input):
		t, labels, err = rc.readSQLInput(input, label, ic)
	case input == "":
		rc.Logf("Reading CSV from STDIN...")
		t, labels, err = csv.ReadTable(os.Stdin, label)
	default:
		rc.Logf("Reading CSV from %s...", input)
		t, labels, err = csv.ReadTableFromFilePath(input, label)
	}
	if err != nil {
		return nil, nil, err
	}
	if features == nil {
		return t, labels, nil
	}
	var classFeature feature.Feature
	for _, f := range features {
		if f.Name() == label {
			classFeature = f
			break
		}
	}
	if classFeature != nil {
		features = feature.Without(features, classFeature)
		for i, l := range labels {
			if ok, err := classFeature.Valid(l); !ok {
				return nil, nil, fmt.Errorf("validating labels: row %d: %v", i, err)
			}
		}
	}
	err = t.Validate(features)
	if err != nil {
		return nil, nil, err
	}
	return t, labels, nil
}

func (rc *rootCmdConfig) readSQLInput(input, label string, ic *inputConfig) (*dataset.Table, []string, error) {
	rc.Logf("Opening database %s to read samples...", input)
	db, err := sqltable.Open(input, ic.maxDBConns)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()
	return db.ReadTable(rc.Context(), ic.query, label)
}

func (rc *rootCmdConfig) readMongoDBInput(input, label string, ic *inputConfig, features []feature.Feature) (*dataset.Table, []string, error) {
	if features == nil {
		return nil, nil, fmt.Errorf("reading from MongoDB requires the metadata flag to know which fields to read")
	}
	var names []string
	for _, f := range features {
		if f.Name() != label {
			names = append(names, f.Name())
		}
	}
	rc.Logf("Connecting to %s to read samples...", input)
	session, err := mongotable.Dial(input)
	if err != nil {
		return nil, nil, err
	}
	defer session.Close()
	return mongotable.ReadTable(rc.Context(), session, ic.collection, names, label)
}

// writeOutput writes the table with the given labels to the given output: an
// SQLite3 (.db) file, a PostgreSQL URL or a CSV file (STDOUT if empty).
func (rc *rootCmdConfig) writeOutput(output string, ic *inputConfig, t *dataset.Table, label string, labels []string) error {
	if sqltable.IsDataSource(output) {
		rc.Logf("Opening database %s to write samples on table %s...", output, ic.outputTable)
		db, err := sqltable.Open(output, ic.maxDBConns)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.WriteTable(rc.Context(), ic.outputTable, t, label, labels)
	}
	var f *os.File
	var err error
	if output == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return csv.WriteTable(f, t, label, labels)
}
