/*
Package csv reads dataset tables from CSV streams and writes classified
tables back as CSV.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
)

/*
ReadTable takes an io.Reader for a CSV stream and the name of a label column
and returns a dataset.Table with the values of every other column and a slice
with the values of the label column, one per row, or an error.

The header or first row of the CSV content is expected to consist of the names
of the columns. If label is empty, every column is taken as a feature and the
returned labels are nil; otherwise the header must include it.
*/
func ReadTable(reader io.Reader, label string) (*dataset.Table, []string, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %v", err)
	}
	labelColumn := -1
	features := make([]string, 0, len(header))
	for i, name := range header {
		if label != "" && name == label {
			labelColumn = i
			continue
		}
		features = append(features, name)
	}
	if label != "" && labelColumn < 0 {
		return nil, nil, fmt.Errorf("parsing header: no column for label %s", label)
	}
	var rows [][]string
	var labels []string
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading line %d: %v", l, err)
		}
		row := make([]string, 0, len(features))
		for i, v := range record {
			if i == labelColumn {
				labels = append(labels, v)
				continue
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	t, err := dataset.NewTable(features, rows)
	if err != nil {
		return nil, nil, err
	}
	return t, labels, nil
}

/*
ReadTableFromFilePath takes a filepath string and the name of a label column,
opens the file to which the filepath points to and uses ReadTable to return a
table and labels read from it. If the filepath is "", os.Stdin is read instead.
It will return an error if the given filepath cannot be opened for reading.
*/
func ReadTableFromFilePath(filepath string, label string) (*dataset.Table, []string, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %v", filepath, err)
		}
		defer f.Close()
	}
	t, labels, err := ReadTable(f, label)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return t, labels, err
}

/*
WriteTable takes an io.Writer, a table, the name of a label and a slice of
labels, one per row of the table, and dumps the table to the writer in CSV
format with the labels as an additional last column. It returns an error if
something went wrong when writing to the writer.
*/
func WriteTable(writer io.Writer, t *dataset.Table, label string, labels []string) error {
	if len(labels) != t.Len() {
		return fmt.Errorf("writing CSV: %d labels for %d rows: %w", len(labels), t.Len(), dataset.ErrLabelCount)
	}
	w := csv.NewWriter(writer)
	record := append(append([]string(nil), t.Features()...), label)
	err := w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	for i := 0; i < t.Len(); i++ {
		for j, name := range t.Features() {
			record[j], err = t.Value(i, name)
			if err != nil {
				return err
			}
		}
		record[len(record)-1] = labels[i]
		err = w.Write(record)
		if err != nil {
			return fmt.Errorf("writing CSV row for sample %d: %v", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}
