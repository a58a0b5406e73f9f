/*
Package dataset provides the tabular data trees are grown from: a Table of
categorical values and Views over it that pair the table with a column of
class labels and restrict it to a subset of its rows.
*/
package dataset

import (
	"errors"
	"fmt"

	"github.com/pbanos/id3/feature"
)

var (
	// ErrRaggedRow indicates a row whose width differs from the table header.
	ErrRaggedRow = errors.New("dataset: row width does not match the number of features")
	// ErrDuplicateFeature indicates a header naming the same feature twice.
	ErrDuplicateFeature = errors.New("dataset: duplicate feature name")
	// ErrUnknownFeature indicates a lookup of a feature the table does not have.
	ErrUnknownFeature = errors.New("dataset: unknown feature")
	// ErrEmptyView indicates an operation that requires at least one row got none.
	ErrEmptyView = errors.New("dataset: view has no rows")
	// ErrLabelCount indicates a label column whose length differs from the table's.
	ErrLabelCount = errors.New("dataset: number of labels does not match the number of rows")
)

/*
Table is an immutable table of categorical values: a header of feature names
and rows holding one value per feature. Rows are addressed by their index.
*/
type Table struct {
	features []string
	columns  map[string]int
	rows     [][]string
}

/*
NewTable takes a slice of feature names and a slice of rows and returns a
table with them or an error if a name is repeated or a row does not have a
value for every feature. The table keeps its own copy of the header, but
shares the given rows.
*/
func NewTable(features []string, rows [][]string) (*Table, error) {
	columns := make(map[string]int, len(features))
	for i, name := range features {
		if _, ok := columns[name]; ok {
			return nil, fmt.Errorf("building table: %w %q", ErrDuplicateFeature, name)
		}
		columns[name] = i
	}
	for i, row := range rows {
		if len(row) != len(features) {
			return nil, fmt.Errorf("building table: row %d has %d values for %d features: %w", i, len(row), len(features), ErrRaggedRow)
		}
	}
	return &Table{append([]string(nil), features...), columns, rows}, nil
}

/*
Features returns the names of the features of the table in column order.
*/
func (t *Table) Features() []string {
	return t.features
}

/*
Len returns the number of rows in the table.
*/
func (t *Table) Len() int {
	return len(t.rows)
}

/*
HasFeature returns whether the table has a column for the given feature name.
*/
func (t *Table) HasFeature(name string) bool {
	_, ok := t.columns[name]
	return ok
}

/*
Value takes a row index and a feature name and returns the value of the row
for the feature. It returns an error if the table has no such feature or the
index is out of range.
*/
func (t *Table) Value(row int, name string) (string, error) {
	c, ok := t.columns[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownFeature, name)
	}
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("row index %d out of range [0, %d)", row, len(t.rows))
	}
	return t.rows[row][c], nil
}

/*
Row takes a row index and returns the row as a feature.Sample.
*/
func (t *Table) Row(i int) feature.Sample {
	return &tableSample{t, i}
}

/*
Domain takes a feature name and returns the distinct values the table has for
it, in the order in which they first appear.
*/
func (t *Table) Domain(name string) ([]string, error) {
	c, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFeature, name)
	}
	result := []string{}
	encountered := make(map[string]bool)
	for _, row := range t.rows {
		if !encountered[row[c]] {
			encountered[row[c]] = true
			result = append(result, row[c])
		}
	}
	return result, nil
}

/*
DiscreteFeatures returns a feature.DiscreteFeature for every column of the
table, in column order, with the column's domain as available values.
*/
func (t *Table) DiscreteFeatures() []feature.Feature {
	result := make([]feature.Feature, 0, len(t.features))
	for _, name := range t.features {
		domain, _ := t.Domain(name)
		result = append(result, feature.NewDiscreteFeature(name, domain))
	}
	return result
}

type tableSample struct {
	table *Table
	row   int
}

func (ts *tableSample) ValueFor(f feature.Feature) (string, bool) {
	c, ok := ts.table.columns[f.Name()]
	if !ok {
		return "", false
	}
	return ts.table.rows[ts.row][c], true
}

func (ts *tableSample) String() string {
	return fmt.Sprintf("%v", ts.table.rows[ts.row])
}

/*
Validate takes a slice of features and checks every column of the table is
one of them and every value in it is valid for the feature. It returns an
error describing the first problem found, or nil.
*/
func (t *Table) Validate(features []feature.Feature) error {
	byName := make(map[string]feature.Feature, len(features))
	for _, f := range features {
		byName[f.Name()] = f
	}
	for c, name := range t.features {
		f, ok := byName[name]
		if !ok {
			return fmt.Errorf("validating table: %w %q", ErrUnknownFeature, name)
		}
		for i, row := range t.rows {
			if ok, err := f.Valid(row[c]); !ok {
				return fmt.Errorf("validating table: row %d: %v", i, err)
			}
		}
	}
	return nil
}

/*
Select takes a slice of row indices and returns a table with the same
features and just those rows, in the given order, or an error if an index is
out of range.
*/
func (t *Table) Select(indices []int) (*Table, error) {
	rows := make([][]string, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(t.rows) {
			return nil, fmt.Errorf("selecting rows: row index %d out of range [0, %d)", i, len(t.rows))
		}
		rows = append(rows, t.rows[i])
	}
	return &Table{t.features, t.columns, rows}, nil
}

/*
Drop takes a feature name and returns a table with every column of the
receiver but the one for that feature. If the table has no such column the
receiver itself is returned.
*/
func (t *Table) Drop(name string) *Table {
	c, ok := t.columns[name]
	if !ok {
		return t
	}
	features := make([]string, 0, len(t.features)-1)
	features = append(append(features, t.features[:c]...), t.features[c+1:]...)
	columns := make(map[string]int, len(features))
	for i, f := range features {
		columns[f] = i
	}
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append(append(make([]string, 0, len(features)), row[:c]...), row[c+1:]...)
	}
	return &Table{features, columns, rows}
}
