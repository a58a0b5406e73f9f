package dataset

import (
	"fmt"

	"github.com/pbanos/id3/feature"
)

/*
View represents a subset of the rows of a Table along with the class label of
every row.

The class domain of a view, the distinct labels of the full label column in
order of first appearance, is fixed when the view is created with New and is
shared unchanged by every view subset from it.
*/
type View struct {
	table    *Table
	labels   []string
	classes  []string
	indices  []int
	criteria []feature.Criterion
}

/*
New takes a table and a slice of labels, one per row of the table, and returns
a view over all the rows of the table, or an error if the number of labels does
not match the number of rows.
*/
func New(t *Table, labels []string) (*View, error) {
	if t.Len() != len(labels) {
		return nil, fmt.Errorf("building view over %d rows with %d labels: %w", t.Len(), len(labels), ErrLabelCount)
	}
	indices := make([]int, len(labels))
	for i := range indices {
		indices[i] = i
	}
	return &View{table: t, labels: labels, classes: distinct(labels), indices: indices}, nil
}

/*
Table returns the table the view is built on.
*/
func (v *View) Table() *Table {
	return v.table
}

/*
Count returns the number of rows in the view.
*/
func (v *View) Count() int {
	return len(v.indices)
}

/*
Indices returns the indices of the table rows in the view, in ascending order.
*/
func (v *View) Indices() []int {
	return v.indices
}

/*
Classes returns the class domain of the view.
*/
func (v *View) Classes() []string {
	return v.classes
}

/*
Label takes a row index and returns the class label for that row.
*/
func (v *View) Label(i int) string {
	return v.labels[i]
}

/*
Criteria returns the criteria applied to obtain this view from the view
over the whole table, the most recent one first.
*/
func (v *View) Criteria() []feature.Criterion {
	return v.criteria
}

/*
Subset takes a slice of row indices and returns a view with just those rows.
The indices must be in range for the table and must not repeat. The new view
keeps the class domain and criteria of the receiver.
*/
func (v *View) Subset(indices []int) (*View, error) {
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= v.table.Len() {
			return nil, fmt.Errorf("subsetting view: row index %d out of range [0, %d)", i, v.table.Len())
		}
		if seen[i] {
			return nil, fmt.Errorf("subsetting view: row index %d repeated", i)
		}
		seen[i] = true
	}
	return &View{v.table, v.labels, v.classes, append([]int(nil), indices...), v.criteria}, nil
}

/*
SubsetWith takes a feature.Criterion and returns a view with the rows of the
receiver that satisfy it.
*/
func (v *View) SubsetWith(fc feature.Criterion) *View {
	var indices []int
	for _, i := range v.indices {
		if fc.SatisfiedBy(v.table.Row(i)) {
			indices = append(indices, i)
		}
	}
	return &View{v.table, v.labels, v.classes, indices, append([]feature.Criterion{fc}, v.criteria...)}
}

/*
FeatureValues takes a feature and returns the distinct values rows in the view
have for it. When the feature is a *feature.DiscreteFeature the values follow
the order of its available values, and any value not among them follows in
order of first appearance. For other features the order of first appearance is
used for all of them.
*/
func (v *View) FeatureValues(f feature.Feature) []string {
	counts := v.CountFeatureValues(f)
	result := make([]string, 0, len(counts))
	if df, ok := f.(*feature.DiscreteFeature); ok {
		for _, av := range df.AvailableValues() {
			if counts[av] > 0 {
				result = append(result, av)
				delete(counts, av)
			}
		}
	}
	for _, i := range v.indices {
		val, ok := v.table.Row(i).ValueFor(f)
		if ok && counts[val] > 0 {
			result = append(result, val)
			delete(counts, val)
		}
	}
	return result
}

/*
CountFeatureValues takes a feature and returns a map with the number of rows in
the view for each value of the feature.
*/
func (v *View) CountFeatureValues(f feature.Feature) map[string]int {
	result := make(map[string]int)
	for _, i := range v.indices {
		val, ok := v.table.Row(i).ValueFor(f)
		if ok {
			result[val]++
		}
	}
	return result
}

/*
CountClasses returns the number of rows in the view for each class, aligned
with the slice returned by Classes.
*/
func (v *View) CountClasses() []int {
	positions := make(map[string]int, len(v.classes))
	for i, c := range v.classes {
		positions[c] = i
	}
	result := make([]int, len(v.classes))
	for _, i := range v.indices {
		result[positions[v.labels[i]]]++
	}
	return result
}

/*
Samples returns the rows of the view as samples, in the same order as Indices.
*/
func (v *View) Samples() []feature.Sample {
	samples := make([]feature.Sample, len(v.indices))
	for j, i := range v.indices {
		samples[j] = v.table.Row(i)
	}
	return samples
}

func (v *View) String() string {
	return fmt.Sprintf("{View %d/%d rows %v}", len(v.indices), v.table.Len(), v.criteria)
}

func distinct(values []string) []string {
	result := []string{}
	encountered := make(map[string]bool)
	for _, v := range values {
		if !encountered[v] {
			encountered[v] = true
			result = append(result, v)
		}
	}
	return result
}
