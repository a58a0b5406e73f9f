/*
Package id3 grows ID3 decision trees over categorical data and uses them to
classify samples.

Trees are grown by recursively partitioning a dataset view on the feature with
the highest information gain, until the rows of a view share one class or no
feature is left to split on. The Classifier type wraps the process behind a
Fit and Predict interface.
*/
package id3

import (
	"errors"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

var (
	// ErrInvalidInput indicates training or prediction input that cannot be used.
	ErrInvalidInput = errors.New("id3: invalid input")
	// ErrNotFitted indicates a prediction was requested before any successful Fit.
	ErrNotFitted = fmt.Errorf("%w: classifier has not been fitted", ErrInvalidInput)
	// ErrNoCandidateFeatures indicates a split was requested with no features to split on.
	ErrNoCandidateFeatures = errors.New("id3: no candidate features to split on")
)

/*
Grow takes a dataset view and a slice of candidate features and returns the
root of a tree grown from the view's rows:
  * if all rows share one class, a leaf predicting it
  * if there are no candidate features, a leaf predicting the most common
    class, the first in the view's class domain on ties
  * otherwise an internal node splitting on the candidate selected by
    SelectFeature, with a branch per value of the feature among the rows,
    each grown from the rows with that value and the candidates except the
    selected feature.
It returns dataset.ErrEmptyView if the view has no rows.
*/
func Grow(v *dataset.View, candidates []feature.Feature) (tree.Node, error) {
	prediction, err := tree.NewPredictionFromView(v)
	if err != nil {
		return nil, fmt.Errorf("growing node: %w", dataset.ErrEmptyView)
	}
	if _, p := prediction.PredictedValue(); p == 1.0 || len(candidates) == 0 {
		return tree.NewLeaf(prediction), nil
	}
	part, err := SelectFeature(v, candidates)
	if err != nil {
		return nil, err
	}
	if len(part.Subsets) == 0 {
		return nil, fmt.Errorf("growing node: splitting on %s: %w", part.Feature.Name(), dataset.ErrUnknownFeature)
	}
	stCandidates := feature.Without(candidates, part.Feature)
	branches := make([]tree.Branch, 0, len(part.Subsets))
	for i, sv := range part.Subsets {
		child, err := Grow(sv, stCandidates)
		if err != nil {
			return nil, fmt.Errorf("growing subtree for %v: %w", part.Criteria[i], err)
		}
		branches = append(branches, tree.Branch{Criterion: part.Criteria[i], Node: child})
	}
	return tree.NewInternal(part.Feature, v.Count(), branches), nil
}
