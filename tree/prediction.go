package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
)

/*
Prediction represents a prediction made by a decision tree leaf: how many
of the training samples that reached the leaf belong to each class.
*/
type Prediction struct {
	classes []string
	counts  []int
	weight  int
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrUnseenCategory is the error returned by the Predict method of a tree when
the sample has a value for the feature of a node that none of the training
samples reaching that node had.
*/
const ErrUnseenCategory = PredictionError("no branch for this value of the feature")

/*
ErrMissingValue is the error returned by the Predict method of a tree when
the sample does not define a value for the feature of a node.
*/
const ErrMissingValue = PredictionError("sample has no value for the feature")

/*
ErrEmptyTree is the error returned when asking a tree without root node to
predict.
*/
const ErrEmptyTree = PredictionError("tree has no nodes")

/*
ErrCannotPredictFromEmptySet is the error returned when trying to build a prediction
based on an empty dataset view.
*/
const ErrCannotPredictFromEmptySet = PredictionError("cannot make prediction for empty dataset")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
NewPrediction takes a slice of classes and a slice with the number of samples
for each of them and returns a prediction representing those values.
*/
func NewPrediction(classes []string, counts []int) *Prediction {
	var weight int
	for _, c := range counts {
		weight += c
	}
	return &Prediction{classes, counts, weight}
}

// NewPredictionFromView takes a dataset view and returns a prediction based
// on the class labels of its rows, or ErrCannotPredictFromEmptySet if it has
// none.
func NewPredictionFromView(v *dataset.View) (*Prediction, error) {
	if v.Count() == 0 {
		return nil, ErrCannotPredictFromEmptySet
	}
	return NewPrediction(v.Classes(), v.CountClasses()), nil
}

/*
ProbabilityOf takes a class and returns the float64 probability of that
class according to the prediction.
*/
func (p *Prediction) ProbabilityOf(class string) float64 {
	if p.weight == 0 {
		return 0.0
	}
	for i, c := range p.classes {
		if c == class {
			return float64(p.counts[i]) / float64(p.weight)
		}
	}
	return 0.0
}

/*
Weight returns the weight of the prediction: an
int equal to the number of samples in the dataset from which
the prediction was made
*/
func (p *Prediction) Weight() int {
	return p.weight
}

/*
PredictedValue returns the most probable class and its probability. When
several classes are equally probable, the one appearing first in the class
domain is returned.
*/
func (p *Prediction) PredictedValue() (value string, prob float64) {
	best := -1
	for i, c := range p.counts {
		if c > 0 && (best < 0 || c > p.counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return "", 0.0
	}
	return p.classes[best], float64(p.counts[best]) / float64(p.weight)
}

func (p *Prediction) String() string {
	parts := make([]string, 0, len(p.classes))
	for i, c := range p.classes {
		if p.counts[i] > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", c, p.counts[i]))
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
