package id3

import (
	"math"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// gainTolerance is the difference under which two information gains are
// taken as equal. Gains are sums of floating point terms and may carry
// rounding noise.
const gainTolerance = 1e-12

/*
Partition represents a partition of a dataset view according to a feature
into subsets, one per value of the feature in the view, with the information
gain it provides to predict the view's classes.
*/
type Partition struct {
	Feature         feature.Feature
	Criteria        []feature.DiscreteCriterion
	Subsets         []*dataset.View
	InformationGain float64
}

/*
Entropy takes a dataset view and returns the entropy, in bits, of the class
labels of its rows over the view's class domain. Classes without rows in the
view contribute nothing. The entropy of an empty view is 0.
*/
func Entropy(v *dataset.View) float64 {
	n := float64(v.Count())
	var result float64
	for _, c := range v.CountClasses() {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		result -= p * math.Log2(p)
	}
	return result
}

/*
NewPartition takes a dataset view and a feature and returns the partition of
the view for the given feature. The subsets follow the order of the values
returned by the view's FeatureValues method, and none of them is empty.
*/
func NewPartition(v *dataset.View, f feature.Feature) *Partition {
	values := v.FeatureValues(f)
	p := &Partition{
		Feature:         f,
		Criteria:        make([]feature.DiscreteCriterion, 0, len(values)),
		Subsets:         make([]*dataset.View, 0, len(values)),
		InformationGain: Entropy(v),
	}
	totalCount := float64(v.Count())
	for _, value := range values {
		c := feature.NewDiscreteCriterion(f, value)
		ns := v.SubsetWith(c)
		p.Criteria = append(p.Criteria, c)
		p.Subsets = append(p.Subsets, ns)
		p.InformationGain -= Entropy(ns) * float64(ns.Count()) / totalCount
	}
	if len(values) <= 1 {
		// no rows with a value for f, or all with the same one
		p.InformationGain = 0
	}
	return p
}

/*
InformationGain takes a dataset view and a feature and returns the reduction
in entropy obtained by partitioning the view on the values of the feature.
*/
func InformationGain(v *dataset.View, f feature.Feature) float64 {
	return NewPartition(v, f).InformationGain
}

/*
SelectFeature takes a dataset view and a slice of candidate features and
returns the partition of the view with the highest information gain. When
several features tie, gains within gainTolerance of each other included, the
one appearing first in the slice wins. It returns
ErrNoCandidateFeatures if the slice is empty.
*/
func SelectFeature(v *dataset.View, candidates []feature.Feature) (*Partition, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidateFeatures
	}
	var selected *Partition
	for _, f := range candidates {
		p := NewPartition(v, f)
		if selected == nil || p.InformationGain > selected.InformationGain+gainTolerance {
			selected = p
		}
	}
	return selected, nil
}
