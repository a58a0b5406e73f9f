package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

func TestPrediction(t *testing.T) {
	p := tree.NewPrediction([]string{"yes", "no", "maybe"}, []int{1, 3, 0})
	assert.Equal(t, 4, p.Weight())
	assert.InDelta(t, 0.75, p.ProbabilityOf("no"), 1e-9)
	assert.InDelta(t, 0.0, p.ProbabilityOf("maybe"), 1e-9)
	assert.InDelta(t, 0.0, p.ProbabilityOf("unknown"), 1e-9)
	v, prob := p.PredictedValue()
	assert.Equal(t, "no", v)
	assert.InDelta(t, 0.75, prob, 1e-9)
	assert.Equal(t, "[yes:1 no:3]", p.String())
}

func TestPredictedValueBreaksTiesByClassOrder(t *testing.T) {
	v, prob := tree.NewPrediction([]string{"no", "yes"}, []int{2, 2}).PredictedValue()
	assert.Equal(t, "no", v)
	assert.InDelta(t, 0.5, prob, 1e-9)

	v, _ = tree.NewPrediction([]string{"yes", "no"}, []int{2, 2}).PredictedValue()
	assert.Equal(t, "yes", v)
}

func TestEmptyPrediction(t *testing.T) {
	p := tree.NewPrediction([]string{"yes"}, []int{0})
	v, prob := p.PredictedValue()
	assert.Equal(t, "", v)
	assert.Equal(t, 0.0, prob)
	assert.Equal(t, 0.0, p.ProbabilityOf("yes"))
}

func TestNewPredictionFromView(t *testing.T) {
	table, err := dataset.NewTable([]string{"wind"}, [][]string{{"low"}, {"high"}, {"low"}})
	require.NoError(t, err)
	v, err := dataset.New(table, []string{"no", "yes", "yes"})
	require.NoError(t, err)

	p, err := tree.NewPredictionFromView(v)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Weight())
	assert.Equal(t, "[no:1 yes:2]", p.String())

	wind := feature.NewDiscreteFeature("wind", nil)
	_, err = tree.NewPredictionFromView(v.SubsetWith(feature.NewDiscreteCriterion(wind, "medium")))
	require.ErrorIs(t, err, tree.ErrCannotPredictFromEmptySet)
}
