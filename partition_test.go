package id3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

func view(t *testing.T, features []string, rows [][]string, labels []string) *dataset.View {
	t.Helper()
	table, err := dataset.NewTable(features, rows)
	require.NoError(t, err)
	v, err := dataset.New(table, labels)
	require.NoError(t, err)
	return v
}

func weatherView(t *testing.T) *dataset.View {
	return view(t, []string{"weather", "wind"}, [][]string{
		{"sun", "low"},
		{"sun", "high"},
		{"rain", "low"},
		{"rain", "high"},
	}, []string{"yes", "no", "yes", "no"})
}

func TestEntropy(t *testing.T) {
	pure := view(t, []string{"a"}, [][]string{{"x"}, {"y"}}, []string{"yes", "yes"})
	assert.Equal(t, 0.0, id3.Entropy(pure))

	assert.InDelta(t, 1.0, id3.Entropy(weatherView(t)), 1e-9)

	three := view(t, []string{"a"}, [][]string{{"x"}, {"x"}, {"x"}, {"x"}}, []string{"a", "b", "c", "c"})
	assert.InDelta(t, 1.5, id3.Entropy(three), 1e-9)
}

func TestEntropyOfEmptyView(t *testing.T) {
	v := weatherView(t)
	wind := feature.NewDiscreteFeature("wind", nil)
	assert.Equal(t, 0.0, id3.Entropy(v.SubsetWith(feature.NewDiscreteCriterion(wind, "medium"))))
}

func TestInformationGain(t *testing.T) {
	v := weatherView(t)
	features := v.Table().DiscreteFeatures()
	assert.InDelta(t, 0.0, id3.InformationGain(v, features[0]), 1e-9)
	assert.InDelta(t, 1.0, id3.InformationGain(v, features[1]), 1e-9)
}

func TestInformationGainOfSingleValuedFeature(t *testing.T) {
	v := view(t, []string{"a"}, [][]string{{"x"}, {"x"}}, []string{"yes", "no"})
	assert.Equal(t, 0.0, id3.InformationGain(v, v.Table().DiscreteFeatures()[0]))
}

func TestNewPartition(t *testing.T) {
	v := weatherView(t)
	wind := v.Table().DiscreteFeatures()[1]
	p := id3.NewPartition(v, wind)
	assert.Equal(t, wind, p.Feature)
	require.Len(t, p.Criteria, 2)
	assert.Equal(t, "low", p.Criteria[0].Value())
	assert.Equal(t, "high", p.Criteria[1].Value())
	require.Len(t, p.Subsets, 2)
	assert.Equal(t, []int{0, 2}, p.Subsets[0].Indices())
	assert.Equal(t, []int{1, 3}, p.Subsets[1].Indices())
}

func TestSelectFeature(t *testing.T) {
	v := weatherView(t)
	p, err := id3.SelectFeature(v, v.Table().DiscreteFeatures())
	require.NoError(t, err)
	assert.Equal(t, "wind", p.Feature.Name())
	assert.InDelta(t, 1.0, p.InformationGain, 1e-9)

	_, err = id3.SelectFeature(v, nil)
	require.ErrorIs(t, err, id3.ErrNoCandidateFeatures)
}

func TestSelectFeatureBreaksTiesByCandidateOrder(t *testing.T) {
	v := view(t, []string{"a", "b"}, [][]string{
		{"x", "p"},
		{"y", "q"},
	}, []string{"yes", "no"})
	features := v.Table().DiscreteFeatures()

	p, err := id3.SelectFeature(v, features)
	require.NoError(t, err)
	assert.Equal(t, "a", p.Feature.Name())

	p, err = id3.SelectFeature(v, []feature.Feature{features[1], features[0]})
	require.NoError(t, err)
	assert.Equal(t, "b", p.Feature.Name())
}

func TestSelectFeatureIgnoresRoundingNoise(t *testing.T) {
	v := view(t, []string{"b", "a"}, [][]string{
		{"k", "x"},
		{"k", "x"},
		{"k", "y"},
		{"k", "y"},
		{"k", "z"},
		{"k", "z"},
	}, []string{"yes", "no", "yes", "no", "yes", "no"})
	features := v.Table().DiscreteFeatures()
	assert.InDelta(t, 0.0, id3.InformationGain(v, features[1]), 1e-12)

	p, err := id3.SelectFeature(v, features)
	require.NoError(t, err)
	assert.Equal(t, "b", p.Feature.Name(), "a gain of zero up to rounding does not beat an earlier zero gain")
}
