package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

func weatherView(t *testing.T) *dataset.View {
	t.Helper()
	v, err := dataset.New(weatherTable(t), []string{"yes", "no", "yes", "no"})
	require.NoError(t, err)
	return v
}

func TestNewViewRejectsLabelCountMismatch(t *testing.T) {
	_, err := dataset.New(weatherTable(t), []string{"yes"})
	require.ErrorIs(t, err, dataset.ErrLabelCount)
}

func TestViewOverWholeTable(t *testing.T) {
	v := weatherView(t)
	assert.Equal(t, 4, v.Count())
	assert.Equal(t, []int{0, 1, 2, 3}, v.Indices())
	assert.Equal(t, []string{"yes", "no"}, v.Classes())
	assert.Equal(t, []int{2, 2}, v.CountClasses())
	assert.Equal(t, "no", v.Label(3))
	assert.Empty(t, v.Criteria())
	assert.Len(t, v.Samples(), 4)
}

func TestViewSubsetWithKeepsClassDomain(t *testing.T) {
	v := weatherView(t)
	wind := feature.NewDiscreteFeature("wind", []string{"low", "high"})
	low := feature.NewDiscreteCriterion(wind, "low")

	sv := v.SubsetWith(low)
	assert.Equal(t, []int{0, 2}, sv.Indices())
	assert.Equal(t, []string{"yes", "no"}, sv.Classes(), "class domain is fixed when the view is created")
	assert.Equal(t, []int{2, 0}, sv.CountClasses())
	require.Len(t, sv.Criteria(), 1)
	assert.Equal(t, low, sv.Criteria()[0])
	assert.Equal(t, 4, v.Count(), "subsetting does not modify the receiver")
}

func TestViewSubset(t *testing.T) {
	v := weatherView(t)
	sv, err := v.Subset([]int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, sv.CountClasses())

	_, err = v.Subset([]int{1, 1})
	require.Error(t, err)
	_, err = v.Subset([]int{7})
	require.Error(t, err)
}

func TestViewFeatureValuesFollowFeatureDomain(t *testing.T) {
	v := weatherView(t)
	wind := feature.NewDiscreteFeature("wind", []string{"high", "medium", "low"})
	assert.Equal(t, []string{"high", "low"}, v.FeatureValues(wind))
	assert.Equal(t, map[string]int{"high": 2, "low": 2}, v.CountFeatureValues(wind))

	sv, err := v.Subset([]int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"high"}, sv.FeatureValues(wind))
}

func TestViewFeatureValuesOutsideFeatureDomain(t *testing.T) {
	v := weatherView(t)
	weather := feature.NewDiscreteFeature("weather", []string{"rain"})
	assert.Equal(t, []string{"rain", "sun"}, v.FeatureValues(weather))

	assert.Empty(t, v.FeatureValues(feature.NewDiscreteFeature("play", nil)))
}

func TestEmptyView(t *testing.T) {
	v := weatherView(t)
	sv := v.SubsetWith(feature.NewDiscreteCriterion(feature.NewDiscreteFeature("wind", nil), "medium"))
	assert.Equal(t, 0, sv.Count())
	assert.Equal(t, []int{0, 0}, sv.CountClasses())
}
