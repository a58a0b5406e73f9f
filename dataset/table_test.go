package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

func weatherTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.NewTable([]string{"weather", "wind"}, [][]string{
		{"sun", "low"},
		{"sun", "high"},
		{"rain", "low"},
		{"rain", "high"},
	})
	require.NoError(t, err)
	return table
}

func TestNewTableErrors(t *testing.T) {
	_, err := dataset.NewTable([]string{"a", "a"}, nil)
	require.ErrorIs(t, err, dataset.ErrDuplicateFeature)

	_, err = dataset.NewTable([]string{"a", "b"}, [][]string{{"x", "y"}, {"x"}})
	require.ErrorIs(t, err, dataset.ErrRaggedRow)
}

func TestTableAccessors(t *testing.T) {
	table := weatherTable(t)
	assert.Equal(t, []string{"weather", "wind"}, table.Features())
	assert.Equal(t, 4, table.Len())
	assert.True(t, table.HasFeature("wind"))
	assert.False(t, table.HasFeature("play"))

	v, err := table.Value(2, "weather")
	require.NoError(t, err)
	assert.Equal(t, "rain", v)

	_, err = table.Value(0, "play")
	require.ErrorIs(t, err, dataset.ErrUnknownFeature)
	_, err = table.Value(4, "wind")
	require.Error(t, err)
}

func TestTableRow(t *testing.T) {
	table := weatherTable(t)
	s := table.Row(1)
	v, ok := s.ValueFor(feature.NewDiscreteFeature("wind", nil))
	assert.True(t, ok)
	assert.Equal(t, "high", v)
	_, ok = s.ValueFor(feature.NewDiscreteFeature("play", nil))
	assert.False(t, ok)
}

func TestTableDomainKeepsFirstAppearanceOrder(t *testing.T) {
	table, err := dataset.NewTable([]string{"wind"}, [][]string{{"high"}, {"low"}, {"high"}, {"medium"}})
	require.NoError(t, err)
	domain, err := table.Domain("wind")
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "low", "medium"}, domain)

	_, err = table.Domain("weather")
	require.ErrorIs(t, err, dataset.ErrUnknownFeature)
}

func TestTableDiscreteFeatures(t *testing.T) {
	features := weatherTable(t).DiscreteFeatures()
	require.Len(t, features, 2)
	assert.Equal(t, []string{"weather", "wind"}, feature.Names(features))
	assert.Equal(t, []string{"sun", "rain"}, features[0].(*feature.DiscreteFeature).AvailableValues())
	assert.Equal(t, []string{"low", "high"}, features[1].(*feature.DiscreteFeature).AvailableValues())
}

func TestTableValidate(t *testing.T) {
	table := weatherTable(t)
	weather := feature.NewDiscreteFeature("weather", []string{"sun", "rain", "snow"})
	wind := feature.NewDiscreteFeature("wind", []string{"low", "high"})
	require.NoError(t, table.Validate([]feature.Feature{weather, wind}))

	err := table.Validate([]feature.Feature{weather})
	require.ErrorIs(t, err, dataset.ErrUnknownFeature)

	err = table.Validate([]feature.Feature{weather, feature.NewDiscreteFeature("wind", []string{"low"})})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestTableSelect(t *testing.T) {
	table := weatherTable(t)
	selected, err := table.Select([]int{3, 0})
	require.NoError(t, err)
	assert.Equal(t, table.Features(), selected.Features())
	require.Equal(t, 2, selected.Len())
	v, err := selected.Value(0, "weather")
	require.NoError(t, err)
	assert.Equal(t, "rain", v)

	_, err = table.Select([]int{4})
	require.Error(t, err)
}

func TestNewSample(t *testing.T) {
	s := dataset.NewSample(map[string]string{"wind": "low"})
	v, ok := s.ValueFor(feature.NewDiscreteFeature("wind", nil))
	assert.True(t, ok)
	assert.Equal(t, "low", v)
	_, ok = s.ValueFor(feature.NewDiscreteFeature("weather", nil))
	assert.False(t, ok)
}

func TestTableDrop(t *testing.T) {
	table := weatherTable(t)
	dropped := table.Drop("weather")
	assert.Equal(t, []string{"wind"}, dropped.Features())
	require.Equal(t, 4, dropped.Len())
	v, err := dropped.Value(1, "wind")
	require.NoError(t, err)
	assert.Equal(t, "high", v)
	assert.False(t, dropped.HasFeature("weather"))
	assert.Equal(t, []string{"weather", "wind"}, table.Features(), "the receiver is not modified")

	assert.Same(t, table, table.Drop("play"))
}
