package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
)

const metadata = `
features:
  weather:
    - sun
    - rain
  wind:
    - low
    - high
  play:
    - "yes"
    - "no"
`

func TestReadFeatures(t *testing.T) {
	features, err := yaml.ReadFeatures([]byte(metadata))
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, []string{"weather", "wind", "play"}, feature.Names(features))

	wind, ok := features[1].(*feature.DiscreteFeature)
	require.True(t, ok)
	assert.Equal(t, []string{"low", "high"}, wind.AvailableValues())
	play := features[2].(*feature.DiscreteFeature)
	assert.Equal(t, []string{"yes", "no"}, play.AvailableValues())
}

func TestReadFeaturesRejectsContinuousFeatures(t *testing.T) {
	_, err := yaml.ReadFeatures([]byte("features:\n  temperature: continuous\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only discrete features are supported")
}

func TestReadFeaturesWithoutFeatures(t *testing.T) {
	_, err := yaml.ReadFeatures([]byte("other: 1\n"))
	require.Error(t, err)

	_, err = yaml.ReadFeatures([]byte("features: [\n"))
	require.Error(t, err)
}

func TestReadFeaturesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	require.NoError(t, os.WriteFile(path, []byte(metadata), 0o600))

	features, err := yaml.ReadFeaturesFromFile(path)
	require.NoError(t, err)
	assert.Len(t, features, 3)

	_, err = yaml.ReadFeaturesFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
