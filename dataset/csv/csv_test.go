package csv_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
)

const weatherCSV = `weather,play,wind
sun,yes,low
sun,no,high
rain,yes,low
rain,no,high
`

func TestReadTable(t *testing.T) {
	table, labels, err := csv.ReadTable(strings.NewReader(weatherCSV), "play")
	require.NoError(t, err)
	assert.Equal(t, []string{"weather", "wind"}, table.Features())
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []string{"yes", "no", "yes", "no"}, labels)
	v, err := table.Value(1, "wind")
	require.NoError(t, err)
	assert.Equal(t, "high", v)
}

func TestReadTableWithoutLabel(t *testing.T) {
	table, labels, err := csv.ReadTable(strings.NewReader(weatherCSV), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"weather", "play", "wind"}, table.Features())
	assert.Nil(t, labels)
}

func TestReadTableErrors(t *testing.T) {
	_, _, err := csv.ReadTable(strings.NewReader(weatherCSV), "class")
	require.Error(t, err)

	_, _, err = csv.ReadTable(strings.NewReader(""), "play")
	require.Error(t, err)

	_, _, err = csv.ReadTable(strings.NewReader("a,b\nx,y\nz\n"), "b")
	require.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	table, labels, err := csv.ReadTable(strings.NewReader(weatherCSV), "play")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, csv.WriteTable(&b, table, "play", labels))
	assert.Equal(t, "weather,wind,play\nsun,low,yes\nsun,high,no\nrain,low,yes\nrain,high,no\n", b.String())

	err = csv.WriteTable(&b, table, "play", labels[1:])
	require.ErrorIs(t, err, dataset.ErrLabelCount)
}

func TestReadTableFromFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.csv")
	require.NoError(t, os.WriteFile(path, []byte(weatherCSV), 0o600))

	table, labels, err := csv.ReadTableFromFilePath(path, "play")
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())
	assert.Len(t, labels, 4)

	_, _, err = csv.ReadTableFromFilePath(filepath.Join(t.TempDir(), "missing.csv"), "play")
	require.Error(t, err)
}
