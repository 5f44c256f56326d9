package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const colors = "label\tsize\tcolor\nYes\t3\tGreen\nYes\t3\tGreen\nNo\t1\tRed\n"

func TestReadSet(t *testing.T) {
	ds, header, err := ReadSet(strings.NewReader(colors), Options{Delimiter: '\t'})
	require.NoError(t, err)
	assert.Equal(t, feature.Header{"label", "size", "color"}, header)
	require.Equal(t, 3, ds.Count())
	assert.Equal(t, feature.Row{
		feature.Categorical("Yes"),
		feature.Numeric(3),
		feature.Categorical("Green"),
	}, ds.Rows()[0])
	assert.Equal(t, feature.Row{
		feature.Categorical("No"),
		feature.Numeric(1),
		feature.Categorical("Red"),
	}, ds.Rows()[2])
}

func TestReadSetInference(t *testing.T) {
	input := "class,weight,code\nA,1.5,7\nB,2,x\n"
	ds, _, err := ReadSet(strings.NewReader(input), Options{})
	require.NoError(t, err)
	assert.Equal(t, feature.Row{
		feature.Categorical("A"),
		feature.Numeric(1.5),
		feature.Categorical("7"),
	}, ds.Rows()[0])
	assert.Equal(t, feature.Numeric(2), ds.Rows()[1][1])
}

func TestReadSetEncoding(t *testing.T) {
	input, err := charmap.Windows1251.NewEncoder().String("метка;цвет\nда;зелёный\nнет;красный\n")
	require.NoError(t, err)
	ds, header, err := ReadSet(strings.NewReader(input), Options{Delimiter: ';', Encoding: "windows-1251"})
	require.NoError(t, err)
	assert.Equal(t, feature.Header{"метка", "цвет"}, header)
	assert.Equal(t, feature.Row{feature.Categorical("да"), feature.Categorical("зелёный")}, ds.Rows()[0])

	_, _, err = ReadSet(strings.NewReader(input), Options{Encoding: "klingon"})
	assert.Error(t, err)
}

func TestReadSetMetadata(t *testing.T) {
	md := &yaml.Metadata{
		Header: feature.Header{"answer", "size", "color"},
		Kinds:  []feature.Kind{feature.KindCategorical, feature.KindCategorical, feature.KindCategorical},
	}
	ds, header, err := ReadSet(strings.NewReader(colors), Options{Delimiter: '\t', Metadata: md})
	require.NoError(t, err)
	assert.Equal(t, md.Header, header)
	assert.Equal(t, feature.Categorical("3"), ds.Rows()[0][1])

	md.Header = md.Header[:2]
	md.Kinds = md.Kinds[:2]
	_, _, err = ReadSet(strings.NewReader(colors), Options{Delimiter: '\t', Metadata: md})
	assert.Error(t, err)
}

func TestReadSetInvalidValues(t *testing.T) {
	md := &yaml.Metadata{
		Header: feature.Header{"label", "size", "color"},
		Kinds:  []feature.Kind{feature.KindCategorical, feature.KindCategorical, feature.KindNumeric},
	}
	_, _, err := ReadSet(strings.NewReader(colors), Options{Delimiter: '\t', Metadata: md})
	assert.True(t, errors.Is(err, feature.ErrInvalidInput))

	missing := "label\tsize\tcolor\nYes\t3\tGreen\nNo\t\tRed\n"
	_, _, err = ReadSet(strings.NewReader(missing), Options{Delimiter: '\t'})
	assert.True(t, errors.Is(err, feature.ErrInvalidInput))

	_, _, err = ReadSet(strings.NewReader("label\tsize\n"), Options{Delimiter: '\t'})
	assert.Error(t, err)
}

func TestReadSetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.tsv")
	require.NoError(t, os.WriteFile(path, []byte(colors), 0o600))
	ds, _, err := ReadSetFromFile(path, Options{Delimiter: '\t'})
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Count())

	_, _, err = ReadSetFromFile(filepath.Join(t.TempDir(), "missing.tsv"), Options{})
	assert.Error(t, err)
}
