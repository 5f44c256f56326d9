package tree

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	yes = feature.Categorical("Yes")
	no  = feature.Categorical("No")
)

func colorTree() *Tree {
	return New(&Decision{
		Question:    feature.NewQuestion(2, feature.Categorical("Red")),
		TrueBranch:  &Leaf{Predictions: dataset.Counts{no: 1}},
		FalseBranch: &Leaf{Predictions: dataset.Counts{yes: 2}},
	}, 3)
}

func TestClassify(t *testing.T) {
	tr := colorTree()
	counts, err := tr.Classify(feature.Row{feature.Categorical("?"), feature.Numeric(3), feature.Categorical("Green")})
	require.NoError(t, err)
	assert.Equal(t, dataset.Counts{yes: 2}, counts)

	counts, err = tr.Classify(feature.Row{feature.Categorical("?"), feature.Numeric(1), feature.Categorical("Red")})
	require.NoError(t, err)
	assert.Equal(t, dataset.Counts{no: 1}, counts)
}

func TestClassifyReturnsCopy(t *testing.T) {
	tr := colorTree()
	r := feature.Row{feature.Categorical("?"), feature.Numeric(3), feature.Categorical("Green")}
	counts, err := tr.Classify(r)
	require.NoError(t, err)
	counts[yes] = 99
	counts[no] = 1

	counts, err = tr.Classify(r)
	require.NoError(t, err)
	assert.Equal(t, dataset.Counts{yes: 2}, counts)
	assert.Equal(t, dataset.Counts{yes: 2}, tr.Root.(*Decision).FalseBranch.(*Leaf).Predictions)
}

func TestClassifyLeafRoot(t *testing.T) {
	tr := New(&Leaf{Predictions: dataset.Counts{yes: 4}}, 2)
	counts, err := tr.Classify(feature.Row{yes, feature.Numeric(1)})
	require.NoError(t, err)
	assert.Equal(t, dataset.Counts{yes: 4}, counts)
}

func TestClassifyWidthMismatch(t *testing.T) {
	tr := colorTree()
	_, err := tr.Classify(feature.Row{feature.Categorical("?"), feature.Numeric(3)})
	assert.True(t, errors.Is(err, feature.ErrAddressing))

	var nilTree *Tree
	_, err = nilTree.Classify(feature.Row{yes})
	assert.Error(t, err)
}

func TestClassifyAddressing(t *testing.T) {
	n := &Decision{
		Question:    feature.NewQuestion(4, feature.Numeric(1)),
		TrueBranch:  &Leaf{Predictions: dataset.Counts{yes: 1}},
		FalseBranch: &Leaf{Predictions: dataset.Counts{no: 1}},
	}
	_, err := Classify(n, feature.Row{yes, feature.Numeric(1)})
	assert.True(t, errors.Is(err, feature.ErrAddressing))
}

func TestFprint(t *testing.T) {
	var sb strings.Builder
	err := colorTree().Fprint(&sb, feature.Header{"label", "size", "color"})
	require.NoError(t, err)
	expected := "Is color == Red?\n" +
		"--> True:\n" +
		"  Predict {No: 1}\n" +
		"--> False:\n" +
		"  Predict {Yes: 2}\n"
	assert.Equal(t, expected, sb.String())
}

func TestFprintNested(t *testing.T) {
	tr := New(&Decision{
		Question: feature.NewQuestion(1, feature.Numeric(2.5)),
		TrueBranch: &Decision{
			Question:    feature.NewQuestion(2, feature.Categorical("Red")),
			TrueBranch:  &Leaf{Predictions: dataset.Counts{no: 1}},
			FalseBranch: &Leaf{Predictions: dataset.Counts{yes: 1, no: 1}},
		},
		FalseBranch: &Leaf{Predictions: dataset.Counts{yes: 3}},
	}, 3)
	expected := "Is column 1 >= 2.5?\n" +
		"--> True:\n" +
		"  Is column 2 == Red?\n" +
		"  --> True:\n" +
		"    Predict {No: 1}\n" +
		"  --> False:\n" +
		"    Predict {No: 1, Yes: 1}\n" +
		"--> False:\n" +
		"  Predict {Yes: 3}\n"
	assert.Equal(t, expected, tr.String())
}

func TestTest(t *testing.T) {
	ds, err := dataset.New([]feature.Row{
		{yes, feature.Numeric(3), feature.Categorical("Green")},
		{no, feature.Numeric(1), feature.Categorical("Red")},
		{no, feature.Numeric(1), feature.Categorical("Green")},
		{yes, feature.Numeric(2), feature.Categorical("Blue")},
	})
	require.NoError(t, err)
	rate, err := colorTree().Test(ds)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, rate, 1e-12)

	var empty *dataset.Dataset
	rate, err = colorTree().Test(empty)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)
}

func TestNewLeaf(t *testing.T) {
	ds, err := dataset.New([]feature.Row{{yes, feature.Numeric(1)}, {no, feature.Numeric(2)}, {yes, feature.Numeric(3)}})
	require.NoError(t, err)
	assert.Equal(t, dataset.Counts{yes: 2, no: 1}, NewLeaf(ds).Predictions)
}
