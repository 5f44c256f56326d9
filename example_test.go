package sapling_test

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/tree"
)

func ExampleGrow() {
	ds, err := dataset.New([]feature.Row{
		{feature.Categorical("Yes"), feature.Numeric(3), feature.Categorical("Green")},
		{feature.Categorical("Yes"), feature.Numeric(3), feature.Categorical("Green")},
		{feature.Categorical("No"), feature.Numeric(1), feature.Categorical("Red")},
	})
	if err != nil {
		panic(err)
	}
	t, err := sapling.Grow(context.Background(), ds)
	if err != nil {
		panic(err)
	}
	err = t.Fprint(os.Stdout, feature.Header{"label", "size", "color"})
	if err != nil {
		panic(err)
	}
	counts, err := t.Classify(feature.Row{feature.Categorical("?"), feature.Numeric(3), feature.Categorical("Green")})
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.FormatAsProbabilities(counts))
	// Output:
	// Is color == Red?
	// --> True:
	//   Predict {No: 1}
	// --> False:
	//   Predict {Yes: 2}
	// {Yes: 100%}
}
