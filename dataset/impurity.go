package dataset

import (
	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/feature"
	"gonum.org/v1/gonum/floats"
)

/*
Gini returns the Gini impurity of the dataset: the probability that two
rows drawn at random from it have different labels, computed as
1 - sum(p_label^2). It returns an ErrInvalidInput error for an empty dataset.
*/
func (d *Dataset) Gini() (float64, error) {
	if d.Count() == 0 {
		return 0, errors.Wrap(feature.ErrInvalidInput, "gini impurity of an empty set")
	}
	if d.gini != nil {
		return *d.gini, nil
	}
	counts := d.labelCounts()
	probs := make([]float64, len(counts))
	total := float64(d.Count())
	for i, c := range counts {
		probs[i] = float64(c) / total
	}
	result := 1 - floats.Dot(probs, probs)
	d.gini = &result
	return result, nil
}

/*
InfoGain takes the two sides of a partition and the impurity of the
partitioned dataset and returns the information gain of the partition:
the parent impurity minus the impurity of each side weighted by its size.
It returns an ErrInvalidInput error if either side is empty.
*/
func InfoGain(left, right *Dataset, parentUncertainty float64) (float64, error) {
	if left.Count() == 0 || right.Count() == 0 {
		return 0, errors.Wrapf(feature.ErrInvalidInput, "information gain of a partition with %d and %d rows", left.Count(), right.Count())
	}
	leftGini, err := left.Gini()
	if err != nil {
		return 0, err
	}
	rightGini, err := right.Gini()
	if err != nil {
		return 0, err
	}
	p := float64(left.Count()) / float64(left.Count()+right.Count())
	return parentUncertainty - p*leftGini - (1-p)*rightGini, nil
}
