package sapling

import (
	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Split represents a partition of a dataset according to a question,
along the information gain it obtains.
*/
type Split struct {
	Question feature.Question
	Gain     float64
	True     *dataset.Dataset
	False    *dataset.Dataset
}

/*
FindBestSplit takes a dataset and returns the split with the highest
information gain among all questions on its feature columns and their
distinct values, or nil if no question divides the dataset.

Columns are tried in order and, for each one, values in the order they
first appear on the dataset. Questions leaving a side empty are skipped.
A question replaces the best one found so far when its gain is greater or
equal, so later questions win ties. The returned split may have a gain of
0 when every dividing question gains nothing.
*/
func FindBestSplit(ds *dataset.Dataset) (*Split, error) {
	return findBestSplit(ds, feature.MatchByReference)
}

func findBestSplit(ds *dataset.Dataset, policy feature.MatchPolicy) (*Split, error) {
	currentUncertainty, err := ds.Gini()
	if err != nil {
		return nil, err
	}
	var best *Split
	var bestGain float64
	for col := 1; col < ds.Width(); col++ {
		values, err := ds.FeatureValues(col)
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			q := feature.Question{Column: col, Value: v, Policy: policy}
			trueSet, falseSet, err := ds.Partition(q)
			if err != nil {
				return nil, errors.Wrapf(err, "partitioning on %s", q)
			}
			if trueSet.Count() == 0 || falseSet.Count() == 0 {
				continue
			}
			gain, err := dataset.InfoGain(trueSet, falseSet, currentUncertainty)
			if err != nil {
				return nil, err
			}
			if gain >= bestGain {
				bestGain = gain
				best = &Split{Question: q, Gain: gain, True: trueSet, False: falseSet}
			}
		}
	}
	return best, nil
}
