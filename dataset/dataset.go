/*
Package dataset provides an immutable collection of rows along the
operations needed to grow a decision tree from them: class counting,
impurity, partitioning and distinct feature values.
*/
package dataset

import (
	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/feature"
)

/*
Dataset represents an ordered collection of rows sharing the same width.

Its rows are never modified. Subsets produced by Partition or Split share
the parent's rows.
*/
type Dataset struct {
	rows  []feature.Row
	width int
	gini  *float64
}

/*
New takes a slice of rows and returns a dataset built with them, or an
ErrInvalidInput error if the slice is empty, a row is empty or rows do
not share the same width.
*/
func New(rows []feature.Row) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(feature.ErrInvalidInput, "no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, errors.Wrap(feature.ErrInvalidInput, "row 0 has no label")
	}
	for i, r := range rows {
		if len(r) != width {
			return nil, errors.Wrapf(feature.ErrInvalidInput, "row %d has %d fields, expected %d", i, len(r), width)
		}
	}
	return &Dataset{rows: rows, width: width}, nil
}

func subset(rows []feature.Row, width int) *Dataset {
	return &Dataset{rows: rows, width: width}
}

// Count returns the number of rows in the dataset
func (d *Dataset) Count() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Width returns the number of fields of each row, label included
func (d *Dataset) Width() int {
	if d == nil {
		return 0
	}
	return d.width
}

// Rows returns the rows of the dataset. Callers must not modify them.
func (d *Dataset) Rows() []feature.Row {
	if d == nil {
		return nil
	}
	return d.rows
}

/*
FeatureValues takes a column index and returns the distinct values found
on that column in the order they first appear on the dataset, or an
ErrAddressing error if the column is out of range.
*/
func (d *Dataset) FeatureValues(col int) ([]feature.Value, error) {
	if col < 0 || col >= d.Width() {
		return nil, errors.Wrapf(feature.ErrAddressing, "column %d on a dataset of width %d", col, d.Width())
	}
	result := []feature.Value{}
	encountered := make(map[feature.Value]bool)
	for _, r := range d.rows {
		v := r[col]
		if !encountered[v] {
			encountered[v] = true
			result = append(result, v)
		}
	}
	return result, nil
}

/*
Partition takes a question and splits the dataset into the rows that match
it and the rows that do not, keeping their order. Either of the resulting
datasets may be empty. An error is returned if the question cannot be
asked of the rows.
*/
func (d *Dataset) Partition(q feature.Question) (trueSet *Dataset, falseSet *Dataset, err error) {
	var trueRows, falseRows []feature.Row
	for _, r := range d.Rows() {
		ok, err := q.Match(r)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			trueRows = append(trueRows, r)
		} else {
			falseRows = append(falseRows, r)
		}
	}
	return subset(trueRows, d.Width()), subset(falseRows, d.Width()), nil
}

/*
Split takes a proportion in (0, 1] and splits the dataset into a training
dataset with the first floor(count*proportion) rows and a testing dataset
with the rest. Rows are not shuffled. It returns an ErrInvalidInput error
if the proportion is out of range or leaves the training dataset empty.
*/
func (d *Dataset) Split(proportion float64) (train *Dataset, test *Dataset, err error) {
	if proportion <= 0 || proportion > 1 {
		return nil, nil, errors.Wrapf(feature.ErrInvalidInput, "train proportion %v is not in (0, 1]", proportion)
	}
	n := int(float64(d.Count()) * proportion)
	if n == 0 {
		return nil, nil, errors.Wrapf(feature.ErrInvalidInput, "train proportion %v of %d rows leaves no training rows", proportion, d.Count())
	}
	return subset(d.rows[:n], d.width), subset(d.rows[n:], d.width), nil
}

/*
Kinds returns the kind of the values on each column of the dataset,
taken from its first row.
*/
func (d *Dataset) Kinds() []feature.Kind {
	if d.Count() == 0 {
		return nil
	}
	kinds := make([]feature.Kind, d.width)
	for i, v := range d.rows[0] {
		kinds[i] = v.Kind()
	}
	return kinds
}
