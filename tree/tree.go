package tree

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

// Tree represents a binary decision tree. It is composed of its root
// node and the width of the rows it was grown from, label included.
// A tree is not modified once grown.
type Tree struct {
	Root  Node
	Width int
}

// New takes a root node and the width of the training rows and
// returns a tree.
func New(root Node, width int) *Tree {
	return &Tree{Root: root, Width: width}
}

// Classify takes a sample and returns the predictions of the leaf it
// reaches. Samples whose width differs from the tree's are rejected
// with an ErrAddressing error before the tree is traversed.
func (t *Tree) Classify(s feature.Sample) (dataset.Counts, error) {
	if t == nil || t.Root == nil {
		return nil, errors.New("nil tree cannot classify samples")
	}
	if s.Width() != t.Width {
		return nil, errors.Wrapf(feature.ErrAddressing, "sample has %d fields, tree was grown from rows with %d", s.Width(), t.Width)
	}
	return Classify(t.Root, s)
}

// Classify takes a node and a sample and follows the branches the
// sample's answers lead to from the node, returning a copy of the
// predictions of the leaf it reaches.
func Classify(n Node, s feature.Sample) (dataset.Counts, error) {
	for {
		switch node := n.(type) {
		case *Leaf:
			return maps.Clone(node.Predictions), nil
		case *Decision:
			ok, err := node.Question.Match(s)
			if err != nil {
				return nil, errors.Wrapf(err, "classifying sample: %s", node.Question)
			}
			if ok {
				n = node.TrueBranch
			} else {
				n = node.FalseBranch
			}
		default:
			return nil, errors.Newf("classifying sample: unknown node type %T", n)
		}
	}
}

/*
Test takes a dataset and returns the prediction success rate of the tree
over it: the fraction of rows whose majority predicted label equals their
own label. It returns an error if a row cannot be classified.
*/
func (t *Tree) Test(ds *dataset.Dataset) (float64, error) {
	if ds.Count() == 0 {
		return 0.0, nil
	}
	var result float64
	for i, r := range ds.Rows() {
		counts, err := t.Classify(r)
		if err != nil {
			return 0.0, errors.Wrapf(err, "testing row %d", i)
		}
		predicted, _ := counts.Majority()
		if predicted == r.Label() {
			result += 1.0
		}
	}
	return result / float64(ds.Count()), nil
}

// Fprint takes an io.Writer and a header and writes the tree
// in a human-readable form.
func (t *Tree) Fprint(w io.Writer, h feature.Header) error {
	return Fprint(w, t.Root, h)
}

/*
Fprint takes an io.Writer, a node and a header and writes the subtree
under the node: leaves as "Predict <counts>" and decision nodes as their
question followed by the true branch under "--> True:" and the false
branch under "--> False:", each level indented two more spaces.
*/
func Fprint(w io.Writer, n Node, h feature.Header) error {
	return fprint(w, n, h, "")
}

func fprint(w io.Writer, n Node, h feature.Header, spacing string) error {
	switch node := n.(type) {
	case *Leaf:
		_, err := fmt.Fprintf(w, "%sPredict %v\n", spacing, node.Predictions)
		return err
	case *Decision:
		_, err := fmt.Fprintf(w, "%s%s\n%s--> True:\n", spacing, node.Question.Text(h), spacing)
		if err != nil {
			return err
		}
		err = fprint(w, node.TrueBranch, h, spacing+"  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s--> False:\n", spacing)
		if err != nil {
			return err
		}
		return fprint(w, node.FalseBranch, h, spacing+"  ")
	}
	return errors.Newf("printing tree: unknown node type %T", n)
}

func (t *Tree) String() string {
	var sb strings.Builder
	err := t.Fprint(&sb, nil)
	if err != nil {
		return fmt.Sprintf("ERROR: %s\n", err.Error())
	}
	return sb.String()
}
