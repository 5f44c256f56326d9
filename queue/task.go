package queue

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
)

// Task represents a tree node yet to be developed.
type Task struct {
	// Where the developed node must be placed: the root of
	// the tree or a branch of its parent decision node.
	Slot *tree.Node
	// The dataset of training rows that reach the node.
	Dataset *dataset.Dataset
	// The depth of the node on the tree, 0 for the root.
	Depth int
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task depth:%d rows:%d}", t.Depth, t.Dataset.Count())
}
