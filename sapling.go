/*
Package sapling grows binary decision trees that classify rows of tabular
data, choosing at each node the question on a single feature whose
partition of the training rows reduces Gini impurity the most.
*/
package sapling

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/queue"
	"github.com/pbanos/sapling/tree"
	"github.com/rs/zerolog"
)

// Grower holds the configuration used to grow trees.
type Grower struct {
	// Logger receives a debug event for every developed
	// node and an info event for every grown tree.
	Logger zerolog.Logger
	// Policy is the match policy of the questions on the
	// grown trees.
	Policy feature.MatchPolicy
}

// Grow takes a context and a dataset of training rows and returns a
// tree grown from them with the default Grower configuration: questions
// matching by reference value and no logging.
func Grow(ctx context.Context, ds *dataset.Dataset) (*tree.Tree, error) {
	g := &Grower{Logger: zerolog.Nop()}
	return g.Grow(ctx, ds)
}

// Grow takes a context and a dataset of training rows and returns the
// tree grown from them or an error.
//
// Nodes are developed until no question obtains any information gain
// on their rows, then they become leaves. Nodes are developed through
// an in-memory queue instead of recursion, so the depth of the tree is
// not limited by the stack.
//
// Grow returns an ErrInvalidInput error for a nil or empty dataset,
// and the context error if it is cancelled while growing.
func (g *Grower) Grow(ctx context.Context, ds *dataset.Dataset) (*tree.Tree, error) {
	if ds.Count() == 0 {
		return nil, errors.Wrap(feature.ErrInvalidInput, "cannot grow a tree from an empty set")
	}
	t := tree.New(nil, ds.Width())
	q := queue.New()
	err := q.Push(ctx, &queue.Task{Slot: &t.Root, Dataset: ds})
	if err != nil {
		return nil, err
	}
	err = g.work(ctx, q)
	if err != nil {
		return nil, err
	}
	g.Logger.Info().Int("rows", ds.Count()).Int("width", ds.Width()).Msg("tree grown")
	return t, nil
}

// work pulls tasks from the queue until it has no pending
// or running tasks, developing their nodes and pushing the tasks
// for the resulting branches.
func (g *Grower) work(ctx context.Context, q queue.Queue) error {
	for {
		task, err := q.Pull(ctx)
		if err != nil {
			return err
		}
		if task == nil {
			p, r, err := q.Count(ctx)
			if err != nil {
				return err
			}
			if p+r == 0 {
				return nil
			}
			return errors.Newf("queue has %d running tasks but none pending", r)
		}
		tasks, err := g.branchOut(task)
		if err != nil {
			return err
		}
		for _, st := range tasks {
			err = q.Push(ctx, st)
			if err != nil {
				return err
			}
		}
		err = q.Complete(ctx, task)
		if err != nil {
			return err
		}
	}
}

// branchOut develops the node in the task and returns the tasks
// to develop its branches, if any.
func (g *Grower) branchOut(task *queue.Task) ([]*queue.Task, error) {
	split, err := findBestSplit(task.Dataset, g.Policy)
	if err != nil {
		return nil, err
	}
	if split == nil || split.Gain == 0 {
		leaf := tree.NewLeaf(task.Dataset)
		*task.Slot = leaf
		g.Logger.Debug().Int("depth", task.Depth).Int("rows", task.Dataset.Count()).Stringer("predictions", leaf.Predictions).Msg("leaf")
		return nil, nil
	}
	d := &tree.Decision{Question: split.Question}
	*task.Slot = d
	g.Logger.Debug().Int("depth", task.Depth).Int("rows", task.Dataset.Count()).Float64("gain", split.Gain).Stringer("question", split.Question).Msg("decision")
	return []*queue.Task{
		{Slot: &d.TrueBranch, Dataset: split.True, Depth: task.Depth + 1},
		{Slot: &d.FalseBranch, Dataset: split.False, Depth: task.Depth + 1},
	}, nil
}
