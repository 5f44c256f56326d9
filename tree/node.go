package tree

import (
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Node is a node of the tree: either a *Leaf or a *Decision. No other
type implements it.
*/
type Node interface {
	isNode()
}

/*
Leaf is a terminal node. It holds the count of each label among the
training rows that reached it.
*/
type Leaf struct {
	Predictions dataset.Counts
}

/*
Decision is an internal node. Samples matching its Question continue
on TrueBranch, the rest on FalseBranch.
*/
type Decision struct {
	Question    feature.Question
	TrueBranch  Node
	FalseBranch Node
}

// NewLeaf takes a dataset and returns a leaf predicting its class counts
func NewLeaf(ds *dataset.Dataset) *Leaf {
	return &Leaf{Predictions: ds.ClassCounts()}
}

func (*Leaf) isNode()     {}
func (*Decision) isNode() {}
