/*
Package queue holds the nodes still to be developed while a tree grows.

Each Task points at the slot its node must fill and carries the training
rows that reach it. The in-memory Queue returned by New hands tasks out
in the order they were pushed and keeps pending and running counts, so
a single worker knows the tree is complete when both drop to zero.
*/
package queue
