/*
Package tree defines binary decision trees: their leaf and decision nodes,
the classification of samples by traversing them, the formatting of
predictions as probabilities and a human-readable rendering.
*/
package tree
