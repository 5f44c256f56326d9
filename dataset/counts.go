package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pbanos/sapling/feature"
)

/*
Counts maps label values to the number of rows with that label.
*/
type Counts map[feature.Value]int

/*
Total returns the sum of all counts.
*/
func (c Counts) Total() int {
	var total int
	for _, n := range c {
		total += n
	}
	return total
}

/*
Labels returns the labels in the counts sorted by feature.Value order.
*/
func (c Counts) Labels() []feature.Value {
	labels := make([]feature.Value, 0, len(c))
	for l := range c {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Less(labels[j]) })
	return labels
}

/*
Majority returns the label with the highest count along that count.
Ties go to the label that sorts first. It returns a zero Value and 0 for
empty counts.
*/
func (c Counts) Majority() (label feature.Value, count int) {
	for _, l := range c.Labels() {
		if c[l] > count {
			label, count = l, c[l]
		}
	}
	return
}

func (c Counts) String() string {
	entries := make([]string, 0, len(c))
	for _, l := range c.Labels() {
		entries = append(entries, fmt.Sprintf("%v: %d", l, c[l]))
	}
	return fmt.Sprintf("{%s}", strings.Join(entries, ", "))
}

/*
ClassCounts returns the counts of each label (field 0) on the dataset.
*/
func (d *Dataset) ClassCounts() Counts {
	result := make(Counts)
	for _, r := range d.Rows() {
		result[r.Label()]++
	}
	return result
}

// labelCounts returns the counts in the order labels first appear
func (d *Dataset) labelCounts() []int {
	index := make(map[feature.Value]int)
	var counts []int
	for _, r := range d.Rows() {
		i, ok := index[r.Label()]
		if !ok {
			i = len(counts)
			index[r.Label()] = i
			counts = append(counts, 0)
		}
		counts[i]++
	}
	return counts
}
