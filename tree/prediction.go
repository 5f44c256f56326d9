package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Probabilities maps label values to their share of a prediction,
formatted as a truncated integer percentage such as "75%".
*/
type Probabilities map[feature.Value]string

/*
FormatAsProbabilities takes the counts of a prediction and returns
each label's share as floor(count/total*100) followed by '%'. Shares
are truncated, not rounded, so they may add up to less than 100%.
Empty counts yield empty probabilities.
*/
func FormatAsProbabilities(counts dataset.Counts) Probabilities {
	total := float64(counts.Total())
	probs := make(Probabilities, len(counts))
	if total == 0 {
		return probs
	}
	for l, c := range counts {
		probs[l] = fmt.Sprintf("%d%%", int(float64(c)/total*100))
	}
	return probs
}

func (p Probabilities) String() string {
	labels := make(dataset.Counts, len(p))
	for l := range p {
		labels[l] = 0
	}
	entries := make([]string, 0, len(p))
	for _, l := range labels.Labels() {
		entries = append(entries, fmt.Sprintf("%v: %s", l, p[l]))
	}
	return fmt.Sprintf("{%s}", strings.Join(entries, ", "))
}
