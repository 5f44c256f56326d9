package feature

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

/*
MatchPolicy decides which value's variant picks the comparison
a Question performs on a sample.
*/
type MatchPolicy int

const (
	/*
		MatchByReference compares with >= when the question's reference
		value is numeric and with == otherwise. A sample value of the
		other variant never matches.
	*/
	MatchByReference MatchPolicy = iota
	/*
		MatchByValue compares with >= when the sample's value is numeric
		and with == otherwise, deciding numeric-ness on each value at
		match time. A numeric sample value never matches a categorical
		reference.
	*/
	MatchByValue
)

/*
ParseMatchPolicy takes the name of a policy, "reference" or "value",
and returns the corresponding MatchPolicy.
*/
func ParseMatchPolicy(name string) (MatchPolicy, error) {
	switch name {
	case "reference", "":
		return MatchByReference, nil
	case "value":
		return MatchByValue, nil
	}
	return MatchByReference, errors.Newf("unknown match policy %q", name)
}

func (mp MatchPolicy) String() string {
	switch mp {
	case MatchByReference:
		return "reference"
	case MatchByValue:
		return "value"
	}
	return fmt.Sprintf("MatchPolicy(%d)", int(mp))
}

/*
Question represents a binary test on a single feature of a sample: whether
its value at Column is greater or equal than Value for numeric references,
or equal to Value for categorical ones.
*/
type Question struct {
	Column int
	Value  Value
	Policy MatchPolicy
}

/*
NewQuestion takes a column index and a reference value and returns
a Question that matches with the default MatchByReference policy.
*/
func NewQuestion(col int, value Value) Question {
	return Question{Column: col, Value: value}
}

/*
Match takes a sample and returns a boolean indicating if the sample
satisfies the question. It returns an ErrAddressing error if the question's
column is the label column or is out of range for the sample.
*/
func (q Question) Match(s Sample) (bool, error) {
	if q.Column < 1 || q.Column >= s.Width() {
		return false, errors.Wrapf(ErrAddressing, "question on column %d for a sample with %d fields", q.Column, s.Width())
	}
	v, err := s.ValueAt(q.Column)
	if err != nil {
		return false, err
	}
	numeric := q.Value.IsNumeric()
	if q.Policy == MatchByValue {
		numeric = v.IsNumeric()
	}
	if numeric {
		if !v.IsNumeric() || !q.Value.IsNumeric() {
			return false, nil
		}
		return v.num >= q.Value.num, nil
	}
	return v == q.Value, nil
}

// Operator returns ">=" for numeric reference values and "==" otherwise
func (q Question) Operator() string {
	if q.Value.IsNumeric() {
		return ">="
	}
	return "=="
}

/*
Text takes a header and returns the question in a human-readable
form, like "Is color == Green?".
*/
func (q Question) Text(h Header) string {
	return fmt.Sprintf("Is %s %s %s?", h.Name(q.Column), q.Operator(), q.Value)
}

func (q Question) String() string {
	return q.Text(nil)
}
