package feature

import (
	"fmt"
	"strconv"
)

/*
Kind tells apart the two variants a Value may take.
*/
type Kind int

const (
	// KindCategorical values are compared by equality
	KindCategorical Kind = iota
	// KindNumeric values are compared by thresholds
	KindNumeric
)

/*
Value represents the content of a single field of a row. It is either
numeric, holding a float64, or categorical, holding a string.

Values are comparable, so they can be used as map keys, and the zero
Value is the empty categorical value.
*/
type Value struct {
	kind Kind
	num  float64
	str  string
}

/*
Numeric takes a float64 and returns a numeric Value holding it.
*/
func Numeric(f float64) Value {
	return Value{kind: KindNumeric, num: f}
}

/*
Categorical takes a string and returns a categorical Value holding it.
*/
func Categorical(s string) Value {
	return Value{kind: KindCategorical, str: s}
}

/*
Parse takes a string and returns a numeric Value if the string
is a valid number and a categorical Value with the string otherwise.
*/
func Parse(s string) Value {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Categorical(s)
	}
	return Numeric(f)
}

// Kind returns the variant of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumeric returns whether the value is numeric
func (v Value) IsNumeric() bool {
	return v.kind == KindNumeric
}

/*
Float returns the float64 held by a numeric value. It returns 0 for
categorical values.
*/
func (v Value) Float() float64 {
	return v.num
}

/*
Str returns the string held by a categorical value. It returns an
empty string for numeric values.
*/
func (v Value) Str() string {
	return v.str
}

/*
Less takes another value and reports whether v sorts before it.
Numeric values sort before categorical ones, numeric values sort by
number and categorical ones lexicographically.
*/
func (v Value) Less(o Value) bool {
	if v.kind != o.kind {
		return v.kind == KindNumeric
	}
	if v.kind == KindNumeric {
		return v.num < o.num
	}
	return v.str < o.str
}

func (v Value) String() string {
	if v.kind == KindNumeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// GoString makes %#v tell the variants apart
func (v Value) GoString() string {
	if v.kind == KindNumeric {
		return fmt.Sprintf("feature.Numeric(%v)", v.num)
	}
	return fmt.Sprintf("feature.Categorical(%q)", v.str)
}

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
