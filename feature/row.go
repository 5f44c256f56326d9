package feature

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
Sample is an interface for something questions can be asked of.

Its ValueAt method returns the value at the given column, or an error
if the value cannot be obtained.

Its Width method returns the number of fields, label included.
*/
type Sample interface {
	ValueAt(col int) (Value, error)
	Width() int
}

/*
Row is an ordered sequence of values. Field 0 is the class label and
fields 1 to len-1 are features.
*/
type Row []Value

// Label returns the class label of the row
func (r Row) Label() Value {
	return r[0]
}

// Width returns the number of fields on the row
func (r Row) Width() int {
	return len(r)
}

/*
ValueAt takes a column index and returns the value of the row
at that column or an ErrAddressing error if it is out of range.
*/
func (r Row) ValueAt(col int) (Value, error) {
	if col < 0 || col >= len(r) {
		return Value{}, errors.Wrapf(ErrAddressing, "column %d on a row with %d fields", col, len(r))
	}
	return r[col], nil
}

func (r Row) String() string {
	fields := make([]string, len(r))
	for i, v := range r {
		fields[i] = v.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(fields, ", "))
}

/*
Header holds the names of the columns of a set of rows, keyed
by column index. It is supplied by whoever loads the rows.
*/
type Header []string

/*
Name takes a column index and returns the name of the column,
or "column <index>" if the header has no name for it.
*/
func (h Header) Name(col int) string {
	if col >= 0 && col < len(h) && h[col] != "" {
		return h[col]
	}
	return fmt.Sprintf("column %d", col)
}

/*
Index takes a column name and returns its index on the header
or -1 if no column has that name.
*/
func (h Header) Index(name string) int {
	for i, n := range h {
		if n == name {
			return i
		}
	}
	return -1
}
