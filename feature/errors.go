package feature

// RowError represents an error related with rows and the way
// questions address their fields
type RowError string

/*
ErrInvalidInput is the error returned when a set of rows cannot be
used to grow a tree or compute an impurity: it is empty or its rows
do not share the same width.
*/
const ErrInvalidInput = RowError("invalid input")

/*
ErrAddressing is the error returned when a question references a column
that is out of range for a row, or when a row does not have the width
of the rows a tree was grown from.
*/
const ErrAddressing = RowError("column out of range")

func (re RowError) Error() string {
	return string(re)
}
