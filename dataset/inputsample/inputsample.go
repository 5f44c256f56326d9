/*
Package inputsample provides an implementation of feature.Sample that is read
from an io.Reader.
*/
package inputsample

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(name string, kind feature.Kind) error
	RejectValueFor(name string, kind feature.Kind, value string) error
}

type readSample struct {
	obtainedValues        map[int]feature.Value
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	header                feature.Header
	kinds                 []feature.Kind
}

/*
New takes an io.Reader, the header and kinds of the columns of the rows
a tree was grown from and a FeatureValueRequester and returns a Sample.

The returned Sample ValueAt method reads the value of a column the first
time it is asked for it, requesting it with the given FeatureValueRequester
and then parsing it from the reader. Later calls return the same value.

The parsing expects each value to be presented ending with the
'\n' character, that is in new lines. For numeric columns, lines will
be read until one holds a valid number; lines that do not are rejected
with the FeatureValueRequester's RejectValueFor method. For categorical
columns the trimmed line is taken as the value.

The sample has as many fields as the header. The label at column 0 is
never requested and is the zero value.
*/
func New(r io.Reader, header feature.Header, kinds []feature.Kind, featureValueRequester FeatureValueRequester) feature.Sample {
	return &readSample{
		obtainedValues:        make(map[int]feature.Value),
		scanner:               bufio.NewScanner(r),
		featureValueRequester: featureValueRequester,
		header:                header,
		kinds:                 kinds,
	}
}

func (rs *readSample) Width() int {
	return len(rs.header)
}

func (rs *readSample) ValueAt(col int) (feature.Value, error) {
	if col < 0 || col >= len(rs.header) {
		return feature.Value{}, errors.Wrapf(feature.ErrAddressing, "column %d on a sample with %d fields", col, len(rs.header))
	}
	if col == 0 {
		return feature.Value{}, nil
	}
	if v, ok := rs.obtainedValues[col]; ok {
		return v, nil
	}
	kind := feature.KindCategorical
	if col < len(rs.kinds) {
		kind = rs.kinds[col]
	}
	name := rs.header.Name(col)
	err := rs.featureValueRequester.RequestValueFor(name, kind)
	if err != nil {
		return feature.Value{}, err
	}
	for rs.scanner.Scan() {
		line := strings.TrimSpace(rs.scanner.Text())
		v, ok := parse(line, kind)
		if ok {
			rs.obtainedValues[col] = v
			return v, nil
		}
		err = rs.featureValueRequester.RejectValueFor(name, kind, line)
		if err != nil {
			return feature.Value{}, err
		}
	}
	if err = rs.scanner.Err(); err != nil {
		return feature.Value{}, errors.Wrapf(err, "reading value for %s", name)
	}
	return feature.Value{}, errors.Wrapf(io.ErrUnexpectedEOF, "reading value for %s", name)
}

func parse(line string, kind feature.Kind) (feature.Value, bool) {
	if kind == feature.KindNumeric {
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return feature.Value{}, false
		}
		return feature.Numeric(f), true
	}
	return feature.Categorical(line), true
}
