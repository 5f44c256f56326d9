/*
Package csv reads sets of rows from delimited text streams whose first
line names the columns, label column first.
*/
package csv

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
	"golang.org/x/text/encoding/htmlindex"
)

/*
Options configures how a delimited stream is read.
*/
type Options struct {
	// Delimiter separates fields on a line, ',' when zero.
	Delimiter rune
	// Encoding is the name of the character encoding of the
	// stream, such as "windows-1251". UTF-8 when empty.
	Encoding string
	// Metadata, when not nil, names the columns and declares
	// their kinds instead of the stream's header and type
	// inference.
	Metadata *yaml.Metadata
}

/*
ReadSet takes an io.Reader for a delimited stream and Options and returns
a dataset with the rows parsed from the stream along the header naming its
columns, or an error.

Unless metadata declares them, column kinds are inferred from the whole
column: columns where every value is an integer or a float hold numeric
values, any other column holds categorical values.
*/
func ReadSet(reader io.Reader, opts Options) (*dataset.Dataset, feature.Header, error) {
	r, err := decode(reader, opts.Encoding)
	if err != nil {
		return nil, nil, err
	}
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}
	loadOptions := []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithDelimiter(delimiter),
		dataframe.NaNValues([]string{}),
	}
	if opts.Metadata != nil {
		types := make(map[string]series.Type)
		for i, name := range opts.Metadata.Header {
			types[name] = series.String
			if opts.Metadata.Kinds[i] == feature.KindNumeric {
				types[name] = series.Float
			}
		}
		loadOptions = append(loadOptions, dataframe.Names(opts.Metadata.Header...), dataframe.WithTypes(types))
	}
	df := dataframe.ReadCSV(r, loadOptions...)
	if df.Err != nil {
		return nil, nil, errors.Wrap(df.Err, "reading delimited rows")
	}
	rows := make([]feature.Row, df.Nrow())
	for i := range rows {
		row := make(feature.Row, df.Ncol())
		for j := range row {
			row[j], err = value(df.Elem(i, j))
			if err != nil {
				return nil, nil, errors.Wrapf(err, "row %d column %s", i+1, df.Names()[j])
			}
		}
		rows[i] = row
	}
	ds, err := dataset.New(rows)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading delimited rows")
	}
	return ds, feature.Header(df.Names()), nil
}

/*
ReadSetFromFile takes a path to a delimited file and Options, and uses
ReadSet to return the dataset and header read from the file or an error.
*/
func ReadSetFromFile(path string, opts Options) (*dataset.Dataset, feature.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	ds, h, err := ReadSet(f, opts)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading %s", path)
	}
	return ds, h, nil
}

func decode(r io.Reader, encoding string) (io.Reader, error) {
	if encoding == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown encoding %q", encoding)
	}
	return enc.NewDecoder().Reader(r), nil
}

func value(e series.Element) (feature.Value, error) {
	if e.IsNA() {
		return feature.Value{}, errors.Wrapf(feature.ErrInvalidInput, "missing or invalid value %q", e.String())
	}
	switch e.Type() {
	case series.Int, series.Float:
		return feature.Numeric(e.Float()), nil
	}
	return feature.Categorical(e.String()), nil
}
