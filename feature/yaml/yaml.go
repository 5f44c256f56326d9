/*
Package yaml provides methods to parse column metadata for sets of rows
from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes the columns of a set of rows: their names in order,
label column first, and the kind of value each one holds.
*/
type Metadata struct {
	Header feature.Header
	Kinds  []feature.Kind
}

/*
ReadMetadata takes a slice of bytes with a column specification in YML and
returns the Metadata parsed from it or an error.
The YML is expected to be an object containing a columns property. The value
for this should be an object with a property for each column, in the order
columns appear on the rows, with its name and either 'numeric' or
'categorical' as value.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	metadata := struct {
		Columns yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml metadata")
	}
	if len(metadata.Columns) == 0 {
		return nil, errors.New("metadata has no column information")
	}
	result := &Metadata{}
	for _, item := range metadata.Columns {
		name := fmt.Sprintf("%v", item.Key)
		kind, ok := item.Value.(string)
		if !ok {
			return nil, errors.Newf("invalid declaration for column %s of type %T", name, item.Value)
		}
		switch kind {
		case "numeric", "continuous":
			result.Kinds = append(result.Kinds, feature.KindNumeric)
		case "categorical", "discrete":
			result.Kinds = append(result.Kinds, feature.KindCategorical)
		default:
			return nil, errors.Newf("invalid kind %q for column %s", kind, name)
		}
		result.Header = append(result.Header, name)
	}
	return result, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed Metadata or an error.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading metadata yml file %s", filepath)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing metadata yml file %s", filepath)
	}
	return metadata, nil
}

/*
Kind takes a column index and returns the declared kind for it and
true, or false if the metadata has no declaration for the column.
*/
func (m *Metadata) Kind(col int) (feature.Kind, bool) {
	if m == nil || col < 0 || col >= len(m.Kinds) {
		return feature.KindCategorical, false
	}
	return m.Kinds[col], true
}

/*
Coerce takes a column index and a value and returns the value converted
to the declared kind of the column. Categorical columns keep numbers as
their textual form; numeric columns parse strings, failing with
feature.ErrInvalidInput if the string is not a number.
*/
func (m *Metadata) Coerce(col int, v feature.Value) (feature.Value, error) {
	kind, ok := m.Kind(col)
	if !ok || kind == v.Kind() {
		return v, nil
	}
	if kind == feature.KindCategorical {
		return feature.Categorical(v.String()), nil
	}
	parsed := feature.Parse(v.Str())
	if !parsed.IsNumeric() {
		return v, errors.Wrapf(feature.ErrInvalidInput, "column %s is numeric, got %q", m.Header.Name(col), v.Str())
	}
	return parsed, nil
}
