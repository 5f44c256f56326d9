/*
Package mongodataset reads sets of rows from a MongoDB collection.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const idField = "_id"

// IsURL reports whether the input is a MongoDB connection URL
func IsURL(input string) bool {
	return strings.HasPrefix(input, "mongodb://")
}

/*
ReadSet takes a context, a MongoDB session, a collection name, the name of
a field to sort documents by (or an empty string to keep natural order)
and optional metadata, and returns a dataset with a row per document of
the collection on the session's default database along the header naming
its columns, or an error.

The fields of the first document, in order and without _id, name the
columns. Every other document must define all of them. Numbers become
numeric values and any other value a categorical one, unless metadata
declares otherwise.
*/
func ReadSet(ctx context.Context, session *mgo.Session, collection, sortBy string, md *yaml.Metadata) (*dataset.Dataset, feature.Header, error) {
	query := session.DB("").C(collection).Find(nil)
	if sortBy != "" {
		query = query.Sort(sortBy)
	}
	iter := query.Iter()
	var header feature.Header
	var rows []feature.Row
	for {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, nil, err
		}
		var doc bson.D
		if !iter.Next(&doc) {
			break
		}
		if header == nil {
			header = Header(doc)
			if md != nil && len(md.Header) != len(header) {
				iter.Close()
				return nil, nil, errors.Wrapf(feature.ErrInvalidInput, "metadata declares %d columns, documents of %s have %d", len(md.Header), collection, len(header))
			}
		}
		row, err := Row(doc, header)
		if err != nil {
			iter.Close()
			return nil, nil, errors.Wrapf(err, "document %d of collection %s", len(rows)+1, collection)
		}
		for i, v := range row {
			row[i], err = md.Coerce(i, v)
			if err != nil {
				iter.Close()
				return nil, nil, errors.Wrapf(err, "document %d of collection %s", len(rows)+1, collection)
			}
		}
		rows = append(rows, row)
	}
	if err := iter.Close(); err != nil {
		return nil, nil, errors.Wrapf(err, "reading collection %s", collection)
	}
	ds, err := dataset.New(rows)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading collection %s", collection)
	}
	if md != nil {
		header = md.Header
	}
	return ds, header, nil
}

/*
ReadSetFromURL takes a context, a MongoDB URL with the database to use,
a collection name, a sort field and optional metadata, dials the
database and uses ReadSet to return the rows of the collection.
*/
func ReadSetFromURL(ctx context.Context, url, collection, sortBy string, md *yaml.Metadata) (*dataset.Dataset, feature.Header, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, nil, errors.Wrap(err, "connecting to MongoDB")
	}
	defer session.Close()
	return ReadSet(ctx, session, collection, sortBy, md)
}

// Header takes a document and returns the names of its fields
// other than _id, in order.
func Header(doc bson.D) feature.Header {
	var h feature.Header
	for _, e := range doc {
		if e.Name != idField {
			h = append(h, e.Name)
		}
	}
	return h
}

/*
Row takes a document and a header and returns a row with the document's
value for each column of the header, or an ErrInvalidInput error if the
document lacks one of them or holds a null value.
*/
func Row(doc bson.D, h feature.Header) (feature.Row, error) {
	m := doc.Map()
	row := make(feature.Row, len(h))
	for i, name := range h {
		raw, ok := m[name]
		if !ok {
			return nil, errors.Wrapf(feature.ErrInvalidInput, "missing field %s", name)
		}
		v, err := value(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", name)
		}
		row[i] = v
	}
	return row, nil
}

func value(raw interface{}) (feature.Value, error) {
	switch v := raw.(type) {
	case nil:
		return feature.Value{}, errors.Wrap(feature.ErrInvalidInput, "null value")
	case int:
		return feature.Numeric(float64(v)), nil
	case int32:
		return feature.Numeric(float64(v)), nil
	case int64:
		return feature.Numeric(float64(v)), nil
	case float64:
		return feature.Numeric(v), nil
	case string:
		return feature.Categorical(v), nil
	case bool:
		return feature.Categorical(strconv.FormatBool(v)), nil
	case bson.ObjectId:
		return feature.Categorical(v.Hex()), nil
	}
	return feature.Categorical(fmt.Sprintf("%v", raw)), nil
}
