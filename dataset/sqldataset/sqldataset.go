/*
Package sqldataset reads sets of rows from a table of an SQL database.
SQLite3 database files and PostgreSQL databases are supported.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
)

var numericTypes = map[string]bool{
	"INTEGER": true, "INT": true, "INT2": true, "INT4": true, "INT8": true,
	"SMALLINT": true, "BIGINT": true, "REAL": true, "FLOAT": true,
	"FLOAT4": true, "FLOAT8": true, "DOUBLE": true, "NUMERIC": true,
	"DECIMAL": true,
}

/*
Driver takes an input string and returns the name of the database/sql
driver able to open it and true: "postgres" for postgres:// and
postgresql:// URLs and "sqlite3" for paths ending in .db. It returns
false for any other input.
*/
func Driver(input string) (string, bool) {
	if strings.HasPrefix(input, "postgres://") || strings.HasPrefix(input, "postgresql://") {
		return "postgres", true
	}
	if strings.HasSuffix(input, ".db") {
		return "sqlite3", true
	}
	return "", false
}

/*
Open takes a context and an input string accepted by Driver and returns
a *sql.DB for it, or an error if no driver handles the input or the
database cannot be reached.
*/
func Open(ctx context.Context, input string) (*sql.DB, error) {
	driver, ok := Driver(input)
	if !ok {
		return nil, errors.Newf("no SQL driver for %q", input)
	}
	db, err := sql.Open(driver, input)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database", driver)
	}
	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "connecting to %s database", driver)
	}
	return db, nil
}

/*
ReadSet takes a context, a database, a table name, the name of a column to
order rows by (or an empty string to keep the database's order) and
optional metadata, and returns a dataset with every row of the table along
the header naming its columns, or an error.

Values of integer and floating point columns become numeric values and
values of any other column categorical ones, unless metadata declares
otherwise. NULL values are rejected.
*/
func ReadSet(ctx context.Context, db *sql.DB, table, orderBy string, md *yaml.Metadata) (*dataset.Dataset, feature.Header, error) {
	query := fmt.Sprintf("SELECT * FROM %s", quote(table))
	if orderBy != "" {
		query = fmt.Sprintf("%s ORDER BY %s", query, quote(orderBy))
	}
	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "querying table %s", table)
	}
	defer rs.Close()
	columnTypes, err := rs.ColumnTypes()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading columns of table %s", table)
	}
	header := make(feature.Header, len(columnTypes))
	numeric := make([]bool, len(columnTypes))
	for i, ct := range columnTypes {
		header[i] = ct.Name()
		numeric[i] = numericTypes[strings.ToUpper(ct.DatabaseTypeName())]
	}
	if md != nil {
		if len(md.Header) != len(header) {
			return nil, nil, errors.Wrapf(feature.ErrInvalidInput, "metadata declares %d columns, table %s has %d", len(md.Header), table, len(header))
		}
		header = md.Header
	}
	var rows []feature.Row
	for rs.Next() {
		raw := make([]interface{}, len(columnTypes))
		ptrs := make([]interface{}, len(raw))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		err = rs.Scan(ptrs...)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "scanning row %d of table %s", len(rows)+1, table)
		}
		row := make(feature.Row, len(raw))
		for i, rv := range raw {
			v, err := Value(rv, numeric[i])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "row %d column %s", len(rows)+1, header.Name(i))
			}
			row[i], err = md.Coerce(i, v)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "row %d", len(rows)+1)
			}
		}
		rows = append(rows, row)
	}
	if err = rs.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "reading table %s", table)
	}
	ds, err := dataset.New(rows)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading table %s", table)
	}
	return ds, header, nil
}

/*
Value takes a value scanned from a database column and whether the column
has a numeric type, and returns the corresponding feature.Value. It
returns an ErrInvalidInput error for NULL values and for textual values
of numeric columns that cannot be parsed as numbers.
*/
func Value(raw interface{}, numeric bool) (feature.Value, error) {
	switch v := raw.(type) {
	case nil:
		return feature.Value{}, errors.Wrap(feature.ErrInvalidInput, "NULL value")
	case int64:
		return feature.Numeric(float64(v)), nil
	case float64:
		return feature.Numeric(v), nil
	case bool:
		return feature.Categorical(strconv.FormatBool(v)), nil
	case time.Time:
		return feature.Categorical(v.Format(time.RFC3339)), nil
	case []byte:
		return textValue(string(v), numeric)
	case string:
		return textValue(v, numeric)
	}
	return feature.Categorical(fmt.Sprintf("%v", raw)), nil
}

func textValue(s string, numeric bool) (feature.Value, error) {
	if !numeric {
		return feature.Categorical(s), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return feature.Value{}, errors.Wrapf(feature.ErrInvalidInput, "numeric column with value %q", s)
	}
	return feature.Numeric(f), nil
}

func quote(identifier string) string {
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(identifier, `"`, `""`))
}
