package main

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/dataset/csv"
	"github.com/pbanos/sapling/dataset/mongodataset"
	"github.com/pbanos/sapling/dataset/sqldataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
	"github.com/spf13/cobra"
)

// inputConfig holds the flags shared by every command that
// reads rows and grows a tree from them.
type inputConfig struct {
	*rootCmdConfig
	dataInput       string
	metadataInput   string
	table           string
	orderBy         string
	delimiter       string
	encoding        string
	matchPolicy     string
	trainProportion float64
}

func (ic *inputConfig) addFlags(cmd *cobra.Command, defaultTrainProportion float64) {
	cmd.PersistentFlags().StringVarP(&(ic.dataInput), "input", "i", "", "path to a delimited file or an SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the rows to use (defaults to STDIN, interpreted as a delimited stream)")
	cmd.PersistentFlags().StringVarP(&(ic.metadataInput), "metadata", "m", "", "path to a YML file naming the columns of the input and declaring their kind")
	cmd.PersistentFlags().StringVar(&(ic.table), "table", "", "table or collection with the rows when the input is a database (required for databases)")
	cmd.PersistentFlags().StringVar(&(ic.orderBy), "order-by", "", "column or field to order rows by when the input is a database")
	cmd.PersistentFlags().StringVarP(&(ic.delimiter), "delimiter", "d", `\t`, "field delimiter of delimited input")
	cmd.PersistentFlags().StringVarP(&(ic.encoding), "encoding", "e", "utf-8", "character encoding of delimited input, such as windows-1251")
	cmd.PersistentFlags().StringVar(&(ic.matchPolicy), "match-policy", "reference", "which value decides between >= and == when asking questions: reference or value")
	cmd.PersistentFlags().Float64VarP(&(ic.trainProportion), "train-proportion", "p", defaultTrainProportion, "proportion of the input rows, taken from the start, used to grow the tree")
}

func (ic *inputConfig) Validate() error {
	if _, err := ic.delimiterRune(); err != nil {
		return err
	}
	if _, err := feature.ParseMatchPolicy(ic.matchPolicy); err != nil {
		return err
	}
	if ic.trainProportion <= 0 || ic.trainProportion > 1 {
		return errors.Newf("train-proportion flag was set to %v: it must be in (0, 1]", ic.trainProportion)
	}
	if ic.isDatabase() && ic.table == "" {
		return errors.New("required table flag was not set for a database input")
	}
	return nil
}

func (ic *inputConfig) isDatabase() bool {
	_, ok := sqldataset.Driver(ic.dataInput)
	return ok || mongodataset.IsURL(ic.dataInput)
}

func (ic *inputConfig) delimiterRune() (rune, error) {
	switch ic.delimiter {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(ic.delimiter) != 1 {
		return 0, errors.Newf("delimiter flag was set to %q: it must be a single character", ic.delimiter)
	}
	r, _ := utf8.DecodeRuneInString(ic.delimiter)
	return r, nil
}

func (ic *inputConfig) metadata() (*yaml.Metadata, error) {
	if ic.metadataInput == "" {
		return nil, nil
	}
	ic.Logger().Debug().Str("path", ic.metadataInput).Msg("reading metadata")
	return yaml.ReadMetadataFromFile(ic.metadataInput)
}

// readSet reads the rows and header from the configured input.
func (ic *inputConfig) readSet(ctx context.Context) (*dataset.Dataset, feature.Header, error) {
	md, err := ic.metadata()
	if err != nil {
		return nil, nil, err
	}
	if mongodataset.IsURL(ic.dataInput) {
		ic.Logger().Debug().Str("collection", ic.table).Msg("reading rows from MongoDB")
		return mongodataset.ReadSetFromURL(ctx, ic.dataInput, ic.table, ic.orderBy, md)
	}
	if _, ok := sqldataset.Driver(ic.dataInput); ok {
		ic.Logger().Debug().Str("table", ic.table).Msg("reading rows from SQL database")
		db, err := sqldataset.Open(ctx, ic.dataInput)
		if err != nil {
			return nil, nil, err
		}
		defer db.Close()
		return sqldataset.ReadSet(ctx, db, ic.table, ic.orderBy, md)
	}
	delimiter, err := ic.delimiterRune()
	if err != nil {
		return nil, nil, err
	}
	opts := csv.Options{Delimiter: delimiter, Encoding: ic.encoding, Metadata: md}
	if ic.dataInput == "" {
		ic.Logger().Debug().Msg("reading rows from STDIN")
		return csv.ReadSet(os.Stdin, opts)
	}
	ic.Logger().Debug().Str("path", ic.dataInput).Msg("reading rows from file")
	return csv.ReadSetFromFile(ic.dataInput, opts)
}

// trainingSets reads the input and splits it into training and testing rows.
func (ic *inputConfig) trainingSets(ctx context.Context) (train, test *dataset.Dataset, h feature.Header, err error) {
	ds, h, err := ic.readSet(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	train, test, err = ds.Split(ic.trainProportion)
	if err != nil {
		return nil, nil, nil, err
	}
	ic.Logger().Info().Int("train", train.Count()).Int("test", test.Count()).Msg("rows split")
	return train, test, h, nil
}

func (ic *inputConfig) grower() *sapling.Grower {
	policy, _ := feature.ParseMatchPolicy(ic.matchPolicy)
	return &sapling.Grower{Logger: *ic.Logger(), Policy: policy}
}

func describeInput(input string) string {
	if input == "" {
		return "STDIN"
	}
	if i := strings.Index(input, "@"); i >= 0 && strings.Contains(input, "://") {
		return input[:strings.Index(input, "://")+3] + "***" + input[i:]
	}
	return input
}
