package tweets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nakulbh/tweetdash/internal/appconf"
	"github.com/nakulbh/tweetdash/internal/logging"
	"github.com/nakulbh/tweetdash/tweetdb"
)

// IsSQLiteSource reports whether path names a database produced by tweetdb
// rather than a CSV file.
func IsSQLiteSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Load reads the dataset at path once. Any failure here is fatal to the
// server: the returned error names the file and, for malformed input, the
// offending row and column.
func Load(ctx context.Context, path string, logger *slog.Logger) (*Dataset, error) {
	startTime := time.Now()

	var rows []Tweet
	var err error
	if IsSQLiteSource(path) {
		rows, err = loadSQLite(ctx, path)
	} else {
		rows, err = loadCSV(path, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}

	ds, err := NewDataset(path, rows)
	if err != nil {
		return nil, err
	}

	logging.LogOperation(logger, "dataset_loaded",
		slog.String("source", path),
		slog.Int("tweet_count", ds.Len()),
		slog.Int("month_count", len(ds.months)),
		slog.Duration("duration", time.Since(startTime)))
	return ds, nil
}

func loadCSV(path string, logger *slog.Logger) ([]Tweet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer logging.SafeCloseWithLogging(f, logger, "close_dataset_file")

	return ParseCSV(f)
}

func loadSQLite(ctx context.Context, path string) ([]Tweet, error) {
	// sql.Open would silently create an empty database
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	client, err := tweetdb.NewClient(tweetdb.NewConfig(path, appconf.Development, false))
	if err != nil {
		return nil, err
	}
	defer client.Close() // nolint:errcheck

	stored, err := client.QueryTweets(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]Tweet, len(stored))
	for i, s := range stored {
		rows[i] = Tweet{
			Index:        int(s.RowIndex),
			RawTweet:     s.RawTweet,
			Month:        s.Month,
			Sentiment:    s.Sentiment,
			Subjectivity: s.Subjectivity,
			Dim1:         s.Dimension1,
			Dim2:         s.Dimension2,
		}
	}
	return rows, nil
}

// ToStoredRows converts the dataset into tweetdb rows for import.
func (d *Dataset) ToStoredRows() []tweetdb.Tweet {
	out := make([]tweetdb.Tweet, len(d.tweets))
	for i, t := range d.tweets {
		out[i] = tweetdb.Tweet{
			RowIndex:     int64(t.Index),
			RawTweet:     t.RawTweet,
			Month:        t.Month,
			Sentiment:    t.Sentiment,
			Subjectivity: t.Subjectivity,
			Dimension1:   t.Dim1,
			Dimension2:   t.Dim2,
		}
	}
	return out
}
