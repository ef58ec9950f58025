package tweetdb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nakulbh/tweetdash/internal/logging"
)

// Tweet is one stored dataset row. RowIndex is the row's position in the
// source file and is preserved across import.
type Tweet struct {
	RowIndex     int64
	RawTweet     string
	Month        string
	Sentiment    float64
	Subjectivity float64
	Dimension1   float64
	Dimension2   float64
}

// ImportTweets replaces the stored dataset with tweets in a single transaction.
func (c *Client) ImportTweets(ctx context.Context, tweets []Tweet) (err error) {
	startTime := time.Now()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "import_tweets")

	if _, err := tx.ExecContext(ctx, `DELETE FROM tweets`); err != nil {
		return fmt.Errorf("error clearing tweets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tweets (
			row_index, raw_tweet, month, sentiment, subjectivity, dimension_1, dimension_2
		) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer logging.HandleDeferredError(&err, stmt.Close, c.logger, "close_insert_statement")

	for _, t := range tweets {
		_, err := stmt.ExecContext(ctx,
			t.RowIndex, t.RawTweet, t.Month, t.Sentiment, t.Subjectivity, t.Dimension1, t.Dimension2)
		if err != nil {
			return fmt.Errorf("error inserting tweet %d: %w", t.RowIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	logging.LogOperation(c.logger, "tweets_imported",
		slog.Int("tweet_count", len(tweets)),
		slog.Duration("duration", time.Since(startTime)))
	return nil
}

// QueryTweets returns every stored tweet ordered by row index.
func (c *Client) QueryTweets(ctx context.Context) ([]Tweet, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT row_index, raw_tweet, month, sentiment, subjectivity, dimension_1, dimension_2
		FROM tweets
		ORDER BY row_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var tweets []Tweet
	for rows.Next() {
		var t Tweet
		err := rows.Scan(&t.RowIndex, &t.RawTweet, &t.Month, &t.Sentiment, &t.Subjectivity,
			&t.Dimension1, &t.Dimension2)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

// CountTweets returns the number of stored tweets, grouped by month.
func (c *Client) CountTweets(ctx context.Context) (map[string]int, error) {
	rows, err := c.DB.QueryContext(ctx, `SELECT month, COUNT(*) FROM tweets GROUP BY month`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	counts := make(map[string]int)
	for rows.Next() {
		var month string
		var n int
		if err := rows.Scan(&month, &n); err != nil {
			return nil, err
		}
		counts[month] = n
	}
	return counts, rows.Err()
}
