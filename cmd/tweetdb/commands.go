package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/nakulbh/tweetdash/internal/appconf"
	"github.com/nakulbh/tweetdash/internal/logging"
	"github.com/nakulbh/tweetdash/internal/tweets"
	"github.com/nakulbh/tweetdash/tweetdb"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tweetdb",
		Short:         "Manage SQLite copies of the tweet dataset",
		SilenceUsage: true,
	}
	root.AddCommand(newImportCmd(), newStatsCmd())
	return root
}

func newImportCmd() *cobra.Command {
	var csvPath, dbPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a tweet CSV into a SQLite database",
		Long: `Read the processed tweet CSV and replace the contents of the tweets
table in the target database. The resulting file can be served with
"api -data <file>.db".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tweets.IsSQLiteSource(csvPath) {
				return fmt.Errorf("--csv must name a CSV file, got %s", csvPath)
			}
			if !tweets.IsSQLiteSource(dbPath) {
				return fmt.Errorf("--db must end in .db, .sqlite or .sqlite3, got %s", dbPath)
			}
			return runImport(cmd.Context(), cmd.OutOrStdout(), csvPath, dbPath, verbose)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "ProcessedTweets.csv", "source CSV file")
	cmd.Flags().StringVar(&dbPath, "db", "tweets.db", "destination SQLite file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log database operations")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-month tweet counts of a SQLite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(dbPath); err != nil {
				return err
			}
			client, err := tweetdb.NewClient(tweetdb.NewConfig(dbPath, appconf.Development, false))
			if err != nil {
				return err
			}
			defer logging.SafeCloseWithLogging(client, slog.Default(), "tweetdb")

			counts, err := client.CountTweets(cmd.Context())
			if err != nil {
				return err
			}
			printCounts(cmd.OutOrStdout(), counts)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "tweets.db", "SQLite file to inspect")
	return cmd
}

func runImport(ctx context.Context, out io.Writer, csvPath, dbPath string, verbose bool) error {
	logger := logging.NewTextLogger(io.Discard, slog.LevelInfo)
	if verbose {
		logger = logging.NewTextLogger(out, slog.LevelDebug)
	}

	ds, err := tweets.Load(ctx, csvPath, logger)
	if err != nil {
		return err
	}

	client, err := tweetdb.NewClient(tweetdb.NewConfig(dbPath, appconf.Development, verbose))
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(client, logger, "tweetdb")

	if err := client.ImportTweets(ctx, ds.ToStoredRows()); err != nil {
		return err
	}

	counts, err := client.CountTweets(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "imported %d tweets from %s into %s\n", ds.Len(), csvPath, dbPath)
	printCounts(out, counts)
	return nil
}

func printCounts(out io.Writer, counts map[string]int) {
	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		_, _ = fmt.Fprintf(out, "  %-12s %d\n", m, counts[m])
	}
}
