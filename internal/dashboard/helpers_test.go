package dashboard

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/nakulbh/tweetdash/internal/tweets"
	"github.com/stretchr/testify/require"
)

func loadTestDataset(t *testing.T) *tweets.Dataset {
	t.Helper()
	ds, err := tweets.Load(context.Background(),
		filepath.Join("..", "..", "testdata", "tweets.csv"),
		slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return ds
}

func indicesOf(ts []tweets.Tweet) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.Index
	}
	return out
}
