package restapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/nakulbh/tweetdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary models.DatasetSummary
	decodeEntry(t, model, &summary)

	assert.True(t, strings.HasSuffix(summary.Source, "tweets.csv"))
	assert.Equal(t, 10, summary.TweetCount)
	assert.Equal(t, 3, summary.MonthCount)
	assert.Positive(t, summary.LoadedAt)
}

func TestHealthHandlerIsNotRateLimited(t *testing.T) {
	api := createTestApiWithRateLimit(t, 1)
	server := newTestServer(t, api)

	for i := 0; i < 5; i++ {
		resp, err := http.Get(server.URL + "/healthz")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
