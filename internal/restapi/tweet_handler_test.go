package restapi

import (
	"net/http"
	"testing"

	"github.com/nakulbh/tweetdash/internal/tweets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/tweet/4.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tweet tweets.Tweet
	decodeEntry(t, model, &tweet)

	assert.Equal(t, tweets.Tweet{
		Index:        4,
		RawTweet:     "Terrible service, never going back",
		Month:        "March",
		Sentiment:    -0.8,
		Subjectivity: 0.9,
		Dim1:         -2.0,
		Dim2:         -1.9,
	}, tweet)
}

func TestTweetHandlerNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/tweet/99")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "resource not found", model.Text)
	assert.Nil(t, model.Data)
}

func TestTweetHandlerInvalidIndex(t *testing.T) {
	api := createTestApi(t)
	resp := getRaw(t, api, "/api/tweet/abc")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrorsOf(t, resp), "index")
}
