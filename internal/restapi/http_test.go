package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/nakulbh/tweetdash/internal/app"
	"github.com/nakulbh/tweetdash/internal/appconf"
	"github.com/nakulbh/tweetdash/internal/logging"
	"github.com/nakulbh/tweetdash/internal/models"
	"github.com/nakulbh/tweetdash/internal/tweets"
	"github.com/stretchr/testify/require"
)

// createTestApi creates a RestAPI over testdata/tweets.csv with rate limiting disabled.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithRateLimit(t, 0)
}

func createTestApiWithRateLimit(t *testing.T, rateLimit int) *RestAPI {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ds, err := tweets.Load(context.Background(), models.GetFixturePath(t, "tweets.csv"), logger)
	require.NoError(t, err)

	return newTestApi(t, ds, rateLimit)
}

// createTestApiWithTweets creates a RestAPI over rows built in the test.
func createTestApiWithTweets(t *testing.T, rows []tweets.Tweet) *RestAPI {
	t.Helper()
	ds, err := tweets.NewDataset("memory", rows)
	require.NoError(t, err)
	return newTestApi(t, ds, 0)
}

func newTestApi(t *testing.T, ds *tweets.Dataset, rateLimit int) *RestAPI {
	t.Helper()
	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			RateLimit: rateLimit,
		},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Dataset: ds,
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Stop)
	return api
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(api.Handler(router))
	t.Cleanup(server.Close)
	return server
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	server := newTestServer(t, api)
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	return resp, decodeResponse(t, resp)
}

func postAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint, body string) (*http.Response, models.ResponseModel) {
	server := newTestServer(t, api)
	resp, err := http.Post(server.URL+endpoint, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp, decodeResponse(t, resp)
}

func decodeResponse(t *testing.T, resp *http.Response) models.ResponseModel {
	t.Helper()
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return response
}

// decodeEntry re-decodes the envelope's data.entry into out.
func decodeEntry(t *testing.T, model models.ResponseModel, out any) {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	raw, err := json.Marshal(data["entry"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// fieldErrorsOf decodes a 400 validation body.
func fieldErrorsOf(t *testing.T, resp *http.Response) map[string][]string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.FieldErrors
}

func getRaw(t *testing.T, api *RestAPI, endpoint string) *http.Response {
	t.Helper()
	server := newTestServer(t, api)
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	return resp
}

func stringsReader(s string) io.Reader {
	return bytes.NewBufferString(s)
}
