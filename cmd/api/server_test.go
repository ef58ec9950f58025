package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/nakulbh/tweetdash/internal/appconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testConfig() appconf.Config {
	return appconf.Config{
		Port:      4000,
		EnvName:   "test",
		Env:       appconf.Test,
		DataPath:  filepath.Join("..", "..", "testdata", "tweets.csv"),
		RateLimit: 0,
		LogLevel:  "info",
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := testConfig()
	cfg.Env = appconf.Production
	newLogger(cfg, &buf).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	cfg.Env = appconf.Development
	cfg.LogLevel = "warn"
	logger := newLogger(cfg, &buf)
	logger.Info("dropped")
	logger.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestNewApplicationMissingDataset(t *testing.T) {
	cfg := testConfig()
	cfg.DataPath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := newApplication(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestServeAndShutdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application, err := newApplication(context.Background(), testConfig(), logger)
	require.NoError(t, err)

	handler, api := newHandler(application)
	defer api.Stop()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, newServer(ln.Addr().String(), handler, logger), ln, logger)
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	base := "http://" + ln.Addr().String()

	for _, path := range []string{"/healthz", "/api/controls.json", "/", "/static/dashboard.js"} {
		resp, err := client.Get(base + path)
		require.NoError(t, err, path)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, err := client.Get(base + "/nope")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}
