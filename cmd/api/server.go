package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/nakulbh/tweetdash/internal/app"
	"github.com/nakulbh/tweetdash/internal/appconf"
	"github.com/nakulbh/tweetdash/internal/logging"
	"github.com/nakulbh/tweetdash/internal/restapi"
	"github.com/nakulbh/tweetdash/internal/tweets"
	"github.com/nakulbh/tweetdash/internal/webui"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// newLogger returns a JSON logger in production and a text logger elsewhere.
func newLogger(cfg appconf.Config, w io.Writer) *slog.Logger {
	level, err := appconf.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if cfg.Env == appconf.Production {
		return logging.NewStructuredLogger(w, level)
	}
	return logging.NewTextLogger(w, level)
}

// newApplication loads the dataset named by cfg. A missing or malformed
// dataset is the only fatal startup error.
func newApplication(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	ds, err := tweets.Load(ctx, cfg.DataPath, logger)
	if err != nil {
		return nil, err
	}
	return &app.Application{
		Config:  cfg,
		Logger:  logger,
		Dataset: ds,
	}, nil
}

// newHandler builds the router and middleware. The returned RestAPI must be
// stopped once the server is done.
func newHandler(application *app.Application) (http.Handler, *restapi.RestAPI) {
	api := restapi.NewRestAPI(application)
	router := httprouter.New()
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 page not found", http.StatusNotFound)
	})
	return api.Handler(router), api
}

func newServer(addr string, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.String("addr", ln.Addr().String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	application, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}

	handler, api := newHandler(application)
	defer api.Stop()

	srv := newServer(fmt.Sprintf(":%d", cfg.Port), handler, logger)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("env", cfg.Env.String()),
		slog.String("data", cfg.DataPath),
		slog.Int("tweets", application.Dataset.Len()))

	return serve(ctx, srv, ln, logger)
}
