package app

import (
	"log/slog"

	"github.com/nakulbh/tweetdash/internal/appconf"
	"github.com/nakulbh/tweetdash/internal/tweets"
)

// Application holds the dependencies shared by the HTTP handlers, helpers
// and middleware: configuration, the logger and the read-only dataset.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Dataset *tweets.Dataset
}
