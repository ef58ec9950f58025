package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nakulbh/tweetdash/internal/appconf"
	"github.com/nakulbh/tweetdash/internal/logging"
)

func main() {
	cfg, err := appconf.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}
