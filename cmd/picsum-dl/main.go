package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/picsum-downloader/internal/cli"
)

func main() {
	// Ctrl+C stops admitting new downloads; in-flight requests are cancelled.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Args); err != nil {
		stop()
		os.Exit(1)
	}
}
