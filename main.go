package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/dendra-fileio/internal/cmd"
	"github.com/dendrascience/dendra-fileio/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, cmd.NewRootCmd(), fang.WithVersion(version.GetFullVersion())); err != nil {
		stop()
		os.Exit(1)
	}
}
