// Package main is the wgpw CLI executable
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/stolasapp/wgpw/internal/command"
)

func main() { os.Exit(run()) }

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return command.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
