// Package main is the entry point for the hpvdraw CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/hpvdraw/cmd"
)

func main() {
	// Cancel on SIGINT so a draw stops before writing partial results.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	code := cmd.RunCLI(ctx, cmd.Root(), os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
