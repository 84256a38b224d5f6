// Package main is the entry point for the tunedeck CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/thoreinstein/tunedeck/cmd/tunedeck/commands"
	"github.com/thoreinstein/tunedeck/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
}
