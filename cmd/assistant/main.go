package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vkovtun/go-assistant/internal/cli"
	"github.com/vkovtun/go-assistant/internal/config"
)

// main delegates to runMain so deferred calls (like closing the log file)
// run before the process terminates; os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle and exit codes.
func runMain() int {
	// Cancel the root context on SIGINT (Ctrl+C) or SIGTERM so the command
	// loop ends cleanly at the next prompt.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	return config.ExitCodeSuccess
}
