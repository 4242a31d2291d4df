package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

// TermSignalContext is cancelled on SIGTERM or SIGINT so in-flight requests stop with the process.
func TermSignalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
}
