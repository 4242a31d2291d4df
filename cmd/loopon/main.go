package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klwxsrx/loopon-client/internal/pkg/cmd"
	"github.com/klwxsrx/loopon-client/internal/session"
	pkgcmd "github.com/klwxsrx/loopon-client/pkg/cmd"
)

func main() {
	ctx, cancel := pkgcmd.TermSignalContext(context.Background())
	exitCode := run(ctx, os.Args[1:])
	cancel()

	os.Exit(exitCode)
}

// run exits with 1 unless the command succeeds, a recovered panic keeps that code.
func run(ctx context.Context, args []string) (exitCode int) {
	exitCode = 1
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)
	defer pkgcmd.HandleAppPanic(ctx, infra.Logger.MustLoad())

	container := session.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.Keyring,
		infra.HTTPClientFactory,
		infra.HTTPRetry,
		infra.EventDispatcher,
		infra.WorkerPool,
		infra.Logger,
	)
	container.MustRegisterEventHandlers(infra.EventDispatcher.MustLoad())

	app := newApp(container, infra.WorkerPool.MustLoad(), os.Stdout)
	err := app.run(ctx, args)
	if err != nil {
		infra.Logger.MustLoad().WithError(err).Debug(ctx, "command failed")
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
