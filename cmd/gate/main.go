// Package main is the entry point for the gate hook engine.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/cmd/gate/commands"
	"go.trai.ch/gate/internal/app"
	"go.trai.ch/gate/internal/core/domain"
	_ "go.trai.ch/gate/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return domain.ExitConfigError
	}
	defer func() { _ = components.Tracer.Close() }()

	cli := commands.New(components.App, components.Logger)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			return domain.ExitValidationFailed
		}
		components.Logger.Error(err)
		return domain.ExitConfigError
	}
	return domain.ExitOK
}
