// Package main is the entry point for the cratectl CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cratectl/cmd/cratectl/commands"
	"cratectl/internal/app"
	_ "cratectl/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
