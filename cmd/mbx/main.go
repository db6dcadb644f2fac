package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lukehollenback/mbx/logging"
)

const (
	Name = "≪mbx≫"
)

func main() {
	//
	// Cancel any in-flight request if the operating system interrupts us.
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logging.For(Name).WithError(err).Error("Command failed.")
		stop()
		os.Exit(1)
	}
}
