package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	c := &cli{out: os.Stdout, errOut: os.Stderr}
	err := newRootCmd(c).ExecuteContext(ctx)
	_ = c.teardown()
	stop()
	if err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
