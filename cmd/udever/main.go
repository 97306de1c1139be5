package main

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/udevtools/udever/cmd/udever/cli"
	"github.com/udevtools/udever/internal"
	"github.com/udevtools/udever/internal/bus"
)

var (
	version        = internal.NotProvided
	gitCommit      = internal.NotProvided
	buildDate      = internal.NotProvided
	gitDescription = internal.NotProvided
)

func main() {
	internal.SetBuildInfo(version, gitCommit, buildDate, gitDescription, runtime.Version())

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		bus.ExitWithInterrupt()
		os.Exit(130)
	}()

	app := cli.Application()

	err := app.Execute()
	bus.Exit()
	if err != nil {
		os.Exit(1)
	}
}
