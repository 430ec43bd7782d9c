// cmd/rcsctl/main.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	console "github.com/phsym/console-slog"
)

type options struct {
	Config  string `short:"c" long:"config" default:"config/config.yaml" description:"Path to the YAML configuration"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`

	Reset     resetCommand     `command:"reset" description:"Reset controller errors and alarm states"`
	Enable    enableCommand    `command:"enable" description:"Enable drives on all axes"`
	Start     startCommand     `command:"start" description:"Start a stored program by number"`
	Move      moveCommand      `command:"move" description:"Linear move of the TCP to a Base frame point"`
	Home      homeCommand      `command:"home" description:"Move to the calibrated home position"`
	Status    statusCommand    `command:"status" description:"Read the controller status word"`
	Calibrate calibrateCommand `command:"calibrate" description:"Interactive 3-point Base frame calibration"`
	Init      initCommand      `command:"init" description:"Startup sequence: reset errors, enable drives, go home"`
}

var opts options

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.LongDescription = "rcsctl - Modbus TCP control client for Eidos RCS arm controllers"

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(2) // go-flags already printed the usage error
		}
		fmt.Fprintln(os.Stderr, "rcsctl:", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{Level: level}))
}
