// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineOptions converts the program options to machine options for the
// given variant.
func MachineOptions(opts options.Program, variant chip8.Variant) []chip8.Option {
	machineOpts := []chip8.Option{
		chip8.WithVariant(variant),
		chip8.WithTickRate(opts.TickRate),
	}
	if opts.KeyCode {
		machineOpts = append(machineOpts, chip8.WithKeyCodeOnWait())
	}
	return machineOpts
}
