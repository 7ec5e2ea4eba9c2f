// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.Seeded = true
		}
	})

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if _, err := chip8.VariantFromString(opts.System); err != nil {
		return fmt.Errorf("invalid -s option: %w", err)
	}

	opts.Frontend = strings.ToLower(opts.Frontend)
	if err := oneOf("frontend", opts.Frontend,
		options.FrontendEbiten, options.FrontendTerminal, options.FrontendHeadless); err != nil {
		return err
	}

	opts.Halt = strings.ToLower(opts.Halt)
	if err := oneOf("halt", opts.Halt, options.HaltStop, options.HaltContinue); err != nil {
		return err
	}

	if opts.TickRate < 1 {
		return fmt.Errorf("tick rate %d must be at least 1", opts.TickRate)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("frame count %d must not be negative", opts.Frames)
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	return nil
}

func oneOf(name, value string, valid ...string) error {
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s: %s. Valid options: %s",
		name, value, strings.Join(valid, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.LoadState, "load-state", "", "restore the machine state from a snapshot file before running")
	flags.StringVar(&opts.SaveState, "save-state", "", "write the machine state to a snapshot file on exit")
	flags.StringVar(&opts.System, "s", "", "machine variant (chip8, schip) - if not auto-detected from file extension")
	flags.IntVar(&opts.TickRate, "tickrate", chip8.DefaultTickRate, "instructions executed per frame")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, RND returns a constant without it")
	flags.BoolVar(&opts.KeyCode, "keycode", false, "store the pressed key code on key wait instead of 1")
	flags.StringVar(&opts.Halt, "halt", options.HaltStop, "error policy (stop, continue) - continue skips unimplemented opcodes")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging and instruction trace")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.StringVar(&opts.Frontend, "frontend", options.FrontendEbiten, "frontend to run the ROM in (ebiten, terminal, headless)")
	flags.IntVar(&opts.Frames, "frames", 0, "number of frames to run, 0 runs until the program exits")
	flags.BoolVar(&opts.Pace, "pace", false, "run the headless frontend at 60 frames per second")
	flags.IntVar(&opts.Scale, "scale", 8, "window scale factor of the ebiten frontend")
	flags.BoolVar(&opts.NoSound, "nosound", false, "disable the beeper")
}
