// Package app provides the main application helpers of the interpreter.
package app

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Name of the program.
const Name = "retrochip8"

// PrintBanner logs the program version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(Name, log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo logs the information about the loaded ROM and the machine.
func PrintInfo(logger *log.Logger, opts options.Program, session *runner.Session) {
	if opts.Quiet {
		return
	}

	m := session.Machine()
	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Stringer("variant", m.Variant()),
		log.Int("tick_rate", m.TickRate()),
		log.String("frontend", opts.Frontend),
	)
	if opts.Halt == options.HaltContinue {
		logger.Warn("Unimplemented opcodes will be skipped, programs using them may misbehave")
	}
}

// WindowTitle returns the title of the frontend window for a ROM file.
func WindowTitle(input string) string {
	name := input
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return Name
	}
	return fmt.Sprintf("%s - %s", Name, name)
}
