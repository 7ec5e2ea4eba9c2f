// Package pipeline prepares a runnable session from the program options.
package pipeline

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/snapshot"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates variant detection, ROM loading and machine setup.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute detects the variant, loads the ROM file and returns a session
// for it.
func (p *Pipeline) Execute(opts options.Program, sessionOpts ...runner.Option) (*runner.Session, error) {
	variant := p.detector.Detect(opts)

	rom, err := p.loader.Load(opts, variant)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	return p.ExecuteWithROM(rom, variant, opts, sessionOpts...)
}

// ExecuteWithROM sets up a machine for an already loaded ROM. This is
// useful for testing and programmatic usage.
func (p *Pipeline) ExecuteWithROM(rom []byte, variant chip8.Variant, opts options.Program,
	sessionOpts ...runner.Option) (*runner.Session, error) {

	m := chip8.New(config.MachineOptions(opts, variant)...)
	if err := m.Load(rom, opts.TickRate); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	if opts.LoadState != "" {
		if err := snapshot.Load(m, opts.LoadState); err != nil {
			return nil, fmt.Errorf("loading state: %w", err)
		}
		p.logger.Info("Restored machine state", log.String("file", opts.LoadState))
	}

	// an explicit seed replaces the generator of a restored state
	if opts.Seeded {
		m.SetSeed(opts.Seed)
	}

	if opts.Halt == options.HaltContinue {
		sessionOpts = append(sessionOpts, runner.WithPolicy(runner.ContinueOnError))
	}
	if opts.Debug {
		sessionOpts = append(sessionOpts, runner.WithTrace())
	}

	p.logger.Debug("Machine ready",
		log.Stringer("variant", m.Variant()),
		log.Int("rom_size", len(rom)),
		log.Int("tick_rate", m.TickRate()))

	return runner.New(p.logger, m, sessionOpts...), nil
}

// SaveState writes the machine state of the session to the file named by
// the save-state option, if set.
func (p *Pipeline) SaveState(opts options.Program, session *runner.Session) error {
	if opts.SaveState == "" {
		return nil
	}
	if err := snapshot.Save(session.Machine(), opts.SaveState); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	p.logger.Info("Saved machine state", log.String("file", opts.SaveState))
	return nil
}
