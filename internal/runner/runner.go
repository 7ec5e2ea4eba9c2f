// Package runner drives a machine once per host frame.
package runner

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of Step calls per second a frontend performs.
const FrameRate = 60

// Policy controls how the session reacts to machine errors.
type Policy int

const (
	// HaltOnError halts the session on the first error.
	HaltOnError Policy = iota
	// ContinueOnError skips unimplemented opcodes and halts on all other
	// errors.
	ContinueOnError
)

// Beeper plays the machine tone.
type Beeper interface {
	Beep()
}

// Option configures a Session.
type Option func(*Session)

// WithPolicy sets the error policy, HaltOnError is used by default.
func WithPolicy(policy Policy) Option {
	return func(s *Session) {
		s.policy = policy
	}
}

// WithBeeper sets the output for the machine tone.
func WithBeeper(beeper Beeper) Option {
	return func(s *Session) {
		s.beeper = beeper
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace() Option {
	return func(s *Session) {
		s.trace = true
	}
}

// Session owns a machine and applies the error policy and tone trigger to
// each frame.
type Session struct {
	logger  *log.Logger
	machine *chip8.Machine
	policy  Policy
	beeper  Beeper
	trace   bool

	frames  int
	skipped int
	halted  bool
	err     error
}

// New returns a session for the machine.
func New(logger *log.Logger, machine *chip8.Machine, opts ...Option) *Session {
	s := &Session{
		logger:  logger,
		machine: machine,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.trace {
		machine.SetTracer(s.traceInstruction)
	}
	return s
}

// Step runs one frame of the machine. Once the session is halted, the
// halting error is returned on every call without running the machine. A
// program exit halts the session with chip8.ErrExit.
func (s *Session) Step() error {
	if s.halted {
		return s.err
	}

	err := s.machine.Update()
	s.frames++

	if err != nil {
		if err = s.handleError(err); err != nil {
			s.halted = true
			s.err = err
			return err
		}
	}

	if s.machine.ShouldPlayTone() && s.beeper != nil {
		s.beeper.Beep()
	}
	return nil
}

// handleError returns nil if execution can continue after err.
func (s *Session) handleError(err error) error {
	switch {
	case errors.Is(err, chip8.ErrExit):
		s.logger.Info("Program exited", log.Int("frame", s.frames))
		return err

	case s.policy == ContinueOnError && errors.Is(err, chip8.ErrUnimplementedOpcode):
		if skipErr := s.machine.SkipInstruction(); skipErr != nil {
			return s.halt(skipErr)
		}
		s.logger.Warn("Skipping unimplemented opcode", log.Err(err))
		s.skipped++
		return nil

	default:
		return s.halt(err)
	}
}

// halt wraps the error that stops the session with the frame number. The
// host reports the returned error.
func (s *Session) halt(err error) error {
	s.logger.Warn("Execution halted",
		log.Err(err),
		log.Hex("pc", s.machine.PC()),
		log.Int("frame", s.frames))
	return fmt.Errorf("running frame %d: %w", s.frames, err)
}

func (s *Session) traceInstruction(pc uint16, ins chip8.Instruction) {
	s.logger.Debug("Executing",
		log.Hex("pc", pc),
		log.Hex("opcode", ins.Opcode),
		log.String("instruction", ins.String()))
}

// SetKey sets the pressed state of a keypad key.
func (s *Session) SetKey(index int, pressed bool) error {
	if err := s.machine.SetKey(index, pressed); err != nil {
		return fmt.Errorf("setting key: %w", err)
	}
	return nil
}

// Frame returns the machine frame if the display changed since the previous
// call.
func (s *Session) Frame() (chip8.Frame, bool) {
	return s.machine.TakeFrame()
}

// Machine returns the machine driven by the session.
func (s *Session) Machine() *chip8.Machine {
	return s.machine
}

// Halted returns whether the session stopped running the machine.
func (s *Session) Halted() bool {
	return s.halted
}

// Err returns the error that halted the session. A program exit is not
// reported as error.
func (s *Session) Err() error {
	if errors.Is(s.err, chip8.ErrExit) {
		return nil
	}
	return s.err
}

// Frames returns the number of frames run.
func (s *Session) Frames() int {
	return s.frames
}

// Skipped returns the number of opcodes skipped by ContinueOnError.
func (s *Session) Skipped() int {
	return s.skipped
}
