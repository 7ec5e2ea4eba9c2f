// Package headless runs a session without presentation.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Frontend steps a session for a number of frames as fast as possible or
// paced at the frame rate.
type Frontend struct {
	logger *log.Logger
	frames int
	paced  bool
	output io.Writer

	last     chip8.Frame
	hasFrame bool
}

// Option configures the headless frontend.
type Option func(*Frontend)

// WithFrames limits the run to the given number of frames. 0 runs until the
// session halts or the context is canceled.
func WithFrames(frames int) Option {
	return func(f *Frontend) {
		f.frames = frames
	}
}

// WithPacing runs at runner.FrameRate instead of as fast as possible.
func WithPacing() Option {
	return func(f *Frontend) {
		f.paced = true
	}
}

// WithOutput writes the last frame as text to w when the run ends.
func WithOutput(w io.Writer) Option {
	return func(f *Frontend) {
		f.output = w
	}
}

// New returns a headless frontend.
func New(logger *log.Logger, opts ...Option) *Frontend {
	f := &Frontend{
		logger: logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run steps the session until the frame limit is reached, the session
// halts or the context is canceled. A program exit is not an error.
func (f *Frontend) Run(ctx context.Context, session *runner.Session) error {
	var ticker *time.Ticker
	if f.paced {
		ticker = time.NewTicker(time.Second / runner.FrameRate)
		defer ticker.Stop()
	}

	err := f.loop(ctx, session, ticker)

	if f.output != nil && f.hasFrame {
		if _, werr := io.WriteString(f.output, frontend.Text(f.last)); werr != nil {
			return fmt.Errorf("writing frame: %w", werr)
		}
	}
	return err
}

func (f *Frontend) loop(ctx context.Context, session *runner.Session, ticker *time.Ticker) error {
	for frame := 0; f.frames == 0 || frame < f.frames; frame++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("headless run: %w", err)
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("headless run: %w", ctx.Err())
			case <-ticker.C:
			}
		}

		if err := session.Step(); err != nil {
			f.logger.Debug("Session halted", log.Int("frame", frame))
			f.takeFrame(session)
			return session.Err()
		}
		f.takeFrame(session)
	}
	return nil
}

func (f *Frontend) takeFrame(session *runner.Session) {
	if frame, ok := session.Frame(); ok {
		f.last = frame
		f.hasFrame = true
	}
}
