//go:build headless

// Package ebitenui runs a session in a window.
package ebitenui

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned when the binary was built without window support.
var ErrUnavailable = errors.New("window frontend is not available in headless builds")

// Frontend is a placeholder for builds without window support.
type Frontend struct{}

// New returns a frontend that fails to run.
func New(_ *log.Logger, _ string, _ int) *Frontend {
	return &Frontend{}
}

// Run always returns ErrUnavailable.
func (f *Frontend) Run(_ context.Context, _ *runner.Session) error {
	return ErrUnavailable
}
