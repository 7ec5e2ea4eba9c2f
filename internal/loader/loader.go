// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

// ErrEmptyROM is returned for ROM files without any content.
var ErrEmptyROM = errors.New("rom file is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file named by the input option. ROMs that do not fit
// into the memory of the variant are rejected with a *chip8.ROMSizeError.
func (l *Loader) Load(opts options.Program, variant chip8.Variant) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	rom, err := l.LoadFromReader(file, variant)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", opts.Input, err)
	}
	return rom, nil
}

// LoadFromReader reads a ROM from the reader. At most one byte more than
// the variant capacity is read to detect oversized programs.
func (l *Loader) LoadFromReader(reader io.Reader, variant chip8.Variant) ([]byte, error) {
	capacity := variant.MaxROMSize()
	rom, err := io.ReadAll(io.LimitReader(reader, int64(capacity)+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM data: %w", err)
	}

	switch {
	case len(rom) == 0:
		return nil, ErrEmptyROM
	case len(rom) > capacity:
		return nil, &chip8.ROMSizeError{Size: len(rom), Capacity: capacity}
	}
	return rom, nil
}
