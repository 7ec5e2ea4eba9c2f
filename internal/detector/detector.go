// Package detector handles machine variant detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles variant detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new variant detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the machine variant from options or file auto-detection.
// It first checks if a variant is explicitly specified in options, otherwise
// attempts to detect the variant from the input filename extension.
func (d *Detector) Detect(opts options.Program) chip8.Variant {
	variant, _ := chip8.VariantFromString(opts.System)
	if variant == "" {
		variant = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected variant",
			log.Stringer("variant", variant),
			log.String("file", opts.Input))
	}
	return variant
}

// detectFromFile determines the variant based on file extension.
func (d *Detector) detectFromFile(filename string) chip8.Variant {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8":
		return chip8.Classic
	case ".sc8", ".schip":
		return chip8.SuperChip
	default:
		// the extended variant runs classic programs as well
		return chip8.SuperChip
	}
}
