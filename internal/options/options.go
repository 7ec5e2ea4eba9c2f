// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendEbiten   = "ebiten"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Halt policies for errors returned by the machine.
const (
	HaltStop     = "stop"
	HaltContinue = "continue"
)

// Parameters contains file path options.
type Parameters struct {
	Input     string `flag:"i" usage:"input ROM file"`
	LoadState string `flag:"load-state" usage:"restore the machine state from a snapshot file before running"`
	SaveState string `flag:"save-state" usage:"write the machine state to a snapshot file on exit"`
}

// Flags contains behavior options.
type Flags struct {
	System   string `flag:"s" usage:"machine variant: chip8, schip (default: auto-detect)"`
	TickRate int    `flag:"tickrate" usage:"instructions executed per frame" default:"10"`
	Seed     uint64 `flag:"seed" usage:"seed of the random number generator, RND returns a constant without it"`
	Seeded   bool   // set when -seed was passed
	KeyCode  bool   `flag:"keycode" usage:"store the pressed key code on key wait instead of 1"`
	Halt     string `flag:"halt" usage:"error policy: stop, continue" default:"stop"`
	Debug    bool   `flag:"debug" usage:"enable debug logging and instruction trace"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// FrontendFlags contains presentation options.
type FrontendFlags struct {
	Frontend string `flag:"frontend" usage:"frontend: ebiten, terminal, headless" default:"ebiten"`
	Frames   int    `flag:"frames" usage:"number of frames to run, 0 runs until the program exits"`
	Pace     bool   `flag:"pace" usage:"run the headless frontend at 60 frames per second"`
	Scale    int    `flag:"scale" usage:"window scale factor of the ebiten frontend" default:"8"`
	NoSound  bool   `flag:"nosound" usage:"disable the beeper"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	FrontendFlags
}
