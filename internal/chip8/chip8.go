package chip8

import (
	"fmt"
	"strings"
)

// CHIP-8 machine layout constants.
const (
	// ProgramStart is the memory address where programs are loaded and
	// execution starts.
	ProgramStart = 0x200

	// ClassicMemorySize is the memory capacity of the Classic variant.
	ClassicMemorySize = 0x1000
	// ExtendedMemorySize is the memory capacity of the SuperChip variant.
	ExtendedMemorySize = 0x10000

	RegisterCount     = 16
	StackSize         = 16
	KeyCount          = 16
	FlagRegisterCount = 16

	// DefaultTickRate is the number of instructions executed per Update call.
	DefaultTickRate = 10

	// flagRegister is VF, the implicit result flag of arithmetic and draw
	// instructions.
	flagRegister = 0xF
)

// Variant selects the instruction set and memory capacity of a machine.
type Variant string

// Supported variants.
const (
	Classic   Variant = "chip8"
	SuperChip Variant = "schip"
)

// VariantFromString parses a variant name. An empty name returns an empty
// variant and no error so that callers can fall back to detection.
func VariantFromString(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "":
		return "", nil
	case "chip8", "chip-8", "classic":
		return Classic, nil
	case "schip", "superchip", "super-chip", "schip8":
		return SuperChip, nil
	default:
		return "", fmt.Errorf("unsupported variant '%s'", name)
	}
}

// String returns the variant name.
func (v Variant) String() string {
	return string(v)
}

// MemorySize returns the memory capacity of the variant in bytes.
func (v Variant) MemorySize() int {
	if v == Classic {
		return ClassicMemorySize
	}
	return ExtendedMemorySize
}

// MaxROMSize returns the largest program that fits into memory after the
// program start address.
func (v Variant) MaxROMSize() int {
	return v.MemorySize() - ProgramStart
}

// Tracer is called with the program counter and the decoded instruction
// before each instruction is executed.
type Tracer func(pc uint16, ins Instruction)

// Option configures a Machine.
type Option func(*Machine)

// WithVariant sets the machine variant, SuperChip is used by default.
func WithVariant(variant Variant) Option {
	return func(m *Machine) {
		if variant != "" {
			m.variant = variant
		}
	}
}

// WithTickRate sets the number of instructions executed per Update call.
// Values below 1 are ignored.
func WithTickRate(tickRate int) Option {
	return func(m *Machine) {
		if tickRate > 0 {
			m.tickRate = tickRate
		}
	}
}

// WithKeyCodeOnWait makes the key wait instruction store the code of the
// pressed key instead of KeyWaitSentinel.
func WithKeyCodeOnWait() Option {
	return func(m *Machine) {
		m.storeKeyCode = true
	}
}

// Machine is a CHIP-8 virtual machine instance.
type Machine struct {
	variant      Variant
	storeKeyCode bool

	memory []byte
	v      [RegisterCount]byte
	i      uint16
	pc     uint16
	stack  [StackSize]uint16
	sp     uint8
	dt     byte
	st     byte
	keys   [KeyCount]bool
	flags  [FlagRegisterCount]byte

	display  display
	tickRate int
	rng      *random
	tracer   Tracer
}

// New returns a zeroed machine with the program counter at ProgramStart.
func New(opts ...Option) *Machine {
	m := &Machine{
		variant:  SuperChip,
		tickRate: DefaultTickRate,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.memory = make([]byte, m.variant.MemorySize())
	m.pc = ProgramStart
	m.display.resetDirty()
	return m
}

// Reset zeroes memory, registers, stack, timers and the display and moves the
// program counter back to ProgramStart. The tick rate, the key state and the
// persistent flag registers are kept. A seeded random generator restarts its
// sequence from the seed.
func (m *Machine) Reset() {
	clear(m.memory)
	m.v = [RegisterCount]byte{}
	m.i = 0
	m.pc = ProgramStart
	m.stack = [StackSize]uint16{}
	m.sp = 0
	m.dt = 0
	m.st = 0
	m.display = display{}
	m.display.resetDirty()

	if m.rng != nil {
		m.rng = newRandom(m.rng.seed)
	}
}

// SetTracer installs a function that is called before every executed
// instruction. Passing nil removes the tracer.
func (m *Machine) SetTracer(tracer Tracer) {
	m.tracer = tracer
}

// SetKey sets the pressed state of key index 0-15.
func (m *Machine) SetKey(index int, pressed bool) error {
	if index < 0 || index >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, index)
	}
	m.keys[index] = pressed
	return nil
}

// Key returns whether key index 0-15 is pressed.
func (m *Machine) Key(index int) bool {
	if index < 0 || index >= KeyCount {
		return false
	}
	return m.keys[index]
}

// Variant returns the machine variant.
func (m *Machine) Variant() Variant {
	return m.variant
}

// TickRate returns the number of instructions executed per Update call.
func (m *Machine) TickRate() int {
	return m.tickRate
}

// Registers returns a copy of the general purpose registers V0-VF.
func (m *Machine) Registers() [RegisterCount]byte {
	return m.v
}

// Index returns the index register I.
func (m *Machine) Index() uint16 {
	return m.i
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// SP returns the call stack depth.
func (m *Machine) SP() int {
	return int(m.sp)
}

// Resolution returns the current logical display width and height.
func (m *Machine) Resolution() (int, int) {
	return m.display.width(), m.display.height()
}

// HiRes returns whether the 128x64 resolution is active.
func (m *Machine) HiRes() bool {
	return m.display.hiRes
}
