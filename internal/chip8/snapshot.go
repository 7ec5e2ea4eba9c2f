package chip8

import "fmt"

// State is a complete copy of the machine record. It shares no memory with
// the machine it was taken from.
type State struct {
	Variant Variant

	Memory     []byte
	V          [RegisterCount]byte
	I          uint16
	PC         uint16
	Stack      [StackSize]uint16
	SP         uint8
	DelayTimer byte
	SoundTimer byte
	Keys       [KeyCount]bool
	Flags      [FlagRegisterCount]byte

	Pixels  []bool
	HiRes   bool
	ScrollX int

	TickRate int

	Seeded    bool
	Seed      uint64
	RandState []byte
}

// Snapshot returns a deep copy of the machine state, including the position
// of the random sequence.
func (m *Machine) Snapshot() (State, error) {
	s := State{
		Variant:    m.variant,
		Memory:     make([]byte, len(m.memory)),
		V:          m.v,
		I:          m.i,
		PC:         m.pc,
		Stack:      m.stack,
		SP:         m.sp,
		DelayTimer: m.dt,
		SoundTimer: m.st,
		Keys:       m.keys,
		Flags:      m.flags,
		Pixels:     make([]bool, len(m.display.pixels)),
		HiRes:      m.display.hiRes,
		ScrollX:    m.display.scrollX,
		TickRate:   m.tickRate,
	}
	copy(s.Memory, m.memory)
	copy(s.Pixels, m.display.pixels[:])

	if m.rng != nil {
		state, err := m.rng.src.MarshalBinary()
		if err != nil {
			return State{}, fmt.Errorf("marshaling random source: %w", err)
		}
		s.Seeded = true
		s.Seed = m.rng.seed
		s.RandState = state
	}
	return s, nil
}

// Restore replaces the machine state with a snapshot. The snapshot is
// validated before anything is changed. The full frame is marked for redraw.
func (m *Machine) Restore(s State) error {
	if s.Variant != Classic && s.Variant != SuperChip {
		return fmt.Errorf("%w: unsupported variant '%s'", ErrInvalidState, s.Variant)
	}
	if len(s.Memory) != s.Variant.MemorySize() {
		return fmt.Errorf("%w: memory size %d does not match variant %s",
			ErrInvalidState, len(s.Memory), s.Variant)
	}
	if len(s.Pixels) != len(m.display.pixels) {
		return fmt.Errorf("%w: framebuffer size %d", ErrInvalidState, len(s.Pixels))
	}
	if int(s.SP) > StackSize {
		return fmt.Errorf("%w: stack pointer %d", ErrInvalidState, s.SP)
	}
	if s.TickRate < 1 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidState, s.TickRate)
	}

	var rng *random
	if s.Seeded {
		var err error
		rng, err = restoreRandom(s.Seed, s.RandState)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
	}

	m.variant = s.Variant
	m.memory = make([]byte, len(s.Memory))
	copy(m.memory, s.Memory)
	m.v = s.V
	m.i = s.I
	m.pc = s.PC
	m.stack = s.Stack
	m.sp = s.SP
	m.dt = s.DelayTimer
	m.st = s.SoundTimer
	m.keys = s.Keys
	m.flags = s.Flags
	m.tickRate = s.TickRate
	m.rng = rng

	m.display = display{
		hiRes: s.HiRes,
	}
	copy(m.display.pixels[:], s.Pixels)
	m.display.scrollX = wrap(s.ScrollX, m.display.width())
	m.display.markAll()
	return nil
}
