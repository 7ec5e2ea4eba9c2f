package chip8

// decrementTimers counts both timers down by one, stopping at zero.
func (m *Machine) decrementTimers() {
	if m.dt > 0 {
		m.dt--
	}
	if m.st > 0 {
		m.st--
	}
}

// ShouldPlayTone returns true when the sound timer is at 1, which is the
// last frame before it expires.
func (m *Machine) ShouldPlayTone() bool {
	return m.st == 1
}

// DelayTimer returns the delay timer value.
func (m *Machine) DelayTimer() byte {
	return m.dt
}

// SoundTimer returns the sound timer value.
func (m *Machine) SoundTimer() byte {
	return m.st
}
