package chip8

// Update runs one frame: both timers are decremented once, then TickRate
// instructions are executed. The first failing instruction aborts the frame
// and its error is returned.
func (m *Machine) Update() error {
	m.decrementTimers()

	for range m.tickRate {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
