package chip8

// push stores a return address on the call stack.
func (m *Machine) push(address uint16) error {
	if int(m.sp) >= StackSize {
		return ErrStackOverflow
	}
	m.stack[m.sp] = address
	m.sp++
	return nil
}

// pop removes and returns the most recent return address.
func (m *Machine) pop() (uint16, error) {
	if m.sp == 0 {
		return 0, ErrStackUnderflow
	}
	m.sp--
	return m.stack[m.sp], nil
}
