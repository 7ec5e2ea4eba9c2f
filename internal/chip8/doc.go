// Package chip8 implements a CHIP-8 and SUPER-CHIP interpreter core.
//
// # Machine Overview
//
// A Machine owns all of its state: memory, 16 general purpose 8-bit registers
// (V0-VF), the 16-bit index register I, the program counter, a 16 entry call
// stack, the delay and sound timers, the 16 key flags and a monochrome
// framebuffer. Nothing is shared between instances, multiple machines can run
// in independent goroutines without coordination.
//
// # Memory Layout
//
//   - 0x000-0x04F: standard font, 16 glyphs of 5 bytes
//   - 0x050-0x0EF: big font, 16 glyphs of 10 bytes (SUPER-CHIP)
//   - ProgramStart (0x200) onwards: program bytes
//
// The Classic variant has 4096 bytes of memory, the SuperChip variant 65536.
//
// # Execution
//
// The host calls Update once per presented frame. Update decrements both
// timers once and then executes TickRate instructions. Any instruction error
// aborts the remaining instructions of the frame and is returned to the host.
// Each instruction either applies completely or fails before mutating state.
//
// The key wait instruction (FX0A) never blocks: while no key is pressed it
// does not advance the program counter, so it is dispatched again on the next
// step.
//
// # Display
//
// Sprites are XOR drawn with toroidal wraparound on the current logical
// resolution, 64x32 in low resolution and 128x64 in high resolution mode.
// TakeFrame returns a copy of the framebuffer if it changed since the last
// call, together with the range of rows that were touched.
//
// # Usage Example
//
//	m := chip8.New()
//	if err := m.Load(rom, 0); err != nil {
//		return fmt.Errorf("loading rom: %w", err)
//	}
//	m.SetSeed(uint64(time.Now().UnixNano()))
//
//	for {
//		if err := m.Update(); err != nil {
//			return fmt.Errorf("running rom: %w", err)
//		}
//		if frame, ok := m.TakeFrame(); ok {
//			present(frame)
//		}
//	}
package chip8
