//go:build headless

package audio

// Player counts beeps without an audio device.
type Player struct {
	tone  *Tone
	beeps int
}

// NewPlayer returns a player that never produces sound.
func NewPlayer() (*Player, error) {
	return &Player{
		tone: NewTone(SampleRate, ToneFrequency),
	}, nil
}

// Beep arms the tone without playing it.
func (p *Player) Beep() {
	p.beeps++
	p.tone.Trigger(BeepDuration)
}

// Beeps returns the number of Beep calls.
func (p *Player) Beeps() int {
	return p.beeps
}

// Close is a no-op.
func (p *Player) Close() error {
	return nil
}
