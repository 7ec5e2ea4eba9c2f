//go:build !headless

package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Player streams the beeper tone to the default audio device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *Tone
	mutex  sync.Mutex
}

// NewPlayer opens the audio device and starts streaming silence.
func NewPlayer() (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0, // device default
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	tone := NewTone(SampleRate, ToneFrequency)
	player := ctx.NewPlayer(tone)
	player.Play()

	return &Player{
		ctx:    ctx,
		player: player,
		tone:   tone,
	}, nil
}

// Beep plays the tone for BeepDuration.
func (p *Player) Beep() {
	p.tone.Trigger(BeepDuration)
}

// Close stops the output stream.
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
