// Package audio synthesizes the game's sound cues with beep. Sounds are
// generated on the fly; no sample files are read.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.5
	maxVoices     = 16 // concurrent cues; extra cues are dropped
)

// Player plays cues through the system speaker. Play never blocks and
// reports whether the cue was queued; callers are free to ignore it.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	muted  bool
	ready  bool
	mixer  *beep.Mixer
	output func(func())
}

// Option configures a Player.
type Option func(*Player)

// WithVolume sets the linear master gain (0 to 1).
func WithVolume(v float64) Option {
	return func(p *Player) { p.volume = core.Clamp(v, 0, 1) }
}

// WithMuted starts the player muted.
func WithMuted(m bool) Option {
	return func(p *Player) { p.muted = m }
}

// NewPlayer creates a player. Call Init before Play has any effect.
func NewPlayer(opts ...Option) *Player {
	p := &Player{
		rate:   sampleRate,
		volume: defaultVolume,
		mixer:  &beep.Mixer{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.output = func(f func()) {
		speaker.Lock()
		defer speaker.Unlock()
		f()
	}
	p.ready = true
	return nil
}

// Play queues the sound for cue.
func (p *Player) Play(cue core.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.muted || p.volume <= 0 {
		return false
	}
	s := Sound(cue, p.rate, p.volume)
	if s == nil {
		return false
	}

	queued := false
	p.output(func() {
		if p.mixer.Len() >= maxVoices {
			return
		}
		p.mixer.Add(s)
		queued = true
	})
	return queued
}

// PlayAll plays every cue of a tick and returns how many were queued.
func (p *Player) PlayAll(cues []core.Cue) int {
	n := 0
	for _, c := range cues {
		if p.Play(c) {
			n++
		}
	}
	return n
}

// SetMuted mutes or unmutes the player.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = m
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.output(p.mixer.Clear)
	p.ready = false
}
