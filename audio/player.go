package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/umbrella/character"
)

const sampleRate = beep.SampleRate(44100)

var ErrUnknownCue = errors.New("audio: unknown cue")

// Player synthesizes character cues and mixes them to the speaker. Until
// Init succeeds, or while muted, every call is a no-op so the game runs
// without an audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	playing     map[character.Cue]*beep.Ctrl
	initialized bool
	muted       bool
}

func NewPlayer() *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		playing: make(map[character.Cue]*beep.Ctrl),
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything. The speaker stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.playing = make(map[character.Cue]*beep.Ctrl)
	p.initialized = false
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if muted {
		p.stopAllLocked()
	}
}

// Play starts cue. A looping cue that is already running is left alone.
func (p *Player) Play(cue character.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	streamer, err := Streamer(cue)
	if err != nil {
		return
	}
	if ctrl, ok := p.playing[cue]; ok && !ctrl.Paused && cueTones[cue].Loop {
		return
	}
	ctrl := &beep.Ctrl{Streamer: streamer}
	speaker.Lock()
	if prev, ok := p.playing[cue]; ok {
		prev.Paused = true
	}
	p.mixer.Add(ctrl)
	speaker.Unlock()
	p.playing[cue] = ctrl
}

// Stop halts the most recent instance of cue.
func (p *Player) Stop(cue character.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctrl, ok := p.playing[cue]
	if !ok {
		return
	}
	if p.initialized {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Unlock()
	} else {
		ctrl.Paused = true
	}
	delete(p.playing, cue)
}

// StopAll silences every cue, e.g. when the level restarts.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopAllLocked()
}

func (p *Player) stopAllLocked() {
	if len(p.playing) == 0 {
		return
	}
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	for cue, ctrl := range p.playing {
		ctrl.Paused = true
		delete(p.playing, cue)
	}
}

// Streamer returns a fresh stream for cue.
func Streamer(cue character.Cue) (beep.Streamer, error) {
	t, ok := cueTones[cue]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, cue)
	}
	return newToneGenerator(sampleRate, t), nil
}
