// Package audio plays short procedural cues for simulation events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and a mixer that cues are added to.
// Every method is safe to call before Initialize or after Cleanup; it is
// then a no-op, so the game runs without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager. Call Initialize to open the device.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything queued on the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without releasing the device.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

// Muted reports whether cues are suppressed.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HandleEvent plays the cue for e, if it has one. It matches the
// signature expected by sim.Stepper.OnEvent.
func (sm *SoundManager) HandleEvent(e sim.Event) {
	if s := CueFor(e); s != nil {
		sm.play(s)
	}
}

// CueFor returns the streamer for an event, or nil when the event is silent.
func CueFor(e sim.Event) beep.Streamer {
	switch e.Kind {
	case sim.EventLanded:
		return NewBoingGenerator(sampleRate, e.Value)
	case sim.EventJumped:
		return NewBoingGenerator(sampleRate, jumpImpact)
	case sim.EventBonk, sim.EventPoleTip:
		return NewBonkGenerator(sampleRate)
	case sim.EventFail:
		return NewSlideGenerator(sampleRate)
	case sim.EventVictory:
		return NewFanfareGenerator(sampleRate)
	default:
		return nil
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
