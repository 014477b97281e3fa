package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/parameter"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)

	releaseClickVolume = 0.3
)

// SoundManager owns the speaker and the pendulum's two sounds: a continuous swing whoosh and a release click
// Observe is fed once per tick; every method is safe before Initialize and after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	swing       *SwingGenerator
	swingCtrl   *beep.Ctrl
	tracker     *SwingTracker
	initialized bool
	muted       bool

	wasDown  bool
	releases int
}

// NewSoundManager creates a new sound manager; tick is the simulation tick used to pace smoothing
func NewSoundManager(tick time.Duration) *SoundManager {
	swing := NewSwingGenerator(sampleRate)
	return &SoundManager{
		mixer:     &beep.Mixer{},
		swing:     swing,
		swingCtrl: &beep.Ctrl{Streamer: swing, Paused: false},
		tracker:   NewSwingTracker(tick, parameter.SwingSpeedFull),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return errors.Wrap(err, "failed to initialize speaker")
	}

	sm.mixer.Add(sm.swingCtrl)
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker initialized at %d Hz", parameter.AudioSampleRate)
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.swingCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted pauses or resumes all output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(muted)
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(!sm.muted)
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) setMutedLocked(muted bool) {
	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		sm.swingCtrl.Paused = muted
		speaker.Unlock()
	} else {
		sm.swingCtrl.Paused = muted
	}
}

// Observe updates the whoosh from the ball speed and clicks on a drag release edge
func (sm *SoundManager) Observe(ballSpeed float64, ptr core.PointerState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.swing.SetLevel(sm.tracker.Update(ballSpeed))

	released := sm.wasDown && !ptr.IsDown
	sm.wasDown = ptr.IsDown
	if released {
		sm.releases++
		sm.playReleaseLocked()
	}
}

// Reset silences the whoosh immediately, used when the chain is reset
func (sm *SoundManager) Reset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.tracker.Reset()
	sm.swing.SetLevel(0)
	sm.wasDown = false
}

// SwingLevel returns the current whoosh target level
func (sm *SoundManager) SwingLevel() float64 {
	return sm.swing.Level()
}

func (sm *SoundManager) playReleaseLocked() {
	if !sm.initialized || sm.muted {
		return
	}

	click, err := newReleaseClick(sampleRate, parameter.ReleaseClickFreq, sampleRate.N(parameter.ReleaseClickDuration), releaseClickVolume)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(click)
	speaker.Unlock()
}
