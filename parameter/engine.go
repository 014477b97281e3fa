package parameter

import "time"

// Simulation loop timing
const (
	// TickDelay is the pause between simulation ticks
	TickDelay = 10 * time.Millisecond

	// EventChannelSize buffers terminal events between the poller and the main loop
	EventChannelSize = 256
)

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// SwingSpeedFull is the ball speed (pixels per tick) mapped to full whoosh volume
	SwingSpeedFull = 12.0

	// SwingSpringFrequency and SwingSpringDamping shape the whoosh volume smoothing
	SwingSpringFrequency = 6.0
	SwingSpringDamping   = 1.0

	// ReleaseClickFreq is the tone played when the drag button is released
	ReleaseClickFreq = 660.0

	// ReleaseClickDuration is the length of the release tone
	ReleaseClickDuration = 40 * time.Millisecond
)

// Logging
const (
	// LogDir holds debug logs relative to the working directory
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "pendulum.log"

	// MaxLogSize triggers rotation of the active log file (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
