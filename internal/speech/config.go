// Package speech plays audible alerts through the system audio device.
package speech

import "time"

// Audio parameters for generated PCM.
const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

// Note is one tone of an alert.
type Note struct {
	Frequency float64 // Hz
	Duration  time.Duration
}

// WarningChime is played with the calorie warning: a falling fifth.
var WarningChime = []Note{
	{Frequency: 880, Duration: 140 * time.Millisecond},
	{Frequency: 587.33, Duration: 260 * time.Millisecond},
}

// chimeVolume scales the full 16-bit range.
const chimeVolume = 0.25
