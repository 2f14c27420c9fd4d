package model

import "time"

// Tempo limits and defaults
const (
	DefaultBPM = 100
	MaxBPM     = 200

	// SwingRatio scales the third step of every beat when swing is on
	SwingRatio = 0.3

	// swungColumn is the 1-based column inside a beat that swing shortens
	swungColumn = 3
)

// Tempo holds the playback speed settings of a loop
type Tempo struct {
	BPM   int  `json:"bpm"`
	Swing bool `json:"swing"`
}

// DefaultTempo returns the tempo new loops start with
func DefaultTempo() Tempo {
	return Tempo{BPM: DefaultBPM}
}

// SetBPM sets the tempo clamped to [0, MaxBPM]
func (t *Tempo) SetBPM(bpm int) {
	if bpm < 0 {
		bpm = 0
	}
	if bpm > MaxBPM {
		bpm = MaxBPM
	}
	t.BPM = bpm
}

// StepDuration returns the length of one sixteenth-note step, or 0 when the
// tempo is stopped
func (t Tempo) StepDuration() time.Duration {
	if t.BPM <= 0 {
		return 0
	}
	return time.Duration(0.25 * float64(time.Minute) / float64(t.BPM))
}

// StepDurationAt returns the length of the given step with swing applied
func (t Tempo) StepDurationAt(step int) time.Duration {
	d := t.StepDuration()
	if t.Swing && step%BeatsPerMeasure == swungColumn-1 {
		return time.Duration(float64(d) * SwingRatio)
	}
	return d
}
