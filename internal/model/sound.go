package model

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Sound identifies the drum voice assigned to a pattern step
type Sound int

const (
	// SoundNone means the step is silent
	SoundNone Sound = iota

	// SoundHiHat is the hi-hat voice
	SoundHiHat

	// SoundSnare is the snare voice
	SoundSnare

	// SoundTom is the tom voice
	SoundTom
)

// soundCount is the number of voices including SoundNone
const soundCount = 4

// String returns the string representation of Sound
func (s Sound) String() string {
	switch s {
	case SoundNone:
		return "none"
	case SoundHiHat:
		return "hi_hat"
	case SoundSnare:
		return "snare"
	case SoundTom:
		return "tom"
	default:
		return "unknown"
	}
}

// IsValid returns true if the sound is one of the known voices
func (s Sound) IsValid() bool {
	return s >= SoundNone && s < soundCount
}

// Next returns the voice that follows s when a step is tapped, wrapping back
// to SoundNone after the last voice
func (s Sound) Next() Sound {
	if !s.IsValid() {
		return SoundNone
	}
	return (s + 1) % soundCount
}

// Color returns the swatch colour used for the step button and the lamp
// while the step plays
func (s Sound) Color() color.RGBA {
	switch s {
	case SoundHiHat:
		return colornames.Blue
	case SoundSnare:
		return colornames.Lime
	case SoundTom:
		return colornames.Red
	default:
		return colornames.Gray
	}
}
