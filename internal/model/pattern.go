package model

import "fmt"

// Pattern grid dimensions
const (
	BeatsPerMeasure = 4
	StepsPerPattern = BeatsPerMeasure * BeatsPerMeasure
)

// Pattern is a fixed-length sequence of drum steps. The zero value is an
// empty (all silent) pattern.
type Pattern struct {
	steps [StepsPerPattern]Sound
}

// NewPattern builds a pattern from the given sounds. Missing trailing steps
// are silent; extra sounds are an error.
func NewPattern(sounds ...Sound) (Pattern, error) {
	var p Pattern
	if len(sounds) > StepsPerPattern {
		return p, fmt.Errorf("pattern has %d steps, max %d: %w", len(sounds), StepsPerPattern, ErrInvalidStep)
	}
	for i, s := range sounds {
		if err := p.Set(i, s); err != nil {
			return Pattern{}, err
		}
	}
	return p, nil
}

// Steps returns a copy of the pattern steps
func (p Pattern) Steps() []Sound {
	out := make([]Sound, StepsPerPattern)
	copy(out, p.steps[:])
	return out
}

// At returns the sound at step
func (p Pattern) At(step int) (Sound, error) {
	if step < 0 || step >= StepsPerPattern {
		return SoundNone, fmt.Errorf("step %d: %w", step, ErrInvalidStep)
	}
	return p.steps[step], nil
}

// Set assigns a sound to step
func (p *Pattern) Set(step int, s Sound) error {
	if step < 0 || step >= StepsPerPattern {
		return fmt.Errorf("step %d: %w", step, ErrInvalidStep)
	}
	if !s.IsValid() {
		return fmt.Errorf("step %d: unknown sound %d: %w", step, int(s), ErrInvalidStep)
	}
	p.steps[step] = s
	return nil
}

// Cycle advances the sound at step to the next voice and returns it
func (p *Pattern) Cycle(step int) (Sound, error) {
	current, err := p.At(step)
	if err != nil {
		return SoundNone, err
	}
	next := current.Next()
	p.steps[step] = next
	return next, nil
}

// Clear silences every step
func (p *Pattern) Clear() {
	p.steps = [StepsPerPattern]Sound{}
}

// IsEmpty returns true if no step has a sound
func (p Pattern) IsEmpty() bool {
	for _, s := range p.steps {
		if s != SoundNone {
			return false
		}
	}
	return true
}
