package model

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Default lamp state
const (
	DefaultHue        = 1.0
	DefaultSaturation = 1.0
	DefaultBrightness = 1.0
)

// LampState is an immutable snapshot of the lamp handed to subscribers
type LampState struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
	IsOn       bool    `json:"is_on"`
}

// Color returns the colour of the current hue, saturation and brightness
func (s LampState) Color() color.NRGBA {
	return hsbColor(s.Hue, s.Saturation, s.Brightness)
}

// BaseHueColor returns the fully saturated, full brightness colour of the
// current hue
func (s LampState) BaseHueColor() color.NRGBA {
	return hsbColor(s.Hue, 1.0, 1.0)
}

// Validate reports the first component outside [0, 1]
func (s LampState) Validate() error {
	components := []struct {
		name  string
		value float64
	}{
		{"hue", s.Hue},
		{"saturation", s.Saturation},
		{"brightness", s.Brightness},
	}
	for _, c := range components {
		if math.IsNaN(c.value) || c.value < 0 || c.value > 1 {
			return fmt.Errorf("%s=%v: %w", c.name, c.value, ErrInvalidColorComponent)
		}
	}
	return nil
}

// Lamp holds the colour and power state of the lighting accessory. Setters
// notify subscribers with a fresh snapshot when a value actually changes.
type Lamp struct {
	mu     sync.RWMutex
	state  LampState
	nextID int
	subs   map[int]func(LampState)
}

// NewLamp creates a lamp with the default state: full hue, saturation and
// brightness, powered off
func NewLamp() *Lamp {
	return &Lamp{
		state: LampState{
			Hue:        DefaultHue,
			Saturation: DefaultSaturation,
			Brightness: DefaultBrightness,
		},
		subs: make(map[int]func(LampState)),
	}
}

// Subscribe registers fn for state changes and returns a func that removes it
func (l *Lamp) Subscribe(fn func(LampState)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subs, id)
			l.mu.Unlock()
		})
	}
}

// State returns the current snapshot
func (l *Lamp) State() LampState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Hue returns the current hue
func (l *Lamp) Hue() float64 { return l.State().Hue }

// Saturation returns the current saturation
func (l *Lamp) Saturation() float64 { return l.State().Saturation }

// Brightness returns the current brightness
func (l *Lamp) Brightness() float64 { return l.State().Brightness }

// IsOn returns the power flag
func (l *Lamp) IsOn() bool { return l.State().IsOn }

// Color returns the colour of the current state
func (l *Lamp) Color() color.NRGBA { return l.State().Color() }

// BaseHueColor returns the hue-only colour of the current state
func (l *Lamp) BaseHueColor() color.NRGBA { return l.State().BaseHueColor() }

// SetHue sets the hue
func (l *Lamp) SetHue(hue float64) {
	l.update(func(s *LampState) { s.Hue = hue })
}

// SetSaturation sets the saturation
func (l *Lamp) SetSaturation(saturation float64) {
	l.update(func(s *LampState) { s.Saturation = saturation })
}

// SetBrightness sets the brightness
func (l *Lamp) SetBrightness(brightness float64) {
	l.update(func(s *LampState) { s.Brightness = brightness })
}

// SetHSB sets all three colour components with a single notification
func (l *Lamp) SetHSB(hue, saturation, brightness float64) {
	l.update(func(s *LampState) {
		s.Hue = hue
		s.Saturation = saturation
		s.Brightness = brightness
	})
}

// SetOn sets the power flag
func (l *Lamp) SetOn(on bool) {
	l.update(func(s *LampState) { s.IsOn = on })
}

// Toggle flips the power flag
func (l *Lamp) Toggle() {
	l.update(func(s *LampState) { s.IsOn = !s.IsOn })
}

func (l *Lamp) update(apply func(*LampState)) {
	l.mu.Lock()
	before := l.state
	apply(&l.state)
	after := l.state
	if after == before {
		l.mu.Unlock()
		return
	}
	subs := make([]func(LampState), 0, len(l.subs))
	ids := make([]int, 0, len(l.subs))
	for id := range l.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		subs = append(subs, l.subs[id])
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn(after)
	}
}

// hsbColor converts hue, saturation and brightness to RGB. Hue wraps so that
// 1.0 is the same red as 0.0; saturation and brightness are clamped.
func hsbColor(hue, saturation, brightness float64) color.NRGBA {
	h := math.Mod(hue, 1.0)
	if h < 0 {
		h += 1.0
	}
	if math.IsNaN(h) {
		h = 0
	}
	c := colorful.Hsv(h*360.0, clamp01(saturation), clamp01(brightness))
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
