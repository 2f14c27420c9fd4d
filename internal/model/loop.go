package model

import (
	"strings"

	"github.com/google/uuid"
)

// Loop is a named beat loop shown as one list row
type Loop struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Pattern Pattern `json:"-"`
	Tempo   Tempo   `json:"tempo"`
}

// NewLoop creates a loop with a fresh identity, an empty pattern and the
// default tempo
func NewLoop(name string) Loop {
	return Loop{
		ID:    uuid.NewString(),
		Name:  name,
		Tempo: DefaultTempo(),
	}
}

// GetDisplayName returns the name cleaned for a single-line label, or the
// short ID when the name is blank
func (l Loop) GetDisplayName() string {
	name := strings.ReplaceAll(l.Name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	if len(l.ID) > 8 {
		return l.ID[:8]
	}
	return l.ID
}
