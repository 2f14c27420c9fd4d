package model

import (
	"fmt"
	"sort"
	"sync"
)

// SeedLoopNames are the loops every new list starts with
var SeedLoopNames = []string{"loop 1", "loop 2", "loop 3"}

// LoopList is the ordered collection of loops backing the loop screen.
// Insertion order is display order.
type LoopList struct {
	mu       sync.RWMutex
	loops    []Loop
	onChange []func(old, new []Loop)
}

// NewLoopList creates a list holding one new loop per name
func NewLoopList(names ...string) *LoopList {
	l := &LoopList{loops: make([]Loop, 0, len(names))}
	for _, name := range names {
		l.loops = append(l.loops, NewLoop(name))
	}
	return l
}

// SeedLoops creates the initial list shown on first launch
func SeedLoops() *LoopList {
	return NewLoopList(SeedLoopNames...)
}

// OnChange registers a callback invoked after every mutation with copies of
// the sequence before and after the change
func (l *LoopList) OnChange(fn func(old, new []Loop)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Loops returns a copy of the loops in display order
func (l *LoopList) Loops() []Loop {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

// Len returns the number of loops
func (l *LoopList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.loops)
}

// At returns the loop at index
func (l *LoopList) At(index int) (Loop, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.loops) {
		return Loop{}, false
	}
	return l.loops[index], true
}

// IndexOf returns the position of the loop with id, or -1
func (l *LoopList) IndexOf(id string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.indexLocked(id)
}

// Append adds loops at the end of the list
func (l *LoopList) Append(loops ...Loop) {
	if len(loops) == 0 {
		return
	}
	l.mutate(func() bool {
		l.loops = append(l.loops, loops...)
		return true
	})
}

// RemoveLoops removes every loop at the given positions in a single step.
// Positions refer to the list before removal. Out-of-range and repeated
// indices are ignored.
func (l *LoopList) RemoveLoops(indices []int) {
	l.mutate(func() bool {
		drop := make(map[int]struct{}, len(indices))
		for _, i := range indices {
			if i >= 0 && i < len(l.loops) {
				drop[i] = struct{}{}
			}
		}
		if len(drop) == 0 {
			return false
		}

		kept := make([]Loop, 0, len(l.loops)-len(drop))
		for i, loop := range l.loops {
			if _, ok := drop[i]; !ok {
				kept = append(kept, loop)
			}
		}
		l.loops = kept
		return true
	})
}

// RemoveLoop removes the loop with id
func (l *LoopList) RemoveLoop(id string) error {
	index := l.IndexOf(id)
	if index < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrLoopNotFound)
	}
	l.RemoveLoops([]int{index})
	return nil
}

// ValidateIndices reports the first out-of-range index, in ascending order
func (l *LoopList) ValidateIndices(indices []int) error {
	n := l.Len()
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	for _, i := range sorted {
		if i < 0 || i >= n {
			return fmt.Errorf("index %d out of range [0,%d): %w", i, n, ErrInvalidIndex)
		}
	}
	return nil
}

// UpdatePattern replaces the pattern of the loop with id
func (l *LoopList) UpdatePattern(id string, p Pattern) error {
	return l.update(id, func(loop *Loop) { loop.Pattern = p })
}

// UpdateTempo replaces the tempo of the loop with id
func (l *LoopList) UpdateTempo(id string, t Tempo) error {
	t.SetBPM(t.BPM)
	return l.update(id, func(loop *Loop) { loop.Tempo = t })
}

func (l *LoopList) update(id string, apply func(*Loop)) error {
	found := false
	l.mutate(func() bool {
		i := l.indexLocked(id)
		if i < 0 {
			return false
		}
		found = true
		apply(&l.loops[i])
		return true
	})
	if !found {
		return fmt.Errorf("update %s: %w", id, ErrLoopNotFound)
	}
	return nil
}

// mutate runs change under the write lock and notifies listeners outside it
// when change reports a modification
func (l *LoopList) mutate(change func() bool) {
	l.mu.Lock()
	old := l.snapshotLocked()
	if !change() {
		l.mu.Unlock()
		return
	}
	current := l.snapshotLocked()
	listeners := append([]func(old, new []Loop){}, l.onChange...)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(old, current)
	}
}

func (l *LoopList) snapshotLocked() []Loop {
	out := make([]Loop, len(l.loops))
	copy(out, l.loops)
	return out
}

func (l *LoopList) indexLocked(id string) int {
	for i, loop := range l.loops {
		if loop.ID == id {
			return i
		}
	}
	return -1
}
