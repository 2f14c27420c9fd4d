package reconcile

import (
	"fmt"

	"github.com/lampi/looper/internal/model"
)

// Change describes one keyed row change. From is the position in the old
// sequence and To the position in the new one; -1 marks "not present".
type Change struct {
	ID   string
	From int
	To   int
}

// Changes groups the row changes of one diff
type Changes struct {
	Removed  []Change
	Inserted []Change
	Moved    []Change
}

// Empty returns true if the two sequences had the same IDs in the same order
func (c Changes) Empty() bool {
	return len(c.Removed) == 0 && len(c.Inserted) == 0 && len(c.Moved) == 0
}

// Diff compares old and new by loop ID. Removed follows old order, Inserted
// and Moved follow new order. Surviving loops whose old positions form the
// longest increasing run stay put; only the others are reported as moved.
func Diff(old, new []model.Loop) Changes {
	oldPos := make(map[string]int, len(old))
	for i, loop := range old {
		oldPos[loop.ID] = i
	}
	newPos := make(map[string]int, len(new))
	for i, loop := range new {
		newPos[loop.ID] = i
	}

	var changes Changes
	for i, loop := range old {
		if _, ok := newPos[loop.ID]; !ok {
			changes.Removed = append(changes.Removed, Change{ID: loop.ID, From: i, To: -1})
		}
	}

	// survivors in new order, with their old positions
	var survivors []Change
	for i, loop := range new {
		from, ok := oldPos[loop.ID]
		if !ok {
			changes.Inserted = append(changes.Inserted, Change{ID: loop.ID, From: -1, To: i})
			continue
		}
		survivors = append(survivors, Change{ID: loop.ID, From: from, To: i})
	}

	froms := make([]int, len(survivors))
	for i, s := range survivors {
		froms[i] = s.From
	}
	stay := longestIncreasing(froms)
	for i, s := range survivors {
		if !stay[i] {
			changes.Moved = append(changes.Moved, s)
		}
	}

	return changes
}

// Apply rebuilds the new sequence from old and a diff. lookup resolves
// inserted IDs to loops.
func Apply(old []model.Loop, changes Changes, lookup func(id string) (model.Loop, bool)) ([]model.Loop, error) {
	removed := make(map[string]struct{}, len(changes.Removed))
	for _, c := range changes.Removed {
		removed[c.ID] = struct{}{}
	}
	moved := make(map[string]struct{}, len(changes.Moved))
	for _, c := range changes.Moved {
		moved[c.ID] = struct{}{}
	}

	size := len(old) - len(changes.Removed) + len(changes.Inserted)
	if size < 0 {
		return nil, fmt.Errorf("diff removes %d of %d loops", len(changes.Removed), len(old))
	}
	out := make([]model.Loop, size)
	filled := make([]bool, size)

	place := func(to int, loop model.Loop) error {
		if to < 0 || to >= size || filled[to] {
			return fmt.Errorf("invalid target position %d for %s", to, loop.ID)
		}
		out[to] = loop
		filled[to] = true
		return nil
	}

	byID := make(map[string]model.Loop, len(old))
	for _, loop := range old {
		byID[loop.ID] = loop
	}
	for _, c := range changes.Moved {
		if err := place(c.To, byID[c.ID]); err != nil {
			return nil, err
		}
	}
	for _, c := range changes.Inserted {
		loop, ok := lookup(c.ID)
		if !ok {
			return nil, fmt.Errorf("inserted loop %s: %w", c.ID, model.ErrLoopNotFound)
		}
		if err := place(c.To, loop); err != nil {
			return nil, err
		}
	}

	// loops that neither left nor moved fill the remaining slots in order
	next := 0
	for _, loop := range old {
		if _, ok := removed[loop.ID]; ok {
			continue
		}
		if _, ok := moved[loop.ID]; ok {
			continue
		}
		for next < size && filled[next] {
			next++
		}
		if next >= size {
			return nil, fmt.Errorf("no slot left for %s", loop.ID)
		}
		out[next] = loop
		filled[next] = true
	}

	return out, nil
}

// longestIncreasing marks the members of one longest strictly increasing
// subsequence of values.
func longestIncreasing(values []int) []bool {
	keep := make([]bool, len(values))
	if len(values) == 0 {
		return keep
	}

	// tails[k] is the index of the smallest tail of an increasing run of length k+1
	tails := make([]int, 0, len(values))
	prev := make([]int, len(values))
	for i, v := range values {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if values[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		keep[i] = true
	}
	return keep
}
