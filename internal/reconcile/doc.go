// Package reconcile computes the row changes needed to turn one ordered loop
// sequence into another. Loops are matched by ID, so a rename or pattern edit
// never shows up as a change; only insertions, removals and moves do.
package reconcile
