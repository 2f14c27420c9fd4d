package ui

// Package ui contains the Fyne user interface: the loop list with its rows,
// the lamp colour panel and the pattern editor. Widgets only read model state
// through snapshots and change it through model mutators; all UI strings are
// localized via Localization.
