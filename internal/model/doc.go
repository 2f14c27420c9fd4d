package model

// Package model defines the domain state shared by the UI: loops and the
// ordered list that owns them, beat patterns with their tempo, and the lamp
// colour state. Types expose explicit mutators and change callbacks so the UI
// can react to updates without polling.
