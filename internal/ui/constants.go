package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
)

// Text fragments
const (
	BPMLabelFormat     = "%s: %d"
	PercentLabelFormat = "%s: %d%%"
)

// Layout sizing (LoopRow / lists)
const (
	RowMinWidth  float32 = 280
	RowMinHeight float32 = 48

	// Mobile-specific sizing
	MobileRowMinHeight float32 = 64

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Lamp panel sizing
const (
	ColorSwatchSize   float32 = 160
	BaseHueSwatchSize float32 = 40
	SliderStep                = 0.01
)

// Pattern grid sizing
const (
	StepButtonSize float32 = 56
)
