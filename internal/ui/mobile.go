package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific sizing and layout helpers
type MobileUI struct {
	isMobile func() bool
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI() *MobileUI {
	return &MobileUI{
		isMobile: func() bool {
			if fyne.CurrentApp() == nil {
				return false
			}
			return fyne.CurrentDevice().IsMobile()
		},
	}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile()
}

// RowHeight returns the minimum loop row height for the current device
func (m *MobileUI) RowHeight() float32 {
	if m.IsMobileDevice() {
		return MobileRowMinHeight
	}
	return RowMinHeight
}

// CreateMobileButton creates a button with an icon sized for touch
func (m *MobileUI) CreateMobileButton(text string, icon fyne.Resource, onTapped func()) *widget.Button {
	btn := widget.NewButtonWithIcon(text, icon, onTapped)

	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
	}

	return btn
}

// CreateAdaptiveContainer creates a grid with one column on mobile in
// portrait and the given columns elsewhere
func (m *MobileUI) CreateAdaptiveContainer(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && m.IsPortrait() {
		return container.NewGridWithColumns(1, objects...)
	}
	return container.NewAdaptiveGrid(columns, objects...)
}

// IsPortrait returns true if device is in portrait orientation
func (m *MobileUI) IsPortrait() bool {
	if !m.IsMobileDevice() {
		return false
	}
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}
