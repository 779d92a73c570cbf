package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI adapts layouts to the device the app runs on
type MobileUI struct {
	mobile bool
}

// NewMobileUI creates a helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{mobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.mobile
}

// Columns returns desktop columns on desktop and a single column on phones
func (m *MobileUI) Columns(desktop int) int {
	if m.mobile {
		return 1
	}
	return desktop
}

// SplitOrStack puts main and side next to each other on desktop and below
// each other on phones
func (m *MobileUI) SplitOrStack(main, side fyne.CanvasObject) fyne.CanvasObject {
	if m.mobile {
		return container.NewVBox(main, side)
	}
	split := container.NewHSplit(main, side)
	split.SetOffset(0.65)
	return split
}

// CreateMobileButton creates a button with a touch-sized minimum height on
// phones
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) fyne.CanvasObject {
	btn := widget.NewButton(text, onTapped)
	if !m.mobile {
		return btn
	}
	return container.NewGridWrap(fyne.NewSize(MinTouchTargetSize*2, MobileButtonHeight), btn)
}

// GetMobileSpacing returns appropriate spacing for mobile devices
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.mobile {
		return 16
	}
	return 8
}
