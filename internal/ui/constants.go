package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconClose     = "×"
	IconBack      = "←"
	IconChat      = "💬"
	IconCommunity = "👥"
	IconListen    = "🔊"
	IconFile      = "📄"
	IconVideo     = "🎬"
	IconCorrect   = "✓"
	IconWrong     = "✗"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ContentLenFormat   = "%d chars"
	FlashcardFormat    = "%d / %d"
	QuestionFormat     = "%d. %s"
)

// Layout sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 720

	CourseRowMinHeight float32 = 56
	CardMinHeight      float32 = 180
	ChatEntryMinHeight float32 = 64
	DrawerWidth        float32 = 360
	AuthFormWidth      float32 = 380

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 80
	ToastMargin   float32 = 20
	ToastAutoHide         = 2600 * time.Millisecond
)

// Request deadlines for actions started from the UI
const (
	ActionTimeout = 2 * time.Minute
)
