package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// classifyGesture maps a finished touch or drag onto a gesture.
// dx and dy are the total movement, held is the time between down and up.
func classifyGesture(dx, dy float32, held time.Duration) GestureType {
	distance := dx*dx + dy*dy
	threshold := DefaultSwipeThreshold * DefaultSwipeThreshold

	if distance >= threshold {
		return swipeDirection(dx, dy)
	}
	if held >= DefaultLongPressDuration {
		return GestureLongPress
	}
	return GestureTap
}

func swipeDirection(dx, dy float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// GestureHandler turns touch and drag events into gestures. It serves both
// mobile touch events and desktop mouse drags.
type GestureHandler struct {
	onGesture func(GestureType)

	touchStartTime time.Time
	touchStartPos  fyne.Position
	dragDX         float32
	dragDY         float32
	dragging       bool
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{onGesture: onGesture}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	held := time.Since(gh.touchStartTime)
	gh.touchStartTime = time.Time{}
	gh.trigger(classifyGesture(dx, dy, held))
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// Dragged accumulates a mouse drag
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	if !gh.dragging {
		gh.dragging = true
		gh.dragDX, gh.dragDY = 0, 0
		gh.touchStartTime = time.Now()
	}
	gh.dragDX += event.Dragged.DX
	gh.dragDY += event.Dragged.DY
}

// DragEnd reports a swipe when the drag went far enough. Short drags are
// ignored so they do not double as taps.
func (gh *GestureHandler) DragEnd() {
	if !gh.dragging {
		return
	}
	gh.dragging = false
	gh.touchStartTime = time.Time{}
	if g := classifyGesture(gh.dragDX, gh.dragDY, 0); g != GestureTap {
		gh.trigger(g)
	}
}

func (gh *GestureHandler) trigger(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
