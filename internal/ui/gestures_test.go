package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
)

func TestClassifyGesture(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		held   time.Duration
		want   GestureType
	}{
		{"quick tap", 2, 3, 50 * time.Millisecond, GestureTap},
		{"long press", 1, 1, time.Second, GestureLongPress},
		{"swipe left", -120, 10, 100 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", 120, -10, 100 * time.Millisecond, GestureSwipeRight},
		{"swipe up", 5, -90, 100 * time.Millisecond, GestureSwipeUp},
		{"swipe down", -5, 90, 100 * time.Millisecond, GestureSwipeDown},
		{"slow swipe is still a swipe", -120, 0, time.Second, GestureSwipeLeft},
		{"just below threshold", 49, 0, 10 * time.Millisecond, GestureTap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyGesture(tt.dx, tt.dy, tt.held); got != tt.want {
				t.Errorf("classifyGesture(%v, %v, %v) = %v, want %v", tt.dx, tt.dy, tt.held, got, tt.want)
			}
		})
	}
}

func TestGestureHandler_Drag(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) {
		got = append(got, g)
	})

	for i := 0; i < 4; i++ {
		gh.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-20, 1)})
	}
	gh.DragEnd()

	// A short drag is neither a swipe nor a tap
	gh.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(5, 0)})
	gh.DragEnd()

	// DragEnd without a drag does nothing
	gh.DragEnd()

	if len(got) != 1 || got[0] != GestureSwipeLeft {
		t.Errorf("gestures = %v, want [swipe left]", got)
	}
}
