package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/studybuddy/studybuddy/internal/model"
)

// FlashcardCard shows one face of a flashcard. Tapping flips it and a
// horizontal swipe moves to the neighbouring card.
type FlashcardCard struct {
	widget.BaseWidget

	background *canvas.Rectangle
	face       *widget.Label
	side       *widget.Label
	counter    *widget.Label
	gestures   *GestureHandler

	OnFlip func()
	OnNext func()
	OnPrev func()
}

// NewFlashcardCard creates an empty card
func NewFlashcardCard() *FlashcardCard {
	c := &FlashcardCard{
		background: canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)),
		face:       widget.NewLabel(""),
		side:       widget.NewLabel(""),
		counter:    widget.NewLabel(""),
	}
	c.background.CornerRadius = theme.InputRadiusSize()
	c.background.SetMinSize(fyne.NewSize(0, CardMinHeight))
	c.face.Wrapping = fyne.TextWrapWord
	c.face.Alignment = fyne.TextAlignCenter
	c.face.TextStyle = fyne.TextStyle{Bold: true}
	c.side.TextStyle = fyne.TextStyle{Italic: true}
	c.counter.Alignment = fyne.TextAlignTrailing
	c.gestures = NewGestureHandler(c.onGesture)
	c.ExtendBaseWidget(c)
	return c
}

// SetCard shows card, at 0-based position of total
func (c *FlashcardCard) SetCard(card model.Flashcard, position, total int) {
	c.face.SetText(card.Face())
	if card.Flipped {
		c.side.SetText("Back")
		c.background.FillColor = theme.Color(theme.ColorNameSelection)
	} else {
		c.side.SetText("Front")
		c.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	}
	c.counter.SetText(fmt.Sprintf(FlashcardFormat, position+1, total))
	c.background.Refresh()
}

// Tapped flips the card
func (c *FlashcardCard) Tapped(*fyne.PointEvent) {
	if c.OnFlip != nil {
		c.OnFlip()
	}
}

// Dragged forwards mouse drags to the gesture handler
func (c *FlashcardCard) Dragged(event *fyne.DragEvent) {
	c.gestures.Dragged(event)
}

// DragEnd completes a mouse drag
func (c *FlashcardCard) DragEnd() {
	c.gestures.DragEnd()
}

// TouchDown handles touch down events
func (c *FlashcardCard) TouchDown(event *mobile.TouchEvent) {
	c.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (c *FlashcardCard) TouchUp(event *mobile.TouchEvent) {
	c.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (c *FlashcardCard) TouchCancel(event *mobile.TouchEvent) {
	c.gestures.TouchCancel(event)
}

// Taps already arrive through Tapped
func (c *FlashcardCard) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		if c.OnNext != nil {
			c.OnNext()
		}
	case GestureSwipeRight:
		if c.OnPrev != nil {
			c.OnPrev()
		}
	case GestureLongPress:
		if c.OnFlip != nil {
			c.OnFlip()
		}
	}
}

// CreateRenderer creates the widget renderer
func (c *FlashcardCard) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewBorder(
		c.side,
		c.counter,
		nil,
		nil,
		container.NewPadded(c.face),
	)
	return widget.NewSimpleRenderer(container.NewStack(c.background, container.NewPadded(body)))
}
