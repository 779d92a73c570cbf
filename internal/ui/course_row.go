package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/studybuddy/studybuddy/internal/model"
)

// CourseRow is one dashboard entry: the course name and size with buttons
// leading to its contents and community pages
type CourseRow struct {
	widget.BaseWidget

	course       model.Course
	localization *Localization

	nameLabel    *widget.Label
	detailLabel  *widget.Label
	openBtn      *widget.Button
	communityBtn *widget.Button

	onOpen      func(course model.Course)
	onCommunity func(course model.Course)
}

// NewCourseRow creates a row; the list template passes a zero course
func NewCourseRow(localization *Localization) *CourseRow {
	cr := &CourseRow{localization: localization}
	cr.ExtendBaseWidget(cr)
	cr.createUI()
	return cr
}

// SetCallbacks sets the action callbacks
func (cr *CourseRow) SetCallbacks(onOpen, onCommunity func(course model.Course)) {
	if onOpen == nil {
		log.Printf("Warning: onOpen callback is nil for course row")
	}
	cr.onOpen = onOpen
	cr.onCommunity = onCommunity
}

// SetCourse shows course in the row
func (cr *CourseRow) SetCourse(course model.Course) {
	cr.course = course
	cr.nameLabel.SetText(course.Name)
	cr.detailLabel.SetText(fmt.Sprintf(ContentLenFormat, course.ContentLength))
	if course.CourseID == 0 {
		// Rows without an id cannot be opened
		cr.openBtn.Disable()
		cr.communityBtn.Disable()
	} else {
		cr.openBtn.Enable()
		cr.communityBtn.Enable()
	}
}

// Course returns the course shown in the row
func (cr *CourseRow) Course() model.Course {
	return cr.course
}

func (cr *CourseRow) createUI() {
	cr.nameLabel = widget.NewLabel("")
	cr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	cr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	cr.detailLabel = widget.NewLabel("")
	cr.detailLabel.Importance = widget.LowImportance

	cr.openBtn = widget.NewButton(IconFile, func() {
		if cr.onOpen != nil {
			cr.onOpen(cr.course)
		}
	})
	cr.openBtn.Importance = widget.HighImportance

	cr.communityBtn = widget.NewButton(IconCommunity, func() {
		if cr.onCommunity != nil {
			cr.onCommunity(cr.course)
		}
	})
	cr.communityBtn.Importance = widget.LowImportance
}

// CreateRenderer creates the widget renderer
func (cr *CourseRow) CreateRenderer() fyne.WidgetRenderer {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, CourseRowMinHeight))

	info := container.NewVBox(cr.nameLabel, cr.detailLabel)
	actions := container.NewHBox(cr.openBtn, cr.communityBtn)
	row := container.NewBorder(nil, widget.NewSeparator(), nil, actions, info)

	return widget.NewSimpleRenderer(container.NewStack(spacer, row))
}
