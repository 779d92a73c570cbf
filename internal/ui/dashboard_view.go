package ui

import (
	"bytes"
	"context"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/screens"
)

// dashboardView lists the user's courses and creates new ones
type dashboardView struct {
	root   *RootUI
	screen *screens.Dashboard

	visible []model.Course

	headline   *widget.Label
	search     *widget.Entry
	list       *widget.List
	spinner    *widget.ProgressBarInfinite
	errorLabel *widget.Label
	retryBtn   *widget.Button
	createBtn  *widget.Button
	importBtn  *widget.Button
}

func newDashboardView(root *RootUI) *dashboardView {
	v := &dashboardView{
		root:   root,
		screen: screens.NewDashboard(root.services.Client, root.services.Session, root.services.Importer),
	}
	v.screen.SetUpdateCallback(func() {
		fyne.Do(v.refresh)
	})
	return v
}

func (v *dashboardView) content() fyne.CanvasObject {
	t := v.root.localization.GetText

	title := widget.NewLabel(t(KeyMyCourses))
	title.TextStyle = fyne.TextStyle{Bold: true}
	v.headline = widget.NewLabel("")
	v.headline.Importance = widget.LowImportance

	v.search = widget.NewEntry()
	v.search.SetPlaceHolder(t(KeySearchCourses))
	v.search.OnChanged = v.screen.SetQuery

	v.createBtn = widget.NewButton(t(KeyNewCourse), v.showCreateDialog)
	v.createBtn.Importance = widget.HighImportance
	v.importBtn = widget.NewButton(IconVideo+" "+t(KeyImportLectures), v.showImportDialog)
	if v.root.services.Importer == nil {
		v.importBtn.Hide()
	}

	v.spinner = widget.NewProgressBarInfinite()
	v.errorLabel = widget.NewLabel("")
	v.errorLabel.Importance = widget.DangerImportance
	v.retryBtn = widget.NewButton(t(KeyRetry), func() {
		v.root.run(v.load)
	})

	v.list = widget.NewList(
		func() int {
			return len(v.visible)
		},
		func() fyne.CanvasObject {
			row := NewCourseRow(v.root.localization)
			row.SetCallbacks(v.onOpen, v.onCommunity)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(v.visible) {
				return
			}
			obj.(*CourseRow).SetCourse(v.visible[id])
		},
	)
	v.list.OnSelected = func(id widget.ListItemID) {
		v.list.Unselect(id)
		if id >= 0 && id < len(v.visible) {
			v.onOpen(v.visible[id])
		}
	}

	toolbar := container.NewBorder(nil, nil, nil, container.NewHBox(v.importBtn, v.createBtn), v.search)
	status := container.NewVBox(v.spinner, container.NewHBox(v.errorLabel, v.retryBtn))
	top := container.NewVBox(container.NewHBox(title, v.headline), toolbar, status)

	v.refresh()
	return container.NewBorder(top, nil, nil, nil, v.list)
}

func (v *dashboardView) start(ctx context.Context) {
	go v.load(ctx)
}

func (v *dashboardView) load(ctx context.Context) {
	if err := v.screen.Load(ctx); err != nil {
		log.Printf("Warning: dashboard load: %v", err)
	}
}

func (v *dashboardView) refresh() {
	v.visible = v.screen.Visible()
	v.headline.SetText(v.screen.Headline())

	if v.screen.Status().IsBusy() {
		v.spinner.Show()
	} else {
		v.spinner.Hide()
	}

	if msg := v.screen.Error(); msg != "" {
		v.errorLabel.SetText(msg)
		v.errorLabel.Show()
		v.retryBtn.Show()
	} else {
		v.errorLabel.Hide()
		v.retryBtn.Hide()
	}

	if v.screen.Creating() {
		v.createBtn.Disable()
		v.importBtn.Disable()
	} else {
		v.createBtn.Enable()
		v.importBtn.Enable()
	}

	v.list.Refresh()
}

func (v *dashboardView) onOpen(course model.Course) {
	userID := v.root.services.Session.Session().UserID
	v.root.Navigate(screens.ContentsPath(course.CourseID, userID))
}

func (v *dashboardView) onCommunity(course model.Course) {
	userID := v.root.services.Session.Session().UserID
	v.root.Navigate(screens.CommunityPath(course.CourseID, userID))
}

// showCreateDialog asks for a name plus pasted text or a file
func (v *dashboardView) showCreateDialog() {
	t := v.root.localization.GetText
	v.screen.ResetCreate()

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(t(KeyCourseName))
	contentEntry := widget.NewMultiLineEntry()
	contentEntry.SetPlaceHolder(t(KeyCourseContent))
	contentEntry.SetMinRowsVisible(6)
	contentEntry.Wrapping = fyne.TextWrapWord

	var fileName string
	var fileData []byte
	fileLabel := widget.NewLabel("")
	fileBtn := widget.NewButton(IconFile+" "+t(KeyUploadFile), func() {
		open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			data, err := io.ReadAll(reader)
			if err != nil {
				log.Printf("Warning: failed to read %s: %v", reader.URI().Name(), err)
				dialog.ShowError(err, v.root.window)
				return
			}
			fileName, fileData = reader.URI().Name(), data
			fileLabel.SetText(fileName)
			contentEntry.Disable()
		}, v.root.window)
		open.SetFilter(storage.NewExtensionFileFilter([]string{".pdf", ".txt", ".docx", ".md"}))
		open.Show()
	})

	items := []*widget.FormItem{
		widget.NewFormItem(t(KeyCourseName), nameEntry),
		widget.NewFormItem(t(KeyCourseContent), contentEntry),
		widget.NewFormItem("", container.NewHBox(fileBtn, fileLabel)),
	}

	form := dialog.NewForm(t(KeyNewCourse), t(KeyCreate), t(KeyCancel), items, func(confirmed bool) {
		if !confirmed {
			return
		}
		name, content := nameEntry.Text, contentEntry.Text
		v.root.showNotification(t(KeyLoading), true)
		v.root.run(func(ctx context.Context) {
			var err error
			if fileData != nil {
				err = v.screen.UploadCourse(ctx, name, fileName, bytes.NewReader(fileData))
			} else {
				err = v.screen.CreateCourse(ctx, name, content)
			}
			v.finishCreate(err)
		})
	}, v.root.window)
	form.Resize(fyne.NewSize(520, 420))
	form.Show()
}

func (v *dashboardView) showImportDialog() {
	t := v.root.localization.GetText
	v.screen.ResetCreate()

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(t(KeyCourseName))
	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://www.youtube.com/playlist?list=...")

	items := []*widget.FormItem{
		widget.NewFormItem(t(KeyCourseName), nameEntry),
		widget.NewFormItem(t(KeyPlaylistURL), urlEntry),
	}

	form := dialog.NewForm(t(KeyImportLectures), t(KeyCreate), t(KeyCancel), items, func(confirmed bool) {
		if !confirmed {
			return
		}
		name, url := nameEntry.Text, urlEntry.Text
		v.root.showNotification(t(KeyLoading), true)
		v.root.run(func(ctx context.Context) {
			v.finishCreate(v.screen.ImportLectures(ctx, name, url))
		})
	}, v.root.window)
	form.Resize(fyne.NewSize(520, 240))
	form.Show()
}

func (v *dashboardView) finishCreate(err error) {
	if err != nil {
		v.root.showNotification(screens.Message(err), false)
		return
	}
	v.root.hideNotification()
}
