package ui

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/screens"
)

// authView is the login and signup page
type authView struct {
	root   *RootUI
	screen *screens.Auth

	signup bool

	emailEntry      *widget.Entry
	passwordEntry   *widget.Entry
	confirmEntry    *widget.Entry
	firstNameEntry  *widget.Entry
	lastNameEntry   *widget.Entry
	universityEntry *widget.Entry
	semesterEntry   *widget.Entry

	signupFields *fyne.Container
	submitBtn    *widget.Button
	toggleBtn    *widget.Button
	errorLabel   *widget.Label
	noticeLabel  *widget.Label
	spinner      *widget.ProgressBarInfinite
}

func newAuthView(root *RootUI) *authView {
	v := &authView{
		root:   root,
		screen: screens.NewAuth(root.services.Client, root.services.Session),
	}
	v.screen.SetUpdateCallback(func() {
		fyne.Do(v.refresh)
	})
	return v
}

func (v *authView) content() fyne.CanvasObject {
	t := v.root.localization.GetText

	v.emailEntry = widget.NewEntry()
	v.emailEntry.SetPlaceHolder(t(KeyEmail))
	v.passwordEntry = widget.NewPasswordEntry()
	v.passwordEntry.SetPlaceHolder(t(KeyPassword))
	v.passwordEntry.OnSubmitted = func(string) { v.onSubmit() }

	v.confirmEntry = widget.NewPasswordEntry()
	v.confirmEntry.SetPlaceHolder(t(KeyConfirmPassword))
	v.firstNameEntry = widget.NewEntry()
	v.firstNameEntry.SetPlaceHolder(t(KeyFirstName))
	v.lastNameEntry = widget.NewEntry()
	v.lastNameEntry.SetPlaceHolder(t(KeyLastName))
	v.universityEntry = widget.NewEntry()
	v.universityEntry.SetPlaceHolder(t(KeyUniversity))
	v.semesterEntry = widget.NewEntry()
	v.semesterEntry.SetPlaceHolder(t(KeySemester))

	v.signupFields = container.NewVBox(
		container.NewGridWithColumns(2, v.firstNameEntry, v.lastNameEntry),
		v.universityEntry,
		v.semesterEntry,
	)

	v.submitBtn = widget.NewButton("", v.onSubmit)
	v.submitBtn.Importance = widget.HighImportance
	v.toggleBtn = widget.NewButton("", func() {
		v.signup = !v.signup
		v.refresh()
	})
	v.toggleBtn.Importance = widget.LowImportance

	v.errorLabel = widget.NewLabel("")
	v.errorLabel.Importance = widget.DangerImportance
	v.errorLabel.Wrapping = fyne.TextWrapWord
	v.noticeLabel = widget.NewLabel("")
	v.noticeLabel.Importance = widget.SuccessImportance
	v.noticeLabel.Wrapping = fyne.TextWrapWord
	v.spinner = widget.NewProgressBarInfinite()

	heading := widget.NewLabel(screens.MsgWelcome)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	// Fixes the width of the centered form
	width := canvas.NewRectangle(color.Transparent)
	width.SetMinSize(fyne.NewSize(AuthFormWidth, 0))

	form := container.NewVBox(
		width,
		heading,
		v.signupFields,
		v.emailEntry,
		v.passwordEntry,
		v.confirmEntry,
		v.errorLabel,
		v.noticeLabel,
		v.spinner,
		v.submitBtn,
		v.toggleBtn,
	)

	v.refresh()
	return container.NewCenter(form)
}

func (v *authView) start(context.Context) {}

func (v *authView) refresh() {
	t := v.root.localization.GetText

	if v.signup {
		v.signupFields.Show()
		v.confirmEntry.Show()
		v.submitBtn.SetText(t(KeySignup))
		v.toggleBtn.SetText(t(KeyHaveAccount))
	} else {
		v.signupFields.Hide()
		v.confirmEntry.Hide()
		v.submitBtn.SetText(t(KeyLogin))
		v.toggleBtn.SetText(t(KeyNoAccount))
	}

	v.errorLabel.SetText(v.screen.Error())
	setVisible(v.errorLabel, v.screen.Error() != "")
	v.noticeLabel.SetText(v.screen.Notice())
	setVisible(v.noticeLabel, v.screen.Notice() != "")

	if v.screen.Busy() {
		v.spinner.Show()
		v.submitBtn.Disable()
		v.toggleBtn.Disable()
	} else {
		v.spinner.Hide()
		v.submitBtn.Enable()
		v.toggleBtn.Enable()
	}
}

func (v *authView) onSubmit() {
	if v.signup {
		form := model.SignupForm{
			FirstName:       v.firstNameEntry.Text,
			LastName:        v.lastNameEntry.Text,
			Email:           v.emailEntry.Text,
			University:      v.universityEntry.Text,
			CurrentSemester: v.semesterEntry.Text,
			Password:        v.passwordEntry.Text,
			ConfirmPassword: v.confirmEntry.Text,
		}
		v.root.run(func(ctx context.Context) {
			path, err := v.screen.Signup(ctx, form)
			v.finish(path, err)
		})
		return
	}

	creds := model.Credentials{Email: v.emailEntry.Text, Password: v.passwordEntry.Text}
	v.root.run(func(ctx context.Context) {
		path, err := v.screen.Login(ctx, creds)
		v.finish(path, err)
	})
}

// finish runs on the action goroutine
func (v *authView) finish(path string, err error) {
	if err != nil {
		// The screen already holds the message
		return
	}
	if path == screens.AuthPath() {
		// Account created without a session: log in next
		fyne.Do(func() {
			v.signup = false
			v.passwordEntry.SetText("")
			v.confirmEntry.SetText("")
			v.refresh()
		})
		return
	}
	v.root.navigateLater(path)
}
