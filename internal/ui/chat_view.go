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

// chatView is the chatbot page
type chatView struct {
	root   *RootUI
	screen *screens.Chat

	messages    *fyne.Container
	scroll      *container.Scroll
	entry       *widget.Entry
	sendBtn     *widget.Button
	uploadBtn   *widget.Button
	uploadLabel *widget.Label
	spinner     *widget.ProgressBarInfinite
	rendered    int
}

func newChatView(root *RootUI) *chatView {
	v := &chatView{
		root:   root,
		screen: screens.NewChat(root.services.Client),
	}
	v.screen.SetUpdateCallback(func() {
		fyne.Do(v.refresh)
	})
	return v
}

func (v *chatView) content() fyne.CanvasObject {
	t := v.root.localization.GetText

	v.messages = container.NewVBox()
	v.scroll = container.NewVScroll(v.messages)

	v.entry = widget.NewMultiLineEntry()
	v.entry.SetPlaceHolder(t(KeyAskAnything))
	v.entry.Wrapping = fyne.TextWrapWord
	v.entry.SetMinRowsVisible(2)

	v.sendBtn = widget.NewButton(t(KeySend), v.onSend)
	v.sendBtn.Importance = widget.HighImportance
	v.uploadBtn = widget.NewButton(IconFile+" "+t(KeyUploadPDF), v.onUpload)

	v.uploadLabel = widget.NewLabel("")
	v.uploadLabel.Importance = widget.LowImportance
	v.spinner = widget.NewProgressBarInfinite()

	input := container.NewBorder(nil, nil, v.uploadBtn, v.sendBtn, v.entry)
	bottom := container.NewVBox(v.spinner, v.uploadLabel, input)

	backBtn := widget.NewButton(IconBack+" "+t(KeyBack), v.onBack)
	backBtn.Importance = widget.LowImportance
	title := widget.NewLabel(IconChat + " " + t(KeyChatbot))
	title.TextStyle = fyne.TextStyle{Bold: true}

	v.refresh()
	return container.NewBorder(container.NewHBox(backBtn, title), bottom, nil, nil, v.scroll)
}

func (v *chatView) start(context.Context) {}

func (v *chatView) refresh() {
	messages := v.screen.Messages()
	for _, msg := range messages[min(v.rendered, len(messages)):] {
		v.messages.Add(chatBubble(msg))
	}
	if len(messages) != v.rendered {
		v.rendered = len(messages)
		v.scroll.ScrollToBottom()
	}

	busy := v.screen.Busy()
	setVisible(v.spinner, busy)
	setEnabled(v.sendBtn, !busy)

	status := v.screen.UploadStatus()
	v.uploadLabel.SetText(status)
	setVisible(v.uploadLabel, status != "")
}

func chatBubble(msg model.ChatMessage) fyne.CanvasObject {
	text := widget.NewLabel(msg.Text)
	text.Wrapping = fyne.TextWrapWord
	text.Selectable = true

	card := widget.NewCard("", "", text)
	if msg.Role == model.ChatRoleUser {
		return container.NewGridWithColumns(2, widget.NewLabel(""), card)
	}
	return container.NewGridWithColumns(2, card, widget.NewLabel(""))
}

func (v *chatView) onSend() {
	input := v.entry.Text
	v.entry.SetText("")
	v.root.run(func(ctx context.Context) {
		if err := v.screen.Ask(ctx, input); err != nil {
			log.Printf("Warning: chat: %v", err)
		}
	})
}

func (v *chatView) onUpload() {
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
		name := reader.URI().Name()
		v.root.run(func(ctx context.Context) {
			if err := v.screen.UploadPDF(ctx, name, bytes.NewReader(data)); err != nil {
				log.Printf("Warning: pdf upload: %v", err)
			}
		})
	}, v.root.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	open.Show()
}

// onBack returns to the dashboard, or the login page without a session
func (v *chatView) onBack() {
	sess := v.root.services.Session.Session()
	if sess.IsZero() {
		v.root.Navigate(screens.AuthPath())
		return
	}
	v.root.Navigate(screens.DashboardPath(sess.UserID))
}
