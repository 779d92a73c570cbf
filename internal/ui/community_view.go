package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/studybuddy/studybuddy/internal/community"
	"github.com/studybuddy/studybuddy/internal/screens"
)

// communityView lists low-score quizzes to review and lets the user ask a
// mentor for help
type communityView struct {
	root     *RootUI
	screen   *screens.Community
	courseID int
	userID   string

	topicSelect *widget.Select
	orderSelect *widget.Select
	search      *widget.Entry
	quizList    *fyne.Container
	leaders     *fyne.Container
	highlights  *fyne.Container

	drawer       *widget.PopUp
	drawerQuiz   int
	mentorRadio  *widget.RadioGroup
	mentorIDs    map[string]string
	messageEntry *widget.Entry
	sendBtn      *widget.Button
	drawerError  *widget.Label

	toastShown bool
}

func newCommunityView(root *RootUI, courseID int, userID string) *communityView {
	v := &communityView{
		root:     root,
		screen:   screens.NewCommunity(root.services.Catalog),
		courseID: courseID,
		userID:   userID,
	}
	v.screen.SetUpdateCallback(func() {
		fyne.Do(v.refresh)
	})
	return v
}

func (v *communityView) content() fyne.CanvasObject {
	t := v.root.localization.GetText

	backBtn := widget.NewButton(IconBack+" "+t(KeyBack), func() {
		v.root.Navigate(screens.ContentsPath(v.courseID, v.userID))
	})
	backBtn.Importance = widget.LowImportance
	title := widget.NewLabel(IconCommunity + " " + t(KeyCommunity))
	title.TextStyle = fyne.TextStyle{Bold: true}

	v.topicSelect = widget.NewSelect(v.screen.Topics(), v.screen.SetTopic)
	v.topicSelect.Selected = v.screen.Topic()

	orders := lo.Map(community.SortOrders(), func(o community.SortOrder, _ int) string {
		return o.Label()
	})
	v.orderSelect = widget.NewSelect(orders, func(label string) {
		v.screen.SetOrder(community.ParseSortOrder(label))
	})
	v.orderSelect.Selected = v.screen.Order().Label()

	v.search = widget.NewEntry()
	v.search.SetPlaceHolder(t(KeySearchQuizzes))
	v.search.OnChanged = v.screen.SetQuery

	filters := container.NewGridWithColumns(v.root.mobile.Columns(3),
		container.NewBorder(nil, nil, widget.NewLabel(t(KeyTopic)), nil, v.topicSelect),
		container.NewBorder(nil, nil, widget.NewLabel(t(KeySortBy)), nil, v.orderSelect),
		v.search,
	)

	reviewTitle := widget.NewLabel(t(KeyNeedsReview))
	reviewTitle.TextStyle = fyne.TextStyle{Bold: true}
	v.quizList = container.NewVBox()

	leadersTitle := widget.NewLabel(t(KeyLeaderboard))
	leadersTitle.TextStyle = fyne.TextStyle{Bold: true}
	v.leaders = container.NewVBox()
	highlightsTitle := widget.NewLabel(t(KeyHighlights))
	highlightsTitle.TextStyle = fyne.TextStyle{Bold: true}
	v.highlights = container.NewVBox()

	main := container.NewVScroll(container.NewVBox(reviewTitle, v.quizList))
	side := container.NewVScroll(container.NewVBox(leadersTitle, v.leaders, widget.NewSeparator(), highlightsTitle, v.highlights))

	top := container.NewVBox(container.NewHBox(backBtn, title), filters)

	v.refresh()
	return container.NewBorder(top, nil, nil, nil, v.root.mobile.SplitOrStack(main, side))
}

func (v *communityView) start(context.Context) {}

func (v *communityView) refresh() {
	t := v.root.localization.GetText

	v.quizList.RemoveAll()
	for _, quiz := range v.screen.Quizzes() {
		id := quiz.ID
		name := widget.NewLabel(quiz.Title)
		name.TextStyle = fyne.TextStyle{Bold: true}
		name.Truncation = fyne.TextTruncateEllipsis
		info := widget.NewLabel(quiz.Topic + MiddleDotSeparator + quiz.DateLabel())
		info.Importance = widget.LowImportance
		score := widget.NewLabel(quiz.ScoreLabel())
		score.Importance = widget.WarningImportance
		helpBtn := widget.NewButton(t(KeyAskForHelp), func() {
			v.screen.OpenHelp(id)
		})
		v.quizList.Add(container.NewBorder(nil, widget.NewSeparator(), nil,
			container.NewHBox(score, helpBtn), container.NewVBox(name, info)))
	}

	v.leaders.RemoveAll()
	for i, mentor := range v.screen.Leaderboard() {
		row := widget.NewLabel(fmt.Sprintf("%d. %s%s%d pts", i+1, mentor.Name, MiddleDotSeparator, mentor.Points))
		v.leaders.Add(row)
	}

	v.highlights.RemoveAll()
	for _, h := range v.screen.Highlights() {
		label := widget.NewLabel("• " + h)
		label.Wrapping = fyne.TextWrapWord
		v.highlights.Add(label)
	}

	v.refreshDrawer()
	v.refreshToast()
}

func (v *communityView) refreshDrawer() {
	quiz, open := v.screen.HelpQuiz()
	if !open {
		if v.drawer != nil {
			v.drawer.Hide()
			v.drawer = nil
		}
		return
	}
	if v.drawer == nil || v.drawerQuiz != quiz.ID {
		if v.drawer != nil {
			v.drawer.Hide()
		}
		v.openDrawer(quiz)
	}

	if mentor, ok := v.screen.SelectedMentor(); ok {
		v.mentorRadio.Selected = mentorLabel(mentor)
	} else {
		v.mentorRadio.Selected = ""
	}
	v.mentorRadio.Refresh()
	setEnabled(v.sendBtn, v.screen.CanSend())
}

func mentorLabel(m community.Mentor) string {
	return fmt.Sprintf("%s (%s)%s%s", m.Name, m.College, MiddleDotSeparator, strings.Join(m.Expertise, ", "))
}

func (v *communityView) openDrawer(quiz community.Quiz) {
	t := v.root.localization.GetText
	v.drawerQuiz = quiz.ID

	heading := widget.NewLabel(quiz.Title)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Wrapping = fyne.TextWrapWord
	sub := widget.NewLabel(quiz.Topic + MiddleDotSeparator + quiz.ScoreLabel())
	sub.Importance = widget.LowImportance

	suggestions := v.screen.Suggestions()
	v.mentorIDs = make(map[string]string, len(suggestions))
	labels := make([]string, 0, len(suggestions))
	for _, m := range suggestions {
		label := mentorLabel(m)
		v.mentorIDs[label] = m.ID
		labels = append(labels, label)
	}
	v.mentorRadio = widget.NewRadioGroup(labels, func(selected string) {
		if id, ok := v.mentorIDs[selected]; ok {
			v.screen.SelectMentor(id)
		}
	})

	resources := container.NewVBox()
	for _, r := range v.screen.Resources() {
		link, err := url.Parse(r.Href)
		if err != nil {
			log.Printf("Warning: bad resource link %q: %v", r.Href, err)
			continue
		}
		resources.Add(widget.NewHyperlink(r.Title+" ("+r.Kind+")", link))
	}

	v.messageEntry = widget.NewMultiLineEntry()
	v.messageEntry.SetPlaceHolder(t(KeyHelpMessage))
	v.messageEntry.Wrapping = fyne.TextWrapWord
	v.messageEntry.OnChanged = v.screen.SetMessage

	v.drawerError = widget.NewLabel("")
	v.drawerError.Importance = widget.DangerImportance
	v.drawerError.Hide()

	v.sendBtn = widget.NewButton(t(KeySendRequest), v.onSend)
	v.sendBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(t(KeyCancel), v.screen.CloseHelp)

	mentorsTitle := widget.NewLabel(t(KeyMentors))
	mentorsTitle.TextStyle = fyne.TextStyle{Bold: true}
	resourcesTitle := widget.NewLabel(t(KeyResources))
	resourcesTitle.TextStyle = fyne.TextStyle{Bold: true}

	body := container.NewVBox(
		heading, sub, widget.NewSeparator(),
		mentorsTitle, v.mentorRadio,
		resourcesTitle, resources,
		v.messageEntry,
		v.drawerError,
		container.NewHBox(cancelBtn, v.sendBtn),
	)

	canvas := v.root.window.Canvas()
	v.drawer = widget.NewModalPopUp(container.NewVScroll(body), canvas)
	size := fyne.NewSize(DrawerWidth, canvas.Size().Height)
	v.drawer.Resize(size)
	v.drawer.Move(fyne.NewPos(canvas.Size().Width-size.Width, 0))
	v.drawer.Show()
}

func (v *communityView) onSend() {
	if _, err := v.screen.SendHelp(); err != nil {
		v.drawerError.SetText(screens.Message(err))
		v.drawerError.Show()
	}
}

func (v *communityView) refreshToast() {
	toast := v.screen.Toast()
	if toast == "" {
		v.toastShown = false
		return
	}
	if v.toastShown {
		return
	}
	v.toastShown = true
	v.root.showToast(toast, v.screen.DismissToast)
}
