package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/screens"
)

// contentsView shows a course's summary, flashcards and quizzes as tabs
type contentsView struct {
	root     *RootUI
	screen   *screens.Contents
	courseID int
	userID   string

	titleLabel     *widget.Label
	courseErrLabel *widget.Label
	tabs           *container.AppTabs

	lengthRadio     *widget.RadioGroup
	summaryText     *widget.Label
	summarySpinner  *widget.ProgressBarInfinite
	summaryErrLabel *widget.Label
	summaryRetryBtn *widget.Button
	generateSumBtn  *widget.Button
	listenBtn       *widget.Button

	card             *FlashcardCard
	cardIndex        int
	cardsSpinner     *widget.ProgressBarInfinite
	cardsErrLabel    *widget.Label
	cardsRetryBtn    *widget.Button
	noCardsLabel     *widget.Label
	generateCardsBtn *widget.Button
	prevBtn          *widget.Button
	flipBtn          *widget.Button
	nextBtn          *widget.Button

	quiz *quizPanel
}

func newContentsView(root *RootUI, courseID int, userID string) *contentsView {
	v := &contentsView{
		root:     root,
		screen:   screens.NewContents(root.services.Client, courseID, root.settings.GetSummaryLength()),
		courseID: courseID,
		userID:   userID,
	}
	v.quiz = newQuizPanel(root, v.screen)
	v.screen.SetUpdateCallback(func() {
		fyne.Do(v.refresh)
	})
	return v
}

var sections = []screens.Section{screens.SectionSummary, screens.SectionFlashcards, screens.SectionQuiz}

func (v *contentsView) content() fyne.CanvasObject {
	t := v.root.localization.GetText

	backBtn := widget.NewButton(IconBack+" "+t(KeyBack), func() {
		v.root.Navigate(screens.DashboardPath(v.userID))
	})
	backBtn.Importance = widget.LowImportance
	communityBtn := widget.NewButton(IconCommunity+" "+t(KeyCommunity), func() {
		v.root.Navigate(screens.CommunityPath(v.courseID, v.userID))
	})
	communityBtn.Importance = widget.LowImportance

	v.titleLabel = widget.NewLabel("")
	v.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.titleLabel.Truncation = fyne.TextTruncateEllipsis
	v.courseErrLabel = widget.NewLabel("")
	v.courseErrLabel.Importance = widget.DangerImportance

	v.tabs = container.NewAppTabs(
		container.NewTabItem(t(KeySummary), v.summaryTab()),
		container.NewTabItem(t(KeyFlashcards), v.flashcardsTab()),
		container.NewTabItem(t(KeyQuiz), v.quiz.content()),
	)
	v.tabs.OnSelected = func(item *container.TabItem) {
		section := sections[v.tabs.SelectedIndex()]
		v.root.run(func(ctx context.Context) {
			v.screen.ShowSection(ctx, section)
		})
	}

	header := container.NewBorder(nil, v.courseErrLabel, backBtn, communityBtn, v.titleLabel)

	v.refresh()
	return container.NewBorder(header, nil, nil, nil, v.tabs)
}

func (v *contentsView) start(ctx context.Context) {
	go v.screen.Open(ctx)
}

func (v *contentsView) summaryTab() fyne.CanvasObject {
	t := v.root.localization.GetText

	labels := lo.Map(model.SummaryLengths(), func(l model.SummaryLength, _ int) string {
		return l.Label()
	})
	v.lengthRadio = widget.NewRadioGroup(labels, func(selected string) {
		length, ok := model.ParseSummaryLength(selected)
		if !ok || length == v.screen.SummaryLength() {
			return
		}
		v.root.run(func(ctx context.Context) {
			v.screen.SelectSummaryLength(ctx, length)
		})
	})
	v.lengthRadio.Horizontal = true
	v.lengthRadio.Required = true

	v.summaryText = widget.NewLabel("")
	v.summaryText.Wrapping = fyne.TextWrapWord
	v.summaryText.Selectable = true
	v.summarySpinner = widget.NewProgressBarInfinite()
	v.summaryErrLabel = widget.NewLabel("")
	v.summaryErrLabel.Wrapping = fyne.TextWrapWord
	v.summaryRetryBtn = widget.NewButton(t(KeyRetry), func() {
		v.root.run(v.screen.ReloadSummary)
	})

	v.generateSumBtn = widget.NewButton(t(KeyGenerate), func() {
		v.root.run(func(ctx context.Context) {
			if err := v.screen.GenerateSummary(ctx); err != nil {
				log.Printf("Warning: %v", err)
			}
		})
	})
	v.generateSumBtn.Importance = widget.HighImportance

	v.listenBtn = widget.NewButton(IconListen+" "+t(KeyListen), v.onListen)

	toolbar := container.NewBorder(nil, nil, v.lengthRadio, container.NewHBox(v.listenBtn, v.generateSumBtn))
	status := container.NewVBox(v.summarySpinner, container.NewHBox(v.summaryErrLabel, v.summaryRetryBtn))
	return container.NewBorder(container.NewVBox(toolbar, status), nil, nil, nil, container.NewVScroll(v.summaryText))
}

func (v *contentsView) flashcardsTab() fyne.CanvasObject {
	t := v.root.localization.GetText

	v.card = NewFlashcardCard()
	v.card.OnFlip = v.flip
	v.card.OnNext = func() { v.move(1) }
	v.card.OnPrev = func() { v.move(-1) }

	v.cardsSpinner = widget.NewProgressBarInfinite()
	v.cardsErrLabel = widget.NewLabel("")
	v.cardsErrLabel.Wrapping = fyne.TextWrapWord
	v.cardsRetryBtn = widget.NewButton(t(KeyRetry), func() {
		v.root.run(v.screen.ReloadFlashcards)
	})
	v.noCardsLabel = widget.NewLabel(t(KeyNoFlashcards))

	v.generateCardsBtn = widget.NewButton(t(KeyGenerate), func() {
		v.root.run(func(ctx context.Context) {
			if err := v.screen.GenerateFlashcards(ctx); err != nil {
				log.Printf("Warning: %v", err)
			}
		})
	})
	v.generateCardsBtn.Importance = widget.HighImportance

	v.prevBtn = widget.NewButton("‹", func() { v.move(-1) })
	v.flipBtn = widget.NewButton(t(KeyFlip), v.flip)
	v.nextBtn = widget.NewButton("›", func() { v.move(1) })

	controls := container.NewCenter(container.NewHBox(v.prevBtn, v.flipBtn, v.nextBtn))
	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, v.generateCardsBtn),
		v.cardsSpinner,
		container.NewHBox(v.cardsErrLabel, v.cardsRetryBtn),
		v.noCardsLabel,
	)
	return container.NewBorder(top, controls, nil, nil, v.card)
}

func (v *contentsView) refresh() {
	t := v.root.localization.GetText

	v.titleLabel.SetText(v.screen.CourseName())
	v.courseErrLabel.SetText(v.screen.CourseError())
	setVisible(v.courseErrLabel, v.screen.CourseError() != "")

	// Summary
	v.lengthRadio.Selected = v.screen.SummaryLength().Label()
	v.lengthRadio.Refresh()

	summary := v.screen.Summary()
	setVisible(v.summarySpinner, summary.Status.IsBusy() || v.screen.GeneratingSummary())
	switch {
	case summary.Loaded() && summary.Value.IsEmpty():
		v.summaryText.SetText(screens.MsgSummaryEmpty)
	default:
		v.summaryText.SetText(summary.Value.Text)
	}
	summaryErr := v.screen.SummaryError()
	v.summaryErrLabel.SetText(summaryErr)
	setVisible(v.summaryErrLabel, summaryErr != "")
	setVisible(v.summaryRetryBtn, summary.Status == model.FetchStatusError)
	if v.screen.GeneratingSummary() {
		v.generateSumBtn.Disable()
	} else {
		v.generateSumBtn.Enable()
	}
	if summary.Loaded() && !summary.Value.IsEmpty() {
		v.generateSumBtn.SetText(t(KeyRegenerate))
	} else {
		v.generateSumBtn.SetText(t(KeyGenerate))
	}
	if v.screen.Speech.Busy() || !summary.Loaded() || summary.Value.IsEmpty() {
		v.listenBtn.Disable()
	} else {
		v.listenBtn.Enable()
	}

	// Flashcards
	cards := v.screen.Flashcards()
	total := len(cards.Value.Cards)
	setVisible(v.cardsSpinner, cards.Status.IsBusy() || v.screen.GeneratingFlashcards())
	cardsErr := v.screen.FlashcardsError()
	v.cardsErrLabel.SetText(cardsErr)
	setVisible(v.cardsErrLabel, cardsErr != "")
	setVisible(v.cardsRetryBtn, cards.Status == model.FetchStatusError)
	setVisible(v.noCardsLabel, cards.Loaded() && total == 0)
	if v.screen.GeneratingFlashcards() {
		v.generateCardsBtn.Disable()
	} else {
		v.generateCardsBtn.Enable()
	}
	if total > 0 {
		v.generateCardsBtn.SetText(t(KeyRegenerate))
	} else {
		v.generateCardsBtn.SetText(t(KeyGenerate))
	}

	if v.cardIndex >= total {
		v.cardIndex = 0
	}
	if total == 0 {
		v.card.Hide()
		v.prevBtn.Disable()
		v.flipBtn.Disable()
		v.nextBtn.Disable()
	} else {
		v.card.Show()
		v.card.SetCard(cards.Value.Cards[v.cardIndex], v.cardIndex, total)
		v.flipBtn.Enable()
		setEnabled(v.prevBtn, v.cardIndex > 0)
		setEnabled(v.nextBtn, v.cardIndex < total-1)
	}

	v.quiz.refresh()
}

// The flip notifies through the flashcard resource
func (v *contentsView) flip() {
	v.screen.FlipCard(v.cardIndex)
}

func (v *contentsView) move(delta int) {
	total := len(v.screen.Flashcards().Value.Cards)
	next := v.cardIndex + delta
	if next < 0 || next >= total {
		return
	}
	v.cardIndex = next
	v.refresh()
}

func (v *contentsView) onListen() {
	language := v.root.settings.GetSpeechLanguage()
	dir := v.root.settings.GetAudioDirectory()
	v.root.run(func(ctx context.Context) {
		path, err := v.screen.Listen(ctx, language, dir)
		if err != nil {
			v.root.showNotification(screens.Message(err), false)
			return
		}
		v.root.hideNotification()
		fyne.Do(func() {
			v.root.showToast(v.root.localization.GetText(KeyAudioSaved)+": "+path, nil)
		})
	})
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
