package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/screens"
)

// quizPanel is the quiz tab of the contents page: the quiz being taken,
// the past quizzes of the course and the review of one of them
type quizPanel struct {
	root   *RootUI
	screen *screens.Contents

	newQuizBtn    *widget.Button
	submitBtn     *widget.Button
	spinner       *widget.ProgressBarInfinite
	errorLabel    *widget.Label
	bannerLabel   *widget.Label
	progressLabel *widget.Label
	questions     *fyne.Container
	radios        []*widget.RadioGroup
	renderedQuiz  int

	pastList     *fyne.Container
	pastErrLabel *widget.Label
	detailBox    *fyne.Container
}

func newQuizPanel(root *RootUI, screen *screens.Contents) *quizPanel {
	return &quizPanel{root: root, screen: screen}
}

func (p *quizPanel) content() fyne.CanvasObject {
	t := p.root.localization.GetText

	p.newQuizBtn = widget.NewButton(t(KeyNewQuiz), func() {
		p.root.run(func(ctx context.Context) {
			if err := p.screen.GenerateQuiz(ctx); err != nil && !errors.Is(err, screens.ErrBusy) {
				log.Printf("Warning: %v", err)
			}
		})
	})
	p.newQuizBtn.Importance = widget.HighImportance

	p.submitBtn = widget.NewButton(t(KeySubmit), func() {
		p.root.run(func(ctx context.Context) {
			if err := p.screen.SubmitQuiz(ctx); err != nil {
				log.Printf("Warning: %v", err)
			}
		})
	})
	p.submitBtn.Importance = widget.HighImportance

	p.spinner = widget.NewProgressBarInfinite()
	p.errorLabel = widget.NewLabel("")
	p.errorLabel.Importance = widget.DangerImportance
	p.errorLabel.Wrapping = fyne.TextWrapWord
	p.bannerLabel = widget.NewLabel("")
	p.bannerLabel.Importance = widget.SuccessImportance
	p.bannerLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.progressLabel = widget.NewLabel("")
	p.progressLabel.Importance = widget.LowImportance
	p.questions = container.NewVBox()

	pastTitle := widget.NewLabel(t(KeyPastQuizzes))
	pastTitle.TextStyle = fyne.TextStyle{Bold: true}
	p.pastList = container.NewVBox()
	p.pastErrLabel = widget.NewLabel("")
	p.pastErrLabel.Importance = widget.DangerImportance
	p.detailBox = container.NewVBox()

	quiz := container.NewVBox(
		container.NewBorder(nil, nil, nil, p.newQuizBtn, p.progressLabel),
		p.spinner,
		p.bannerLabel,
		p.errorLabel,
		p.questions,
		container.NewHBox(p.submitBtn),
	)
	past := container.NewVBox(pastTitle, p.pastErrLabel, p.pastList, widget.NewSeparator(), p.detailBox)

	return p.root.mobile.SplitOrStack(container.NewVScroll(quiz), container.NewVScroll(past))
}

func (p *quizPanel) refresh() {
	t := p.root.localization.GetText
	view := p.screen.Quiz.View()

	setVisible(p.spinner, view.Phase.IsBusy())
	setEnabled(p.newQuizBtn, !view.Phase.IsBusy())
	p.errorLabel.SetText(view.Error)
	setVisible(p.errorLabel, view.Error != "")
	p.bannerLabel.SetText(view.Banner)
	setVisible(p.bannerLabel, view.Banner != "")

	if view.Quiz == nil {
		p.progressLabel.SetText("")
		p.renderedQuiz = 0
		p.radios = nil
		p.questions.RemoveAll()
		p.submitBtn.Hide()
	} else {
		if view.Quiz.QuizID != p.renderedQuiz {
			p.renderQuestions(view.Quiz)
		}
		total := len(view.Quiz.Questions)
		p.progressLabel.SetText(fmt.Sprintf("%s: %d/%d", t(KeyAnswered), view.Answered(), total))
		p.syncAnswers(view)
		setVisible(p.submitBtn, view.Phase != model.QuizPhaseSubmitted)
		setEnabled(p.submitBtn, view.Phase.AcceptsAnswers())
	}

	p.refreshPast()
	p.refreshDetail()
}

func (p *quizPanel) renderQuestions(quiz *model.Quiz) {
	p.renderedQuiz = quiz.QuizID
	p.questions.RemoveAll()
	p.radios = make([]*widget.RadioGroup, len(quiz.Questions))

	for i, q := range quiz.Questions {
		question := i
		options := q.Options
		label := widget.NewLabel(fmt.Sprintf(QuestionFormat, i+1, q.Question))
		label.Wrapping = fyne.TextWrapWord
		label.TextStyle = fyne.TextStyle{Bold: true}

		radio := widget.NewRadioGroup(options, func(selected string) {
			if selected == "" {
				return
			}
			if option := lo.IndexOf(options, selected); option >= 0 {
				p.screen.Quiz.Pick(question, option)
			}
		})
		p.radios[i] = radio
		p.questions.Add(container.NewVBox(label, radio))
	}
}

// syncAnswers mirrors the recorded answers onto the radio groups without
// firing their change callbacks
func (p *quizPanel) syncAnswers(view screens.QuizView) {
	for i, radio := range p.radios {
		selected := ""
		if option, ok := view.Answers[i]; ok && option < len(radio.Options) {
			selected = radio.Options[option]
		}
		if radio.Selected != selected {
			radio.Selected = selected
			radio.Refresh()
		}
		setEnabled(radio, view.Phase.AcceptsAnswers())
	}
}

func (p *quizPanel) refreshPast() {
	t := p.root.localization.GetText
	past := p.screen.PastQuizzes()

	p.pastErrLabel.SetText(p.screen.PastQuizzesError())
	setVisible(p.pastErrLabel, p.screen.PastQuizzesError() != "")

	p.pastList.RemoveAll()
	switch {
	case past.Status.IsBusy() && !past.Loaded():
		p.pastList.Add(widget.NewProgressBarInfinite())
	case past.Loaded() && len(past.Value) == 0:
		p.pastList.Add(widget.NewLabel(t(KeyNoPastQuizzes)))
	}

	for _, quiz := range past.Value {
		id := quiz.QuizID
		title := widget.NewLabel(quiz.Title)
		title.Truncation = fyne.TextTruncateEllipsis
		info := widget.NewLabel(model.FormatNiceDate(quiz.CreatedAt) + MiddleDotSeparator + t(KeyScore) + " " + quiz.ScoreLabel())
		info.Importance = widget.LowImportance
		openBtn := widget.NewButton(IconFile, func() {
			p.root.run(func(ctx context.Context) {
				p.screen.OpenPastQuiz(ctx, id)
			})
		})
		p.pastList.Add(container.NewBorder(nil, nil, nil, openBtn, container.NewVBox(title, info)))
	}
}

func (p *quizPanel) refreshDetail() {
	t := p.root.localization.GetText
	p.detailBox.RemoveAll()

	st, ok := p.screen.PastQuizDetail()
	if !ok {
		return
	}

	closeBtn := widget.NewButton(t(KeyClose), p.screen.ClosePastQuiz)
	closeBtn.Importance = widget.LowImportance

	if msg := p.screen.PastQuizDetailError(); msg != "" {
		errLabel := widget.NewLabel(msg)
		errLabel.Importance = widget.DangerImportance
		p.detailBox.Add(container.NewBorder(nil, nil, nil, closeBtn, errLabel))
		return
	}
	if !st.Loaded() {
		p.detailBox.Add(container.NewBorder(nil, nil, nil, closeBtn, widget.NewProgressBarInfinite()))
		return
	}

	detail := st.Value
	title := widget.NewLabel(fmt.Sprintf("%s%s%d/%d", detail.Title, MiddleDotSeparator, detail.CorrectCount(), model.QuizQuestionCount))
	title.TextStyle = fyne.TextStyle{Bold: true}
	p.detailBox.Add(container.NewBorder(nil, nil, nil, closeBtn, title))

	for i, q := range detail.Questions {
		question := widget.NewLabel(fmt.Sprintf(QuestionFormat, i+1, q.Question))
		question.Wrapping = fyne.TextWrapWord
		p.detailBox.Add(question)

		for j, option := range q.Options {
			line := widget.NewLabel("   " + option)
			line.Wrapping = fyne.TextWrapWord
			chosen := q.StudentSelectedIndex != nil && *q.StudentSelectedIndex == j
			switch {
			case j == q.CorrectIndex:
				line.SetText(IconCorrect + " " + option)
				line.Importance = widget.SuccessImportance
			case chosen:
				line.SetText(IconWrong + " " + option)
				line.Importance = widget.DangerImportance
			}
			p.detailBox.Add(line)
		}
	}
}
