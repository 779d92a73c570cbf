package screens

import (
	"context"
	"log"
	"sync"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/model"
)

// QuizView is a snapshot of the quiz-taking flow
type QuizView struct {
	Phase   model.QuizPhase
	Quiz    *model.Quiz
	Answers model.Answers
	Error   string
	Banner  string
}

// Answered reports how many questions have an answer
func (v QuizView) Answered() int {
	return v.Answers.Count()
}

// QuizRunner drives one quiz from generation to submission
type QuizRunner struct {
	client   api.Client
	courseID int

	mutex    sync.RWMutex
	phase    model.QuizPhase
	quiz     *model.Quiz
	answers  model.Answers
	errMsg   string
	banner   string
	token    uint64
	onUpdate func()
}

// NewQuizRunner creates a runner with no quiz
func NewQuizRunner(client api.Client, courseID int) *QuizRunner {
	return &QuizRunner{
		client:   client,
		courseID: courseID,
		phase:    model.QuizPhaseNone,
		answers:  make(model.Answers),
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (q *QuizRunner) SetUpdateCallback(callback func()) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.onUpdate = callback
}

// View returns a snapshot of the flow
func (q *QuizRunner) View() QuizView {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return QuizView{
		Phase:   q.phase,
		Quiz:    q.quiz,
		Answers: q.answers.Copy(),
		Error:   q.errMsg,
		Banner:  q.banner,
	}
}

// Phase returns the current phase
func (q *QuizRunner) Phase() model.QuizPhase {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.phase
}

// Generate creates a quiz and loads its questions. It is allowed from any
// phase that is not waiting on the network.
func (q *QuizRunner) Generate(ctx context.Context) error {
	q.mutex.Lock()
	if q.phase.IsBusy() {
		q.mutex.Unlock()
		return ErrBusy
	}
	q.phase = model.QuizPhaseGenerating
	q.quiz = nil
	q.answers.Clear()
	q.errMsg = ""
	q.banner = ""
	q.token++
	token := q.token
	q.mutex.Unlock()
	q.notify()

	quiz, err := q.create(ctx)

	q.mutex.Lock()
	if token != q.token {
		q.mutex.Unlock()
		return nil
	}
	if err != nil {
		q.phase = model.QuizPhaseNone
		q.errMsg = MsgQuizGenerateFailed
	} else {
		q.phase = model.QuizPhaseReady
		q.quiz = &quiz
	}
	q.mutex.Unlock()
	q.notify()

	if err != nil {
		log.Printf("Quiz generation failed for course %d: %v", q.courseID, err)
		return failed(MsgQuizGenerateFailed, err)
	}
	log.Printf("Quiz %d ready with %d questions", quiz.QuizID, len(quiz.Questions))
	return nil
}

func (q *QuizRunner) create(ctx context.Context) (model.Quiz, error) {
	quizID, err := q.client.CreateQuiz(ctx, q.courseID)
	if err != nil {
		return model.Quiz{}, err
	}
	detail, err := q.client.GetQuiz(ctx, quizID)
	if err != nil {
		return model.Quiz{}, err
	}
	quiz := detail.Quiz()
	if quiz.QuizID == 0 {
		quiz.QuizID = quizID
	}
	return quiz, nil
}

// Pick records option as the answer of question. Picks outside the ready
// phase or out of range are ignored.
func (q *QuizRunner) Pick(question, option int) bool {
	q.mutex.Lock()
	if !q.phase.AcceptsAnswers() || q.quiz == nil ||
		question < 0 || question >= len(q.quiz.Questions) ||
		option < 0 || option >= len(q.quiz.Questions[question].Options) {
		q.mutex.Unlock()
		return false
	}
	q.answers.Pick(question, option)
	q.errMsg = ""
	q.mutex.Unlock()
	q.notify()
	return true
}

// Submit sends the answers. Every question must be answered first.
func (q *QuizRunner) Submit(ctx context.Context) error {
	q.mutex.Lock()
	if q.phase.IsBusy() {
		q.mutex.Unlock()
		return ErrBusy
	}
	if q.phase != model.QuizPhaseReady || q.quiz == nil {
		q.mutex.Unlock()
		return ErrNoQuiz
	}
	if !q.answers.Complete(len(q.quiz.Questions)) {
		q.errMsg = MsgAnswerAll
		q.mutex.Unlock()
		q.notify()
		return invalid(MsgAnswerAll)
	}
	quizID := q.quiz.QuizID
	rows := q.answers.Submissions(quizID)
	q.phase = model.QuizPhaseSubmitting
	q.errMsg = ""
	q.mutex.Unlock()
	q.notify()

	correct, err := q.client.SubmitAnswers(ctx, quizID, rows)

	q.mutex.Lock()
	if err != nil {
		q.phase = model.QuizPhaseReady
		q.errMsg = MsgSubmitFailed
	} else {
		q.phase = model.QuizPhaseSubmitted
		q.banner = model.ScoreBanner(correct)
		q.answers.Clear()
	}
	q.mutex.Unlock()
	q.notify()

	if err != nil {
		log.Printf("Submitting quiz %d failed: %v", quizID, err)
		return failed(MsgSubmitFailed, err)
	}
	log.Printf("Quiz %d submitted", quizID)
	return nil
}

func (q *QuizRunner) notify() {
	q.mutex.RLock()
	callback := q.onUpdate
	q.mutex.RUnlock()
	if callback != nil {
		callback()
	}
}
