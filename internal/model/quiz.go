package model

import (
	"fmt"
	"sort"
	"time"
)

// QuizQuestionCount is the number of questions the backend generates per quiz.
// Scores are always reported against it.
const QuizQuestionCount = 10

// Banner texts shown after a quiz submission
const (
	ScoreBannerFormat   = "You scored %d/%d"
	ScoreBannerFallback = "Submitted! Score recorded."
)

// Question is a question of a quiz being taken
type Question struct {
	Index    int      `json:"question_index"`
	Type     string   `json:"type,omitempty"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Quiz is a freshly generated quiz
type Quiz struct {
	QuizID    int        `json:"quiz_id"`
	Title     string     `json:"quiz_title"`
	CreatedAt time.Time  `json:"created_at"`
	Questions []Question `json:"questions"`
}

// PastQuiz is the summary row of a previously generated quiz
type PastQuiz struct {
	QuizID       int       `json:"quiz_id"`
	Title        string    `json:"quiz_title"`
	CreatedAt    time.Time `json:"created_at"`
	CorrectCount *int      `json:"correct_count"`
}

// ScoreLabel returns "N/10" or a dash when the quiz was never scored
func (p PastQuiz) ScoreLabel() string {
	if p.CorrectCount == nil {
		return DashPlaceholder
	}
	return fmt.Sprintf("%d/%d", *p.CorrectCount, QuizQuestionCount)
}

// ReviewedQuestion is a question of a past quiz with its correctness
type ReviewedQuestion struct {
	Index                int      `json:"question_index"`
	Question             string   `json:"question"`
	Options              []string `json:"options"`
	CorrectIndex         int      `json:"correct_index"`
	StudentSelectedIndex *int     `json:"student_selected_index"`
}

// IsCorrect reports whether the student picked the correct option
func (q ReviewedQuestion) IsCorrect() bool {
	return q.StudentSelectedIndex != nil && *q.StudentSelectedIndex == q.CorrectIndex
}

// CorrectOption returns the text of the correct option
func (q ReviewedQuestion) CorrectOption() string {
	return optionAt(q.Options, q.CorrectIndex)
}

// ChosenOption returns the text the student picked, or a dash
func (q ReviewedQuestion) ChosenOption() string {
	if q.StudentSelectedIndex == nil {
		return DashPlaceholder
	}
	return optionAt(q.Options, *q.StudentSelectedIndex)
}

func optionAt(options []string, i int) string {
	if i < 0 || i >= len(options) {
		return DashPlaceholder
	}
	return options[i]
}

// QuizDetail is the expanded view of a past quiz
type QuizDetail struct {
	QuizID      int                `json:"quiz_id"`
	Title       string             `json:"quiz_title"`
	CreatedAt   time.Time          `json:"created_at"`
	IsSubmitted bool               `json:"is_submitted"`
	Questions   []ReviewedQuestion `json:"questions"`
}

// CorrectCount counts correctly answered questions
func (d QuizDetail) CorrectCount() int {
	n := 0
	for _, q := range d.Questions {
		if q.IsCorrect() {
			n++
		}
	}
	return n
}

// Quiz returns the question sheet of the detail, without answers
func (d QuizDetail) Quiz() Quiz {
	questions := make([]Question, len(d.Questions))
	for i, q := range d.Questions {
		questions[i] = Question{Index: q.Index, Question: q.Question, Options: q.Options}
	}
	return Quiz{QuizID: d.QuizID, Title: d.Title, CreatedAt: d.CreatedAt, Questions: questions}
}

// Answers maps a 0-based question index to the chosen 0-based option index
type Answers map[int]int

// Pick records an option for a question
func (a Answers) Pick(question, option int) {
	a[question] = option
}

// Copy returns an independent copy
func (a Answers) Copy() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Count returns the number of answered questions
func (a Answers) Count() int {
	return len(a)
}

// Complete reports whether every one of total questions has an answer
func (a Answers) Complete(total int) bool {
	return a.Count() >= total
}

// Clear removes every answer
func (a Answers) Clear() {
	for k := range a {
		delete(a, k)
	}
}

// AnswerSubmission is one row of the answers payload
type AnswerSubmission struct {
	QuizID               int `json:"quiz_id"`
	QuestionIndex        int `json:"question_index"`
	StudentSelectedIndex int `json:"student_selected_index"`
}

// Submissions builds the payload rows in question order, 1-based
func (a Answers) Submissions(quizID int) []AnswerSubmission {
	indexes := make([]int, 0, len(a))
	for q := range a {
		indexes = append(indexes, q)
	}
	sort.Ints(indexes)

	rows := make([]AnswerSubmission, 0, len(indexes))
	for _, q := range indexes {
		rows = append(rows, AnswerSubmission{
			QuizID:               quizID,
			QuestionIndex:        q + 1,
			StudentSelectedIndex: a[q],
		})
	}
	return rows
}

// ScoreBanner returns the banner text shown after a submission
func ScoreBanner(correctCount *int) string {
	if correctCount == nil {
		return ScoreBannerFallback
	}
	return fmt.Sprintf(ScoreBannerFormat, *correctCount, QuizQuestionCount)
}
