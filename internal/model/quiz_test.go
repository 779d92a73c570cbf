package model

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestScoreBanner(t *testing.T) {
	tests := []struct {
		name     string
		count    *int
		expected string
	}{
		{"seven", intPtr(7), "You scored 7/10"},
		{"zero", intPtr(0), "You scored 0/10"},
		{"missing", nil, "Submitted! Score recorded."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreBanner(tt.count); got != tt.expected {
				t.Errorf("ScoreBanner() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestAnswers_Complete(t *testing.T) {
	tests := []struct {
		name     string
		picks    map[int]int
		total    int
		expected bool
	}{
		{"none answered", nil, 3, false},
		{"partial", map[int]int{0: 1, 2: 0}, 3, false},
		{"all answered", map[int]int{0: 1, 1: 3, 2: 0}, 3, true},
		{"empty quiz", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Answers{}
			for q, o := range tt.picks {
				a.Pick(q, o)
			}
			if got := a.Complete(tt.total); got != tt.expected {
				t.Errorf("Complete(%d) = %v, expected %v", tt.total, got, tt.expected)
			}
		})
	}
}

func TestAnswers_SubmissionsAreOneBasedAndOrdered(t *testing.T) {
	a := Answers{}
	a.Pick(2, 0)
	a.Pick(0, 1)
	a.Pick(1, 3)
	a.Pick(0, 2)

	got := a.Submissions(17)
	expected := []AnswerSubmission{
		{QuizID: 17, QuestionIndex: 1, StudentSelectedIndex: 2},
		{QuizID: 17, QuestionIndex: 2, StudentSelectedIndex: 3},
		{QuizID: 17, QuestionIndex: 3, StudentSelectedIndex: 0},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Submissions() = %+v, expected %+v", got, expected)
	}

	a.Clear()
	if a.Count() != 0 {
		t.Errorf("Clear() left %d answers", a.Count())
	}
}

func TestQuizDetail_CorrectCount(t *testing.T) {
	d := QuizDetail{Questions: []ReviewedQuestion{
		{Options: []string{"a", "b"}, CorrectIndex: 1, StudentSelectedIndex: intPtr(1)},
		{Options: []string{"a", "b"}, CorrectIndex: 0, StudentSelectedIndex: intPtr(1)},
		{Options: []string{"a", "b"}, CorrectIndex: 0},
	}}

	if got := d.CorrectCount(); got != 1 {
		t.Errorf("CorrectCount() = %d, expected 1", got)
	}
	if got := d.Questions[2].ChosenOption(); got != DashPlaceholder {
		t.Errorf("unanswered ChosenOption() = %q", got)
	}
	if got := d.Questions[1].CorrectOption(); got != "a" {
		t.Errorf("CorrectOption() = %q, expected a", got)
	}
}

func TestPastQuiz_ScoreLabel(t *testing.T) {
	if got := (PastQuiz{CorrectCount: intPtr(4)}).ScoreLabel(); got != "4/10" {
		t.Errorf("ScoreLabel() = %q", got)
	}
	if got := (PastQuiz{}).ScoreLabel(); got != DashPlaceholder {
		t.Errorf("unscored ScoreLabel() = %q", got)
	}
}

func TestQuizDetail_Quiz(t *testing.T) {
	picked := 1
	detail := QuizDetail{
		QuizID: 17,
		Title:  "Networks quiz",
		Questions: []ReviewedQuestion{
			{Index: 1, Question: "Q1", Options: []string{"a", "b"}, CorrectIndex: 0, StudentSelectedIndex: &picked},
		},
	}

	quiz := detail.Quiz()
	if quiz.QuizID != 17 || quiz.Title != "Networks quiz" {
		t.Errorf("Unexpected quiz header: %+v", quiz)
	}
	if len(quiz.Questions) != 1 || quiz.Questions[0].Question != "Q1" || len(quiz.Questions[0].Options) != 2 {
		t.Errorf("Unexpected questions: %+v", quiz.Questions)
	}
}

func TestAnswers_Copy(t *testing.T) {
	a := Answers{0: 1}
	c := a.Copy()
	c.Pick(1, 2)
	if a.Count() != 1 || c.Count() != 2 {
		t.Errorf("Copy should be independent: original %v, copy %v", a, c)
	}
}
