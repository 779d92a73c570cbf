package community

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoQuiz       = errors.New("no quiz selected")
	ErrNoMentor     = errors.New("choose a mentor")
	ErrEmptyMessage = errors.New("describe what was confusing")
)

// HelpRequest is a request for a mentor's help with a quiz. Requests stay
// on the device.
type HelpRequest struct {
	ID       string
	QuizID   int
	MentorID string
	Message  string
	SentAt   time.Time
}

// NewHelpRequest validates the selection and builds a request
func NewHelpRequest(quiz *Quiz, mentor *Mentor, message string) (HelpRequest, error) {
	if quiz == nil {
		return HelpRequest{}, ErrNoQuiz
	}
	if mentor == nil {
		return HelpRequest{}, ErrNoMentor
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return HelpRequest{}, ErrEmptyMessage
	}
	return HelpRequest{
		ID:       "help-" + uuid.NewString(),
		QuizID:   quiz.ID,
		MentorID: mentor.ID,
		Message:  message,
		SentAt:   time.Now(),
	}, nil
}

// Toast returns the confirmation shown after a request is sent
func Toast(mentor Mentor, quiz Quiz) string {
	return fmt.Sprintf("Help request sent to %s for “%s”.", mentor.Name, quiz.Title)
}
