package api

import (
	"context"
	"io"

	"github.com/studybuddy/studybuddy/internal/model"
)

// Client defines the operations of the StudyBuddy backend.
type Client interface {
	Signup(ctx context.Context, form model.SignupForm) (model.Session, error)
	Login(ctx context.Context, creds model.Credentials) (model.Session, error)

	// GetUser resolves the profile shown in the header greeting
	GetUser(ctx context.Context, userID string) (model.User, error)

	ListCourses(ctx context.Context, userID string) ([]model.Course, error)
	GetCourse(ctx context.Context, courseID int) (model.Course, error)
	CreateCourse(ctx context.Context, course model.NewCourse) error

	// UploadCourse creates a course from a document sent as multipart form data
	UploadCourse(ctx context.Context, userID, courseName, filename string, r io.Reader) error

	GetSummary(ctx context.Context, courseID int, length model.SummaryLength) (model.Summary, error)
	GenerateSummary(ctx context.Context, courseID int, length model.SummaryLength) error

	GetFlashcards(ctx context.Context, courseID int) ([]model.Flashcard, error)
	GenerateFlashcards(ctx context.Context, courseID int) error

	// CreateQuiz generates a quiz for a course and returns its id
	CreateQuiz(ctx context.Context, courseID int) (int, error)
	GetQuiz(ctx context.Context, quizID int) (model.QuizDetail, error)
	ListQuizzes(ctx context.Context, courseID int) ([]model.PastQuiz, error)

	// SubmitAnswers returns the correct count, or nil when the backend omits it
	SubmitAnswers(ctx context.Context, quizID int, rows []model.AnswerSubmission) (*int, error)

	Chat(ctx context.Context, message string, history []model.ChatMessage) (string, error)
	UploadPDF(ctx context.Context, filename string, r io.Reader) (string, error)

	// Speak returns MP3 audio for text in one of the SpeechLanguages
	Speak(ctx context.Context, text, language string) ([]byte, error)
}

// SpeechLanguages lists the languages the speech endpoint accepts
func SpeechLanguages() []string {
	return []string{"English", "Hindi", "Marathi"}
}
