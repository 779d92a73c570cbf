package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/studybuddy/studybuddy/internal/model"
)

// DefaultBaseURL is the address of a locally running backend
const DefaultBaseURL = "http://127.0.0.1:8000"

// DefaultTimeout bounds every request
const DefaultTimeout = 30 * time.Second

const maxResponseBytes = 32 << 20

var _ Client = (*Service)(nil)

// Service is the HTTP implementation of Client
type Service struct {
	baseURL string
	http    *http.Client
}

// NewService creates a client for the backend at baseURL
func NewService(baseURL string, timeout time.Duration) *Service {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend address the service talks to
func (s *Service) BaseURL() string {
	return s.baseURL
}

// request describes one backend call
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func jsonRequest(method, path string, payload any) (request, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("failed to encode %s body: %w", path, err)
	}
	return request{method: method, path: path, body: bytes.NewReader(data), contentType: "application/json"}, nil
}

// do performs the call and returns the body of a 2xx response
func (s *Service) do(ctx context.Context, r request) ([]byte, error) {
	target := s.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request %s %s: %w", r.method, r.path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	started := time.Now()
	resp, err := s.http.Do(req)
	if err != nil {
		log.Printf("[ERROR] %s %s failed (request %s): %v", r.method, r.path, requestID, err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, r.method, r.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s %s: %v", ErrTransport, r.method, r.path, err)
	}
	log.Printf("[INFO] %s %s -> %d in %s (request %s)", r.method, r.path, resp.StatusCode, time.Since(started).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     r.method,
			Path:       r.path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

// get performs a GET and returns its body
func (s *Service) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return s.do(ctx, request{method: http.MethodGet, path: path, query: query})
}

// postJSON encodes payload, performs a POST and returns the body
func (s *Service) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	r, err := jsonRequest(http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, r)
}

// postMultipart sends fields and one file part named "file"
func (s *Service) postMultipart(ctx context.Context, path string, fields map[string]string, filename string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, key := range lo.Keys(fields) {
		if err := w.WriteField(key, fields[key]); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}
	return s.do(ctx, request{method: http.MethodPost, path: path, body: &buf, contentType: w.FormDataContentType()})
}

// checkEnvelope reports a FAIL envelope in a response whose payload is not used
func checkEnvelope(body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	_, err := Unwrap(body)
	var fail *FailError
	if errors.As(err, &fail) {
		return fail
	}
	return nil
}

func coursePath(courseID int, suffix string) string {
	return "/courses/" + url.PathEscape(strconv.Itoa(courseID)) + suffix
}

func quizPath(quizID int, suffix string) string {
	return "/quizzes/" + url.PathEscape(strconv.Itoa(quizID)) + suffix
}

// Signup creates an account
func (s *Service) Signup(ctx context.Context, form model.SignupForm) (model.Session, error) {
	body, err := s.postJSON(ctx, "/auth/signup", form)
	if err != nil {
		return model.Session{}, err
	}
	if err := checkEnvelope(body); err != nil {
		return model.Session{}, err
	}
	sess, err := DecodeSession(body)
	if err != nil {
		// The account exists even when the response carries no id
		log.Printf("[WARN] Signup response without user id: %v", err)
		return model.Session{}, nil
	}
	return sess, nil
}

// Login exchanges credentials for a session
func (s *Service) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	body, err := s.postJSON(ctx, "/auth/login", creds)
	if err != nil {
		return model.Session{}, err
	}
	return DecodeSession(body)
}

// GetUser tries the REST path first and falls back to the query form
func (s *Service) GetUser(ctx context.Context, userID string) (model.User, error) {
	body, err := s.get(ctx, "/users/"+url.PathEscape(userID), nil)
	if err == nil {
		var user model.User
		if user, err = DecodeUser(body); err == nil {
			return user, nil
		}
	}
	log.Printf("[WARN] GetUser via path failed, trying query: %v", err)

	body, err = s.get(ctx, "/user", url.Values{"user_id": {userID}})
	if err != nil {
		return model.User{}, err
	}
	return DecodeUser(body)
}

// ListCourses returns the courses of a user
func (s *Service) ListCourses(ctx context.Context, userID string) ([]model.Course, error) {
	body, err := s.get(ctx, "/courses", url.Values{"user_id": {userID}})
	if err != nil {
		return []model.Course{}, err
	}
	return DecodeCourses(body)
}

// GetCourse returns one course
func (s *Service) GetCourse(ctx context.Context, courseID int) (model.Course, error) {
	body, err := s.get(ctx, coursePath(courseID, ""), nil)
	if err != nil {
		return model.Course{}, err
	}
	return DecodeCourse(body)
}

// CreateCourse creates a course from a name and pasted text
func (s *Service) CreateCourse(ctx context.Context, course model.NewCourse) error {
	userID, err := strconv.Atoi(strings.TrimSpace(course.UserID))
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", course.UserID, err)
	}
	payload := struct {
		UserID        int    `json:"user_id"`
		CourseName    string `json:"course_name"`
		CourseContent string `json:"course_content"`
	}{
		UserID:        userID,
		CourseName:    strings.TrimSpace(course.Name),
		CourseContent: course.Content,
	}
	body, err := s.postJSON(ctx, "/courses", payload)
	if err != nil {
		return err
	}
	return checkEnvelope(body)
}

// UploadCourse creates a course from a document
func (s *Service) UploadCourse(ctx context.Context, userID, courseName, filename string, r io.Reader) error {
	fields := map[string]string{"user_id": userID}
	if name := strings.TrimSpace(courseName); name != "" {
		fields["course_name"] = name
	}
	body, err := s.postMultipart(ctx, "/addcourse", fields, filename, r)
	if err != nil {
		return err
	}
	return checkEnvelope(body)
}

// GetSummary returns the stored summary of the given length
func (s *Service) GetSummary(ctx context.Context, courseID int, length model.SummaryLength) (model.Summary, error) {
	body, err := s.get(ctx, coursePath(courseID, "/summary"), url.Values{"summary_length": {string(length)}})
	if err != nil {
		return model.Summary{Length: length}, err
	}
	return DecodeSummary(body, length)
}

// GenerateSummary asks the backend to produce a summary of the given length
func (s *Service) GenerateSummary(ctx context.Context, courseID int, length model.SummaryLength) error {
	body, err := s.postJSON(ctx, coursePath(courseID, "/summary"), map[string]string{"summary_length": string(length)})
	if err != nil {
		return err
	}
	return checkEnvelope(body)
}

// GetFlashcards returns the flashcard set of a course
func (s *Service) GetFlashcards(ctx context.Context, courseID int) ([]model.Flashcard, error) {
	body, err := s.get(ctx, coursePath(courseID, "/flashcards"), nil)
	if err != nil {
		return []model.Flashcard{}, err
	}
	return DecodeFlashcards(body)
}

// GenerateFlashcards replaces the flashcard set of a course
func (s *Service) GenerateFlashcards(ctx context.Context, courseID int) error {
	body, err := s.do(ctx, request{method: http.MethodPost, path: coursePath(courseID, "/flashcards")})
	if err != nil {
		return err
	}
	return checkEnvelope(body)
}

// CreateQuiz generates a quiz
func (s *Service) CreateQuiz(ctx context.Context, courseID int) (int, error) {
	body, err := s.do(ctx, request{method: http.MethodPost, path: coursePath(courseID, "/quiz")})
	if err != nil {
		return 0, err
	}
	return DecodeCreatedQuiz(body)
}

// GetQuiz returns a quiz with its questions
func (s *Service) GetQuiz(ctx context.Context, quizID int) (model.QuizDetail, error) {
	body, err := s.get(ctx, quizPath(quizID, ""), nil)
	if err != nil {
		return model.QuizDetail{}, err
	}
	detail, err := DecodeQuiz(body)
	if err == nil && detail.QuizID == 0 {
		detail.QuizID = quizID
	}
	return detail, err
}

// ListQuizzes returns the past quizzes of a course
func (s *Service) ListQuizzes(ctx context.Context, courseID int) ([]model.PastQuiz, error) {
	body, err := s.get(ctx, coursePath(courseID, "/quizzes"), nil)
	if err != nil {
		return []model.PastQuiz{}, err
	}
	return DecodePastQuizzes(body)
}

// SubmitAnswers records the answers of a quiz
func (s *Service) SubmitAnswers(ctx context.Context, quizID int, rows []model.AnswerSubmission) (*int, error) {
	body, err := s.postJSON(ctx, quizPath(quizID, "/answers"), rows)
	if err != nil {
		return nil, err
	}
	return DecodeScore(body)
}

type chatTurn struct {
	Role  string   `json:"role"`
	Parts []string `json:"parts"`
}

type chatReply struct {
	Answer string `json:"answer"`
}

// Chat sends a message with the prior transcript as history
func (s *Service) Chat(ctx context.Context, message string, history []model.ChatMessage) (string, error) {
	payload := struct {
		Message string     `json:"message"`
		History []chatTurn `json:"history"`
	}{
		Message: message,
		History: lo.Map(history, func(m model.ChatMessage, _ int) chatTurn {
			return chatTurn{Role: m.Role.WireRole(), Parts: []string{m.Text}}
		}),
	}
	body, err := s.postJSON(ctx, "/chat", payload)
	if err != nil {
		return "", err
	}
	reply, err := Decode[chatReply](body)
	if err != nil {
		return "", err
	}
	return reply.Answer, nil
}

// UploadPDF sends a document the chat answers may draw on
func (s *Service) UploadPDF(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, err := s.postMultipart(ctx, "/upload_pdf", nil, filename, r)
	if err != nil {
		return "", err
	}
	return DecodeMessage(body, "message")
}

// Speak converts text to MP3 audio
func (s *Service) Speak(ctx context.Context, text, language string) ([]byte, error) {
	if !lo.Contains(SpeechLanguages(), language) {
		language = SpeechLanguages()[0]
	}
	r, err := jsonRequest(http.MethodPost, "/api/tts", map[string]string{"text": text, "language": language})
	if err != nil {
		return nil, err
	}
	audio, err := s.do(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio", ErrMalformed)
	}
	return audio, nil
}
