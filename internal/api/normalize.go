package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/tidwall/gjson"
)

// Unwrap extracts the payload from a response body. A value under "data" is
// preferred over the body itself, and a payload that is JSON text is parsed.
// FAIL envelopes are reported as *FailError.
func Unwrap(body []byte) (gjson.Result, error) {
	if len(strings.TrimSpace(string(body))) == 0 || !gjson.ValidBytes(body) {
		return gjson.Result{}, ErrMalformed
	}

	root := gjson.ParseBytes(body)
	if root.IsObject() {
		if status := root.Get("status"); status.Type == gjson.String && strings.EqualFold(status.Str, "FAIL") {
			return gjson.Result{}, &FailError{
				StatusCode: int(root.Get("statusCode").Int()),
				Message:    root.Get("message").String(),
			}
		}
		if data := root.Get("data"); data.Exists() {
			return parseText(data), nil
		}
	}
	return parseText(root), nil
}

// parseText replaces a string holding a JSON object or array by its parsed value
func parseText(v gjson.Result) gjson.Result {
	if v.Type != gjson.String {
		return v
	}
	text := strings.TrimSpace(v.Str)
	if !gjson.Valid(text) {
		return v
	}
	if inner := gjson.Parse(text); inner.IsObject() || inner.IsArray() {
		return inner
	}
	return v
}

// Decode shapes a response body into T. On any failure it returns the zero
// value of T and an error.
func Decode[T any](body []byte) (T, error) {
	var zero T
	payload, err := Unwrap(body)
	if err != nil {
		return zero, err
	}
	return decodeResult[T](payload)
}

func decodeResult[T any](v gjson.Result) (T, error) {
	var out T
	if !v.Exists() || v.Type == gjson.Null {
		return out, ErrMalformed
	}
	if err := json.Unmarshal([]byte(v.Raw), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

// firstOf returns the first existing, non-null value among paths
func firstOf(v gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if r := v.Get(p); r.Exists() && r.Type != gjson.Null {
			return r
		}
	}
	return gjson.Result{}
}

// listOf returns v when it is an array, or the first array found under keys
func listOf(v gjson.Result, keys ...string) (gjson.Result, bool) {
	if v.IsArray() {
		return v, true
	}
	if v.IsObject() {
		for _, k := range keys {
			if r := parseText(v.Get(k)); r.IsArray() {
				return r, true
			}
		}
	}
	return gjson.Result{}, false
}

// DecodeSession reads the user id of a login or signup response
func DecodeSession(body []byte) (model.Session, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return model.Session{}, err
	}
	var id string
	if payload.Type == gjson.Number {
		id = payload.String()
	} else {
		id = firstOf(payload, "user_id", "id", "userId", "user.user_id", "user.id").String()
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Session{}, fmt.Errorf("%w: no user id", ErrMalformed)
	}
	return model.Session{UserID: id}, nil
}

// DecodeUser reads a user profile
func DecodeUser(body []byte) (model.User, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return model.User{}, err
	}
	if !payload.IsObject() {
		return model.User{}, ErrMalformed
	}
	if u := payload.Get("user"); u.IsObject() {
		payload = u
	}
	return model.User{
		UserID:    firstOf(payload, "user_id", "id").String(),
		FirstName: firstOf(payload, "user_firstname", "first_name", "firstname", "firstName").String(),
		LastName:  firstOf(payload, "user_lastname", "last_name", "lastname", "lastName").String(),
		Email:     firstOf(payload, "user_email", "email").String(),
	}, nil
}

// DecodeCourse reads one course record
func DecodeCourse(body []byte) (model.Course, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return model.Course{}, err
	}
	if !payload.IsObject() {
		return model.Course{}, ErrMalformed
	}
	if c := payload.Get("course"); c.IsObject() {
		payload = c
	}
	return courseFrom(payload), nil
}

// DecodeCourses reads a course list
func DecodeCourses(body []byte) ([]model.Course, error) {
	courses := []model.Course{}
	payload, err := Unwrap(body)
	if err != nil {
		return courses, err
	}
	list, ok := listOf(payload, "courses")
	if !ok {
		return courses, ErrMalformed
	}
	for _, item := range list.Array() {
		if item.IsObject() {
			courses = append(courses, courseFrom(item))
		}
	}
	return courses, nil
}

func courseFrom(v gjson.Result) model.Course {
	c := model.Course{
		CourseID:      int(firstOf(v, "course_id", "id").Int()),
		Name:          firstOf(v, "course_name", "name").String(),
		ContentLength: int(firstOf(v, "content_len", "content_length").Int()),
	}
	if c.ContentLength == 0 {
		c.ContentLength = len(firstOf(v, "course_content", "content").String())
	}
	return c
}

// DecodeSummary reads a summary. The text may be a bare string or sit under
// summary_content, summary or content.
func DecodeSummary(body []byte, length model.SummaryLength) (model.Summary, error) {
	summary := model.Summary{Length: length}
	payload, err := Unwrap(body)
	if err != nil {
		return summary, err
	}
	switch {
	case payload.Type == gjson.String:
		summary.Text = payload.Str
	case payload.IsObject():
		summary.Text = firstOf(payload, "summary_content", "summary", "content").String()
	case payload.Type == gjson.Null:
	default:
		return summary, ErrMalformed
	}
	return summary, nil
}

// DecodeFlashcards reads a flashcard set in card order
func DecodeFlashcards(body []byte) ([]model.Flashcard, error) {
	cards := []model.Flashcard{}
	payload, err := Unwrap(body)
	if err != nil {
		return cards, err
	}
	list, ok := listOf(payload, "flashcards", "cards")
	if !ok {
		return cards, ErrMalformed
	}
	for i, item := range list.Array() {
		if !item.IsObject() {
			continue
		}
		index := i + 1
		if ix := item.Get("card_index"); ix.Exists() {
			index = int(ix.Int())
		}
		id := firstOf(item, "flashcard_id", "id").String()
		if id == "" {
			id = fmt.Sprintf("%d", index)
		}
		cards = append(cards, model.Flashcard{
			ID:    id,
			Index: index,
			Front: firstOf(item, "front_text", "front").String(),
			Back:  firstOf(item, "back_text", "back").String(),
		})
	}
	return cards, nil
}

// DecodeCreatedQuiz reads the id of a freshly generated quiz
func DecodeCreatedQuiz(body []byte) (int, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return 0, err
	}
	id := int(firstOf(payload, "quiz_id", "id", "quiz.quiz_id").Int())
	if id == 0 {
		return 0, fmt.Errorf("%w: quiz id missing in create response", ErrMalformed)
	}
	return id, nil
}

// DecodeQuiz reads a quiz with its questions
func DecodeQuiz(body []byte) (model.QuizDetail, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return model.QuizDetail{}, err
	}
	if !payload.IsObject() {
		return model.QuizDetail{}, ErrMalformed
	}
	if q := payload.Get("quiz"); q.IsObject() && !payload.Get("questions").Exists() {
		payload = q
	}

	detail := model.QuizDetail{
		QuizID:      int(firstOf(payload, "quiz_id", "id").Int()),
		Title:       firstOf(payload, "quiz_title", "title").String(),
		CreatedAt:   model.ParseTimestamp(payload.Get("created_at").String()),
		IsSubmitted: payload.Get("is_submitted").Bool(),
		Questions:   []model.ReviewedQuestion{},
	}

	questions, _ := listOf(parseText(payload.Get("questions")))
	for i, item := range questions.Array() {
		if !item.IsObject() {
			continue
		}
		q := model.ReviewedQuestion{
			Index:        i + 1,
			Question:     firstOf(item, "question", "question_text").String(),
			Options:      []string{},
			CorrectIndex: -1,
		}
		if ix := item.Get("question_index"); ix.Exists() {
			q.Index = int(ix.Int())
		}
		for _, opt := range parseText(item.Get("options")).Array() {
			q.Options = append(q.Options, opt.String())
		}
		if ci := item.Get("correct_index"); ci.Exists() && ci.Type == gjson.Number {
			q.CorrectIndex = int(ci.Int())
		}
		if si := item.Get("student_selected_index"); si.Exists() && si.Type == gjson.Number {
			v := int(si.Int())
			q.StudentSelectedIndex = &v
		}
		detail.Questions = append(detail.Questions, q)
	}
	return detail, nil
}

// DecodePastQuizzes reads the quiz list of a course. Besides full records it
// accepts the bare {"quiz_ids": [...]} shape.
func DecodePastQuizzes(body []byte) ([]model.PastQuiz, error) {
	quizzes := []model.PastQuiz{}
	payload, err := Unwrap(body)
	if err != nil {
		return quizzes, err
	}
	list, ok := listOf(payload, "quizzes", "quiz_ids")
	if !ok {
		return quizzes, ErrMalformed
	}
	for _, item := range list.Array() {
		switch {
		case item.Type == gjson.Number:
			quizzes = append(quizzes, model.PastQuiz{QuizID: int(item.Int())})
		case item.IsObject():
			pq := model.PastQuiz{
				QuizID:    int(firstOf(item, "quiz_id", "id").Int()),
				Title:     firstOf(item, "quiz_title", "title").String(),
				CreatedAt: model.ParseTimestamp(item.Get("created_at").String()),
			}
			if cc := item.Get("correct_count"); cc.Type == gjson.Number {
				v := int(cc.Int())
				pq.CorrectCount = &v
			}
			quizzes = append(quizzes, pq)
		}
	}
	return quizzes, nil
}

// DecodeScore reads correct_count from a submission response
func DecodeScore(body []byte) (*int, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return nil, err
	}
	if cc := payload.Get("correct_count"); cc.Type == gjson.Number {
		v := int(cc.Int())
		return &v, nil
	}
	return nil, nil
}

// DecodeMessage reads a string field such as "answer" or "message"
func DecodeMessage(body []byte, field string) (string, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return "", err
	}
	if payload.Type == gjson.String {
		return payload.Str, nil
	}
	v := payload.Get(field)
	if !v.Exists() {
		return "", fmt.Errorf("%w: no %s field", ErrMalformed, field)
	}
	return v.String(), nil
}
