package api

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/studybuddy/studybuddy/internal/model"
)

// wrappings returns the bare, data-wrapped and text-wrapped forms of payload
func wrappings(t *testing.T, payload string) map[string][]byte {
	t.Helper()
	text, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to quote payload: %v", err)
	}
	return map[string][]byte{
		"bare":         []byte(payload),
		"data":         []byte(`{"status":"SUCCESS","statusCode":200,"data":` + payload + `}`),
		"data as text": []byte(`{"data":` + string(text) + `}`),
	}
}

func TestDecodeCourses_EquivalentAcrossWrappings(t *testing.T) {
	payload := `[{"course_id":3,"course_name":"Networks","content_len":120},{"course_id":4,"course_name":"Databases","content_len":0}]`
	expected := []model.Course{
		{CourseID: 3, Name: "Networks", ContentLength: 120},
		{CourseID: 4, Name: "Databases"},
	}

	for name, body := range wrappings(t, payload) {
		t.Run(name, func(t *testing.T) {
			got, err := DecodeCourses(body)
			if err != nil {
				t.Fatalf("DecodeCourses() error = %v", err)
			}
			if !reflect.DeepEqual(got, expected) {
				t.Errorf("DecodeCourses() = %+v, expected %+v", got, expected)
			}
		})
	}
}

func TestDecodeQuiz_EquivalentAcrossWrappings(t *testing.T) {
	payload := `{"quiz_id":17,"quiz_title":"Networks quiz","created_at":"2026-10-19T14:05:00Z","is_submitted":true,
		"questions":[{"question_index":1,"type":"mcq","question":"OSI layers?","options":["5","7"],"correct_index":1,"student_selected_index":1}]}`

	var results []model.QuizDetail
	for name, body := range wrappings(t, payload) {
		got, err := DecodeQuiz(body)
		if err != nil {
			t.Fatalf("%s: DecodeQuiz() error = %v", name, err)
		}
		results = append(results, got)
	}

	first := results[0]
	if first.QuizID != 17 || first.Title != "Networks quiz" || !first.IsSubmitted || len(first.Questions) != 1 {
		t.Fatalf("unexpected quiz %+v", first)
	}
	if first.CorrectCount() != 1 {
		t.Errorf("CorrectCount() = %d, expected 1", first.CorrectCount())
	}
	for _, r := range results[1:] {
		if !reflect.DeepEqual(r, first) {
			t.Errorf("wrapping changed the record: %+v vs %+v", r, first)
		}
	}
}

func TestDecodeFlashcards_FieldFallbacks(t *testing.T) {
	body := []byte(`{"data":"[{\"card_index\":2,\"front_text\":\"IAM\",\"back_text\":\"Identity\"},{\"flashcard_id\":\"x9\",\"front\":\"VPC\",\"back\":\"Network\"}]"}`)

	got, err := DecodeFlashcards(body)
	if err != nil {
		t.Fatalf("DecodeFlashcards() error = %v", err)
	}
	expected := []model.Flashcard{
		{ID: "2", Index: 2, Front: "IAM", Back: "Identity"},
		{ID: "x9", Index: 2, Front: "VPC", Back: "Network"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("DecodeFlashcards() = %+v, expected %+v", got, expected)
	}
}

func TestDecodeSummary_TextFields(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"summary_content", `{"data":{"summary_content":"A"}}`, "A"},
		{"summary", `{"data":{"summary":"B"}}`, "B"},
		{"content", `{"content":"C"}`, "C"},
		{"plain text data", `{"data":"just text"}`, "just text"},
		{"nothing yet", `{"data":{}}`, ""},
		{"null data", `{"data":null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSummary([]byte(tt.body), model.SummaryMedium)
			if err != nil {
				t.Fatalf("DecodeSummary() error = %v", err)
			}
			if got.Text != tt.expected || got.Length != model.SummaryMedium {
				t.Errorf("DecodeSummary() = %+v, expected text %q", got, tt.expected)
			}
		})
	}
}

func TestDecoders_MalformedPayloads(t *testing.T) {
	bodies := map[string]string{
		"non json":        `<html>oops</html>`,
		"empty":           ``,
		"null":            `null`,
		"number":          `42`,
		"string":          `"hello"`,
		"data not json":   `{"data":"not json"}`,
		"data wrong type": `{"data":true}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			courses, err := DecodeCourses([]byte(body))
			if !errors.Is(err, ErrMalformed) || courses == nil || len(courses) != 0 {
				t.Errorf("DecodeCourses() = (%v, %v), expected empty list and ErrMalformed", courses, err)
			}

			cards, err := DecodeFlashcards([]byte(body))
			if !errors.Is(err, ErrMalformed) || cards == nil || len(cards) != 0 {
				t.Errorf("DecodeFlashcards() = (%v, %v), expected empty list and ErrMalformed", cards, err)
			}

			quizzes, err := DecodePastQuizzes([]byte(body))
			if !errors.Is(err, ErrMalformed) || len(quizzes) != 0 {
				t.Errorf("DecodePastQuizzes() = (%v, %v), expected empty list and ErrMalformed", quizzes, err)
			}

			detail, err := DecodeQuiz([]byte(body))
			if !errors.Is(err, ErrMalformed) || detail.QuizID != 0 {
				t.Errorf("DecodeQuiz() = (%+v, %v), expected zero quiz and ErrMalformed", detail, err)
			}

			if _, err := DecodeCreatedQuiz([]byte(body)); !errors.Is(err, ErrMalformed) {
				t.Errorf("DecodeCreatedQuiz() error = %v, expected ErrMalformed", err)
			}

			if _, err := DecodeSession([]byte(body)); !errors.Is(err, ErrMalformed) {
				t.Errorf("DecodeSession() error = %v, expected ErrMalformed", err)
			}
		})
	}
}

func TestUnwrap_FailEnvelope(t *testing.T) {
	body := []byte(`{"status":"FAIL","statusCode":404,"message":"User not found for user_id=9."}`)

	_, err := DecodeUser(body)
	var fail *FailError
	if !errors.As(err, &fail) {
		t.Fatalf("expected *FailError, got %v", err)
	}
	if fail.StatusCode != 404 || fail.Message != "User not found for user_id=9." {
		t.Errorf("unexpected FailError %+v", fail)
	}
}

func TestDecodeCreatedQuiz_IDFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"quiz_id", `{"data":{"quiz_id":17,"course_id":3,"questions_saved":10}}`},
		{"id", `{"id":17}`},
		{"nested", `{"data":"{\"quiz\":{\"quiz_id\":17}}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := DecodeCreatedQuiz([]byte(tt.body))
			if err != nil || id != 17 {
				t.Errorf("DecodeCreatedQuiz() = (%d, %v), expected 17", id, err)
			}
		})
	}
}

func TestDecodePastQuizzes_Shapes(t *testing.T) {
	full, err := DecodePastQuizzes([]byte(`{"data":{"quizzes":[{"quiz_id":5,"quiz_title":"Week 1","created_at":"2025-11-01T10:00:00Z","correct_count":6},{"quiz_id":6,"correct_count":null}]}}`))
	if err != nil {
		t.Fatalf("DecodePastQuizzes() error = %v", err)
	}
	if len(full) != 2 || full[0].ScoreLabel() != "6/10" || full[1].CorrectCount != nil {
		t.Errorf("unexpected quizzes %+v", full)
	}

	ids, err := DecodePastQuizzes([]byte(`{"status":"SUCCESS","data":"{\"course_id\":3,\"quiz_ids\":[5,6,7]}"}`))
	if err != nil {
		t.Fatalf("DecodePastQuizzes() error = %v", err)
	}
	if len(ids) != 3 || ids[2].QuizID != 7 {
		t.Errorf("unexpected quizzes %+v", ids)
	}
}

func TestDecodeSession(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"user_id number", `{"user_id":42}`},
		{"user_id string in data", `{"status":"SUCCESS","data":{"user_id":"42"}}`},
		{"nested user", `{"data":"{\"user\":{\"user_id\":42}}"}`},
		{"bare number data", `{"data":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSession([]byte(tt.body))
			if err != nil || got.UserID != "42" {
				t.Errorf("DecodeSession() = (%+v, %v), expected user 42", got, err)
			}
		})
	}
}

func TestDecodeUser_FieldFallbacks(t *testing.T) {
	got, err := DecodeUser([]byte(`{"data":"{\"user_id\":7,\"first_name\":\"Aisha\",\"user_lastname\":\"Verma\",\"email\":\"a@x.io\"}"}`))
	if err != nil {
		t.Fatalf("DecodeUser() error = %v", err)
	}
	expected := model.User{UserID: "7", FirstName: "Aisha", LastName: "Verma", Email: "a@x.io"}
	if got != expected {
		t.Errorf("DecodeUser() = %+v, expected %+v", got, expected)
	}
}

func TestDecode_Generic(t *testing.T) {
	type reply struct {
		Answer string `json:"answer"`
	}

	got, err := Decode[reply]([]byte(`{"data":"{\"answer\":\"42\"}"}`))
	if err != nil || got.Answer != "42" {
		t.Errorf("Decode() = (%+v, %v)", got, err)
	}

	got, err = Decode[reply]([]byte(`{"answer":["not","a","string"]}`))
	if !errors.Is(err, ErrMalformed) || got.Answer != "" {
		t.Errorf("Decode() on wrong type = (%+v, %v), expected zero value and ErrMalformed", got, err)
	}
}
