package community

import (
	"errors"
	"reflect"
	"testing"
)

func scores(quizzes []Quiz) []int {
	out := make([]int, len(quizzes))
	for i, q := range quizzes {
		out[i] = q.Score
	}
	return out
}

func ids(quizzes []Quiz) []int {
	out := make([]int, len(quizzes))
	for i, q := range quizzes {
		out[i] = q.ID
	}
	return out
}

func TestLowScore(t *testing.T) {
	got := LowScore(DefaultCatalog().Quizzes)
	want := []int{4, 5, 3, 2, 5, 4}
	if !reflect.DeepEqual(scores(got), want) {
		t.Errorf("LowScore scores = %v, want %v", scores(got), want)
	}
}

func TestReview(t *testing.T) {
	quizzes := DefaultCatalog().Quizzes

	tests := []struct {
		name  string
		topic string
		order SortOrder
		want  []int
	}{
		{"lowest first is stable", AllTopics, SortScoreAsc, []int{107, 104, 101, 110, 103, 109}},
		{"highest first", AllTopics, SortScoreDesc, []int{103, 109, 101, 110, 104, 107}},
		{"newest first", AllTopics, SortDateDesc, []int{103, 104, 110, 101, 107, 109}},
		{"topic filter", "Databases", SortScoreAsc, []int{103, 109}},
		{"topic without low scores", "APIs", SortScoreAsc, []int{}},
		{"empty topic means all", "", SortScoreAsc, []int{107, 104, 101, 110, 103, 109}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Review(quizzes, tt.topic, tt.order))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Review(%q, %s) = %v, want %v", tt.topic, tt.order, got, tt.want)
			}
		})
	}
}

func TestReviewDoesNotReorderCatalog(t *testing.T) {
	quizzes := DefaultCatalog().Quizzes
	before := ids(quizzes)
	Review(quizzes, AllTopics, SortScoreDesc)
	if !reflect.DeepEqual(ids(quizzes), before) {
		t.Error("Review must not reorder the catalog")
	}
}

func TestTopics(t *testing.T) {
	got := Topics(DefaultCatalog().Quizzes)
	want := []string{AllTopics, "Cloud Security", "Networking", "Databases", "Machine Learning", "APIs", "Cloud Storage", "Auth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics = %v, want %v", got, want)
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input string
		want  SortOrder
	}{
		{"scoreDesc", SortScoreDesc},
		{"Newest first", SortDateDesc},
		{"", SortScoreAsc},
		{"bogus", SortScoreAsc},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSortOrder(tt.input); got != tt.want {
				t.Errorf("ParseSortOrder(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSuggestMentors(t *testing.T) {
	mentors := DefaultCatalog().Mentors

	tests := []struct {
		topic string
		want  []string
	}{
		{"Auth", []string{"m1", "m4"}},
		{"Databases", []string{"m2", "m4"}},
		{"Networking", []string{"m3"}},
		{"Quantum", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			got := []string{}
			for _, m := range SuggestMentors(mentors, tt.topic) {
				got = append(got, m.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestMentors(%q) = %v, want %v", tt.topic, got, tt.want)
			}
		})
	}
}

func TestSuggestMentorsLimit(t *testing.T) {
	mentors := []Mentor{
		{ID: "a", Expertise: []string{"Go"}, Points: 1},
		{ID: "b", Expertise: []string{"Go"}, Points: 4},
		{ID: "c", Expertise: []string{"Go"}, Points: 3},
		{ID: "d", Expertise: []string{"Go"}, Points: 2},
	}
	got := SuggestMentors(mentors, "Go")
	if len(got) != MaxSuggestions {
		t.Fatalf("Expected %d suggestions, got %d", MaxSuggestions, len(got))
	}
	if got[0].ID != "b" || got[2].ID != "d" {
		t.Errorf("Unexpected order: %+v", got)
	}
}

func TestResourcesAndLeaderboard(t *testing.T) {
	catalog := DefaultCatalog()

	res := ResourcesFor(catalog.Resources, "Auth")
	if len(res) != 1 || res[0].ID != "r5" {
		t.Errorf("ResourcesFor(Auth) = %+v", res)
	}

	board := Leaderboard(catalog.Mentors)
	if len(board) != LeaderboardLength {
		t.Fatalf("Leaderboard length = %d", len(board))
	}
	if board[0].Name != "Aisha Verma" || board[3].Name != "Leo Garcia" {
		t.Errorf("Unexpected leaderboard: %+v", board)
	}
}

func TestSearch(t *testing.T) {
	quizzes := DefaultCatalog().Quizzes
	if got := Search(quizzes, "  "); len(got) != len(quizzes) {
		t.Errorf("Blank query should return everything, got %d", len(got))
	}
	got := ids(Search(quizzes, "joins"))
	if !reflect.DeepEqual(got, []int{103}) {
		t.Errorf("Search(joins) = %v", got)
	}
	got = ids(Search(quizzes, "machine"))
	if !reflect.DeepEqual(got, []int{104, 108}) {
		t.Errorf("Search(machine) = %v", got)
	}
}

func TestQuizLabels(t *testing.T) {
	q, ok := QuizByID(DefaultCatalog().Quizzes, 101)
	if !ok {
		t.Fatal("quiz 101 missing")
	}
	if q.ScoreLabel() != "4/10" {
		t.Errorf("ScoreLabel = %q", q.ScoreLabel())
	}
	if q.DateLabel() != "Nov 1, 2025" {
		t.Errorf("DateLabel = %q", q.DateLabel())
	}
}

func TestNewHelpRequest(t *testing.T) {
	catalog := DefaultCatalog()
	quiz, _ := QuizByID(catalog.Quizzes, 110)
	mentor, _ := MentorByID(catalog.Mentors, "m1")

	tests := []struct {
		name    string
		quiz    *Quiz
		mentor  *Mentor
		message string
		wantErr error
	}{
		{"no quiz", nil, &mentor, "help", ErrNoQuiz},
		{"no mentor", &quiz, nil, "help", ErrNoMentor},
		{"blank message", &quiz, &mentor, "   ", ErrEmptyMessage},
		{"valid", &quiz, &mentor, " refresh tokens? ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewHelpRequest(tt.quiz, tt.mentor, tt.message)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && (req.ID == "" || req.Message != "refresh tokens?" || req.MentorID != "m1") {
				t.Errorf("Unexpected request: %+v", req)
			}
		})
	}

	if got := Toast(mentor, quiz); got != "Help request sent to Aisha Verma for “JWT & OAuth2”." {
		t.Errorf("Toast = %q", got)
	}
}
