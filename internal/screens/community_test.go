package screens

import (
	"errors"
	"testing"

	"github.com/studybuddy/studybuddy/internal/community"
)

func TestCommunity_Filters(t *testing.T) {
	page := NewCommunity(community.DefaultCatalog())

	quizzes := page.Quizzes()
	if len(quizzes) != 6 || quizzes[0].Score != 2 {
		t.Fatalf("Unexpected default list: %+v", quizzes)
	}

	page.SetTopic("Machine Learning")
	if got := page.Quizzes(); len(got) != 1 || got[0].ID != 104 {
		t.Errorf("Topic filter = %+v", got)
	}

	page.SetTopic(community.AllTopics)
	page.SetOrder(community.SortScoreDesc)
	if got := page.Quizzes(); got[0].Score != 5 {
		t.Errorf("Highest first = %+v", got)
	}

	page.SetQuery("oauth")
	if got := page.Quizzes(); len(got) != 1 || got[0].ID != 110 {
		t.Errorf("Search = %+v", got)
	}
}

func TestCommunity_HelpRequest(t *testing.T) {
	page := NewCommunity(community.DefaultCatalog())

	if page.OpenHelp(999) {
		t.Fatal("Unknown quiz should not open the drawer")
	}
	if !page.OpenHelp(110) {
		t.Fatal("OpenHelp(110) failed")
	}

	suggestions := page.Suggestions()
	if len(suggestions) != 2 || suggestions[0].ID != "m1" {
		t.Errorf("Suggestions = %+v", suggestions)
	}
	if res := page.Resources(); len(res) != 1 || res[0].ID != "r5" {
		t.Errorf("Resources = %+v", res)
	}

	if _, err := page.SendHelp(); !errors.Is(err, ErrValidation) || Message(err) != MsgMentorNeeded {
		t.Errorf("Expected mentor validation, got %v", err)
	}
	if page.SelectMentor("m3") {
		t.Error("Mentor outside the suggestions should be rejected")
	}
	if !page.SelectMentor("m4") {
		t.Fatal("SelectMentor(m4) failed")
	}
	page.SetMessage("   ")
	if page.CanSend() {
		t.Error("Blank message should block sending")
	}
	if _, err := page.SendHelp(); Message(err) != MsgMessageNeeded {
		t.Errorf("Expected message validation, got %v", err)
	}

	page.SetMessage("How do refresh tokens work?")
	if !page.CanSend() {
		t.Fatal("Complete request should be sendable")
	}
	toast, err := page.SendHelp()
	if err != nil {
		t.Fatalf("SendHelp failed: %v", err)
	}
	if toast != "Help request sent to Leo Garcia for “JWT & OAuth2”." || page.Toast() != toast {
		t.Errorf("Toast = %q", toast)
	}
	if _, open := page.HelpQuiz(); open {
		t.Error("Drawer should close after sending")
	}
	if reqs := page.Requests(); len(reqs) != 1 || reqs[0].MentorID != "m4" {
		t.Errorf("Requests = %+v", reqs)
	}

	page.DismissToast()
	if page.Toast() != "" {
		t.Error("Toast not dismissed")
	}
}

func TestMessage(t *testing.T) {
	if Message(nil) != "" {
		t.Error("Message(nil) should be empty")
	}
	if Message(invalid("bad")) != "bad" {
		t.Error("Validation message not returned")
	}
	if Message(failed(MsgSubmitFailed, errors.New("boom"))) != MsgSubmitFailed {
		t.Error("Static message not returned")
	}
}
