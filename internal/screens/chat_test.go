package screens

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/studybuddy/studybuddy/internal/api/apitest"
	"github.com/studybuddy/studybuddy/internal/model"
)

func TestChat_Ask(t *testing.T) {
	backend, client := newBackend(t)
	chat := NewChat(client)

	if err := chat.Ask(context.Background(), "   "); err != nil {
		t.Fatalf("Blank input should be ignored, got %v", err)
	}
	if len(chat.Messages()) != 0 || len(backend.Chats()) != 0 {
		t.Fatal("Blank input must not change the transcript")
	}

	if err := chat.Ask(context.Background(), " What is TCP? "); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if err := chat.Ask(context.Background(), "And UDP?"); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	msgs := chat.Messages()
	wantRoles := []model.ChatRole{model.ChatRoleUser, model.ChatRoleBot, model.ChatRoleUser, model.ChatRoleBot}
	if len(msgs) != len(wantRoles) {
		t.Fatalf("Expected %d messages, got %d", len(wantRoles), len(msgs))
	}
	for i, role := range wantRoles {
		if msgs[i].Role != role {
			t.Errorf("Message %d role = %s, want %s", i, msgs[i].Role, role)
		}
	}
	if msgs[1].Text != "You asked: What is TCP?" {
		t.Errorf("Bot reply = %q", msgs[1].Text)
	}

	chats := backend.Chats()
	if len(chats[0].History) != 0 {
		t.Errorf("First question should carry no history, got %+v", chats[0].History)
	}
	if len(chats[1].History) != 2 || chats[1].History[0].Role != "user" || chats[1].History[1].Role != "model" {
		t.Errorf("Unexpected history: %+v", chats[1].History)
	}
}

func TestChat_AskFailureAppendsError(t *testing.T) {
	backend, client := newBackend(t)
	backend.Fail(apitest.RouteChat, http.StatusInternalServerError)
	chat := NewChat(client)

	if err := chat.Ask(context.Background(), "hello"); err == nil {
		t.Fatal("Expected chat failure")
	}
	msgs := chat.Messages()
	if len(msgs) != 2 || msgs[1].Text != MsgChatError || msgs[1].Role != model.ChatRoleBot {
		t.Errorf("Unexpected transcript: %+v", msgs)
	}
	if chat.Busy() {
		t.Error("Busy flag not reset")
	}
}

func TestChat_UploadPDF(t *testing.T) {
	backend, client := newBackend(t)
	chat := NewChat(client)

	var statuses []string
	chat.SetUpdateCallback(func() { statuses = append(statuses, chat.UploadStatus()) })

	if err := chat.UploadPDF(context.Background(), "notes.pdf", strings.NewReader("%PDF")); err != nil {
		t.Fatalf("UploadPDF failed: %v", err)
	}
	if len(statuses) != 2 || statuses[0] != MsgUploading {
		t.Errorf("Unexpected statuses: %v", statuses)
	}
	if chat.UploadStatus() != "✅ PDF uploaded and text extracted successfully." {
		t.Errorf("UploadStatus = %q", chat.UploadStatus())
	}

	backend.Fail(apitest.RouteUploadPDF, http.StatusInternalServerError)
	if err := chat.UploadPDF(context.Background(), "notes.pdf", strings.NewReader("%PDF")); err == nil {
		t.Fatal("Expected upload failure")
	}
	if chat.UploadStatus() != MsgPDFUploadFailed {
		t.Errorf("UploadStatus = %q", chat.UploadStatus())
	}
}
