package model

import "testing"

func TestChatRole_WireRole(t *testing.T) {
	if got := ChatRoleUser.WireRole(); got != "user" {
		t.Errorf("user WireRole() = %q", got)
	}
	if got := ChatRoleBot.WireRole(); got != "model" {
		t.Errorf("bot WireRole() = %q", got)
	}
}

func TestTranscript_Append(t *testing.T) {
	var tr Transcript
	first := NewChatMessage(ChatRoleUser, "hi")
	second := NewChatMessage(ChatRoleBot, "hello")
	tr.Append(first)
	tr.Append(second)

	msgs := tr.Messages()
	if tr.Len() != 2 || msgs[0].Text != "hi" || msgs[1].Role != ChatRoleBot {
		t.Fatalf("unexpected transcript %+v", msgs)
	}
	if first.ID == second.ID {
		t.Error("messages should get distinct ids")
	}

	msgs[0].Text = "changed"
	if tr.Messages()[0].Text != "hi" {
		t.Error("Messages() must return a copy")
	}
}
