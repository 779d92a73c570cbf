package screens

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/studybuddy/studybuddy/internal/api/apitest"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/session"
)

func TestAuth_LoginNavigatesToDashboard(t *testing.T) {
	backend, client := newBackend(t)
	backend.AddUserWithID("42", "Ada", "Lovelace", "ada@example.com", "secret")

	sess := session.NewContext(session.NewMemoryStore())
	auth := NewAuth(client, sess)

	path, err := auth.Login(context.Background(), model.Credentials{Email: "ada@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if path != "/dashboard/42" {
		t.Errorf("Expected /dashboard/42, got %s", path)
	}
	if sess.Session().UserID != "42" {
		t.Errorf("Session not stored: %+v", sess.Session())
	}
	if auth.Busy() || auth.Error() != "" {
		t.Errorf("Unexpected state after login: busy=%v error=%q", auth.Busy(), auth.Error())
	}
}

func TestAuth_LoginFailures(t *testing.T) {
	tests := []struct {
		name      string
		creds     model.Credentials
		setup     func(*apitest.Backend)
		wantMsg   string
		wantCalls int
	}{
		{
			name:      "missing fields",
			creds:     model.Credentials{Email: "  ", Password: "x"},
			wantMsg:   MsgCredentialsRequired,
			wantCalls: 0,
		},
		{
			name:      "wrong password",
			creds:     model.Credentials{Email: "ada@example.com", Password: "nope"},
			wantMsg:   MsgLoginFailed,
			wantCalls: 1,
		},
		{
			name:      "fail envelope",
			creds:     model.Credentials{Email: "ada@example.com", Password: "secret"},
			setup:     func(b *apitest.Backend) { b.FailEnvelope(apitest.RouteLogin, "Invalid credentials") },
			wantMsg:   MsgLoginFailed,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, client := newBackend(t)
			backend.AddUserWithID("42", "Ada", "Lovelace", "ada@example.com", "secret")
			if tt.setup != nil {
				tt.setup(backend)
			}

			sess := session.NewContext(session.NewMemoryStore())
			auth := NewAuth(client, sess)

			if _, err := auth.Login(context.Background(), tt.creds); err == nil {
				t.Fatal("Expected login to fail")
			}
			if auth.Error() != tt.wantMsg {
				t.Errorf("Expected %q, got %q", tt.wantMsg, auth.Error())
			}
			if got := backend.Calls(apitest.RouteLogin); got != tt.wantCalls {
				t.Errorf("Expected %d login calls, got %d", tt.wantCalls, got)
			}
			if !sess.Session().IsZero() {
				t.Error("Failed login must not create a session")
			}
		})
	}
}

func TestAuth_SignupPasswordMismatch(t *testing.T) {
	backend, client := newBackend(t)
	auth := NewAuth(client, session.NewContext(session.NewMemoryStore()))

	_, err := auth.Signup(context.Background(), model.SignupForm{
		Email: "new@example.com", Password: "a", ConfirmPassword: "b",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if auth.Error() != MsgPasswordMismatch {
		t.Errorf("Expected %q, got %q", MsgPasswordMismatch, auth.Error())
	}
	if backend.Calls(apitest.RouteSignup) != 0 {
		t.Error("Mismatched passwords must not reach the backend")
	}
}

func TestAuth_Signup(t *testing.T) {
	backend, client := newBackend(t)
	sess := session.NewContext(session.NewMemoryStore())
	auth := NewAuth(client, sess)

	form := model.SignupForm{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
		University: "Yale", CurrentSemester: "3", Password: "cobol", ConfirmPassword: "cobol",
	}
	path, err := auth.Signup(context.Background(), form)
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if path != DashboardPath(sess.Session().UserID) || sess.Session().IsZero() {
		t.Errorf("Expected dashboard of new user, got %s (session %+v)", path, sess.Session())
	}

	if _, err := auth.Signup(context.Background(), form); err == nil {
		t.Fatal("Duplicate signup should fail")
	}
	if auth.Error() != MsgSignupFailed {
		t.Errorf("Expected %q, got %q", MsgSignupFailed, auth.Error())
	}
	if backend.Calls(apitest.RouteSignup) != 2 {
		t.Errorf("Expected 2 signup calls, got %d", backend.Calls(apitest.RouteSignup))
	}
}

func TestAuth_Logout(t *testing.T) {
	_, client := newBackend(t)
	sess := signedIn(t, "42")
	auth := NewAuth(client, sess)

	if path := auth.Logout(); path != AuthPath() {
		t.Errorf("Expected %s, got %s", AuthPath(), path)
	}
	if !sess.Session().IsZero() {
		t.Error("Logout should clear the session")
	}
}

func TestHeader_Greeting(t *testing.T) {
	backend, client := newBackend(t)
	backend.AddUserWithID("42", "Ada", "Lovelace", "ada@example.com", "secret")

	header := NewHeader(client)
	if got := header.Greeting(); got != MsgWelcome {
		t.Errorf("Greeting before load = %q", got)
	}

	header.Load(context.Background(), "42")
	if got := header.Greeting(); got != "Welcome, Ada Lovelace" {
		t.Errorf("Greeting = %q", got)
	}

	backend.Fail(apitest.RouteUser, http.StatusInternalServerError)
	backend.Fail(apitest.RouteUserQuery, http.StatusInternalServerError)
	other := NewHeader(client)
	other.Load(context.Background(), "42")
	if got := other.Greeting(); got != MsgWelcome {
		t.Errorf("Greeting after failure = %q", got)
	}
}
