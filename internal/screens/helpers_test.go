package screens

import (
	"testing"
	"time"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/api/apitest"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/session"
)

func newBackend(t *testing.T) (*apitest.Backend, api.Client) {
	t.Helper()
	backend := apitest.New()
	url := backend.Start(t)
	return backend, api.NewService(url, 5*time.Second)
}

func signedIn(t *testing.T, userID string) *session.Context {
	t.Helper()
	sess := session.NewContext(session.NewMemoryStore())
	if err := sess.SignIn(model.Session{UserID: userID}); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	return sess
}

func intPtr(v int) *int {
	return &v
}
