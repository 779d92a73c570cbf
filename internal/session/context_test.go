package session

import (
	"errors"
	"testing"

	"github.com/studybuddy/studybuddy/internal/model"
)

type brokenStore struct{ MemoryStore }

func (b *brokenStore) Clear() error { return errors.New("disk full") }

func (b *brokenStore) Load() (model.Session, bool, error) {
	return model.Session{}, false, errors.New("corrupt")
}

func TestContext_RestoresSavedSession(t *testing.T) {
	store := NewMemoryStore()
	store.Save(model.Session{UserID: "42"})

	ctx := NewContext(store)
	id, err := ctx.UserID()
	if err != nil || id != "42" {
		t.Errorf("UserID() = (%q, %v), expected 42", id, err)
	}
}

func TestContext_SignInAndOut(t *testing.T) {
	store := NewMemoryStore()
	ctx := NewContext(store)

	var changes []string
	ctx.SetChangeCallback(func(s model.Session) { changes = append(changes, s.UserID) })

	if _, err := ctx.UserID(); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("UserID() before login error = %v", err)
	}
	if err := ctx.SignIn(model.Session{}); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("SignIn(zero) error = %v", err)
	}

	if err := ctx.SignIn(model.Session{UserID: "42"}); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if saved, ok, _ := store.Load(); !ok || saved.UserID != "42" {
		t.Errorf("store holds %+v", saved)
	}

	if err := ctx.SignOut(); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if !ctx.Session().IsZero() {
		t.Error("session not cleared")
	}
	if len(changes) != 2 || changes[0] != "42" || changes[1] != "" {
		t.Errorf("change callbacks = %v", changes)
	}
}

func TestContext_BrokenStore(t *testing.T) {
	ctx := NewContext(&brokenStore{})
	if !ctx.Session().IsZero() {
		t.Fatal("a failed restore should leave the user signed out")
	}

	ctx.SignIn(model.Session{UserID: "1"})
	if err := ctx.SignOut(); err == nil {
		t.Error("SignOut() should report the store failure")
	}
	if !ctx.Session().IsZero() {
		t.Error("SignOut() should clear the in-memory session even when the store fails")
	}
}
