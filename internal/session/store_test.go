package session

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/studybuddy/studybuddy/internal/model"
)

func TestStores(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) Store
	}{
		{"memory", func(t *testing.T) Store { return NewMemoryStore() }},
		{"preferences", func(t *testing.T) Store { return NewPreferencesStore(test.NewApp()) }},
		{"sqlite", func(t *testing.T) Store {
			s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "nested", "session.db"))
			if err != nil {
				t.Fatalf("OpenSQLiteStore() error = %v", err)
			}
			t.Cleanup(func() { s.Close() })
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store(t)

			if _, ok, err := store.Load(); ok || err != nil {
				t.Fatalf("Load() on empty store = (%v, %v)", ok, err)
			}

			if err := store.Save(model.Session{UserID: "42"}); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if err := store.Save(model.Session{UserID: "43"}); err != nil {
				t.Fatalf("second Save() error = %v", err)
			}
			sess, ok, err := store.Load()
			if err != nil || !ok || sess.UserID != "43" {
				t.Errorf("Load() = (%+v, %v, %v), expected user 43", sess, ok, err)
			}

			if err := store.Clear(); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			if _, ok, _ := store.Load(); ok {
				t.Error("Load() after Clear() still reports a session")
			}
		})
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	if err := first.Save(model.Session{UserID: "7"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	first.Close()

	second, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()

	sess, ok, err := second.Load()
	if err != nil || !ok || sess.UserID != "7" {
		t.Errorf("Load() after reopen = (%+v, %v, %v)", sess, ok, err)
	}
}
