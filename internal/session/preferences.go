package session

import (
	"fyne.io/fyne/v2"
	"github.com/studybuddy/studybuddy/internal/model"
)

// KeyUserID is the preference key holding the logged-in user id
const KeyUserID = "session_user_id"

// PreferencesStore keeps the session in the Fyne app preferences
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore creates a store backed by the app preferences
func NewPreferencesStore(app fyne.App) *PreferencesStore {
	return &PreferencesStore{prefs: app.Preferences()}
}

// Load returns the stored session; ok is false when no user id is saved
func (p *PreferencesStore) Load() (model.Session, bool, error) {
	id := p.prefs.String(KeyUserID)
	if id == "" {
		return model.Session{}, false, nil
	}
	return model.Session{UserID: id}, true, nil
}

// Save stores the session user id in the preferences
func (p *PreferencesStore) Save(sess model.Session) error {
	p.prefs.SetString(KeyUserID, sess.UserID)
	return nil
}

// Clear removes the saved user id
func (p *PreferencesStore) Clear() error {
	p.prefs.RemoveValue(KeyUserID)
	return nil
}
