package session

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/studybuddy/studybuddy/internal/model"
)

// ErrNotSignedIn is returned by operations that need a logged-in user
var ErrNotSignedIn = errors.New("not signed in")

// Context is the session handed to every screen. It mirrors the store and
// announces logins and logouts.
type Context struct {
	store    Store
	current  model.Session
	mutex    sync.RWMutex
	onChange func(model.Session)
}

// NewContext restores the saved session from store, if any
func NewContext(store Store) *Context {
	c := &Context{store: store}
	sess, ok, err := store.Load()
	if err != nil {
		log.Printf("Warning: failed to restore session: %v", err)
	} else if ok {
		c.current = sess
	}
	return c
}

// SetChangeCallback sets the callback invoked after login and logout
func (c *Context) SetChangeCallback(callback func(model.Session)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onChange = callback
}

// Session returns the current session, which is zero when signed out
func (c *Context) Session() model.Session {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.current
}

// UserID returns the logged-in user id or ErrNotSignedIn
func (c *Context) UserID() (string, error) {
	sess := c.Session()
	if sess.IsZero() {
		return "", ErrNotSignedIn
	}
	return sess.UserID, nil
}

// SignIn stores sess and makes it current
func (c *Context) SignIn(sess model.Session) error {
	if sess.IsZero() {
		return fmt.Errorf("sign in: %w", ErrNotSignedIn)
	}
	if err := c.store.Save(sess); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	c.set(sess)
	return nil
}

// SignOut forgets the session. The in-memory session is cleared even when
// the store fails.
func (c *Context) SignOut() error {
	err := c.store.Clear()
	c.set(model.Session{})
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (c *Context) set(sess model.Session) {
	c.mutex.Lock()
	c.current = sess
	callback := c.onChange
	c.mutex.Unlock()

	if callback != nil {
		callback(sess)
	}
}
