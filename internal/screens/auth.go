package screens

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/session"
)

// Auth is the login / signup screen
type Auth struct {
	client  api.Client
	session *session.Context

	mutex    sync.RWMutex
	busy     bool
	errMsg   string
	notice   string
	onUpdate func()
}

// NewAuth creates the auth screen
func NewAuth(client api.Client, sess *session.Context) *Auth {
	return &Auth{client: client, session: sess}
}

// SetUpdateCallback sets the callback invoked after every state change
func (a *Auth) SetUpdateCallback(callback func()) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.onUpdate = callback
}

// Busy reports whether a login or signup is in flight
func (a *Auth) Busy() bool {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.busy
}

// Error returns the message of the last failed action
func (a *Auth) Error() string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.errMsg
}

// Notice returns an informational message, such as after signup
func (a *Auth) Notice() string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.notice
}

func (a *Auth) begin() bool {
	a.mutex.Lock()
	if a.busy {
		a.mutex.Unlock()
		return false
	}
	a.busy = true
	a.errMsg = ""
	a.notice = ""
	a.mutex.Unlock()
	a.notify()
	return true
}

func (a *Auth) finish(errMsg, notice string) {
	a.mutex.Lock()
	a.busy = false
	a.errMsg = errMsg
	a.notice = notice
	a.mutex.Unlock()
	a.notify()
}

func (a *Auth) reject(err error) error {
	a.mutex.Lock()
	a.errMsg = Message(err)
	a.mutex.Unlock()
	a.notify()
	return err
}

// Login signs in and returns the dashboard path of the user
func (a *Auth) Login(ctx context.Context, creds model.Credentials) (string, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return "", a.reject(invalid(MsgCredentialsRequired))
	}
	if !a.begin() {
		return "", ErrBusy
	}

	sess, err := a.client.Login(ctx, creds)
	if err == nil && sess.IsZero() {
		err = api.ErrMalformed
	}
	if err == nil {
		err = a.session.SignIn(sess)
	}
	if err != nil {
		log.Printf("Login failed for %s: %v", creds.Email, err)
		a.finish(MsgLoginFailed, "")
		return "", failed(MsgLoginFailed, err)
	}

	log.Printf("User %s logged in", sess.UserID)
	a.finish("", "")
	return DashboardPath(sess.UserID), nil
}

// Signup creates an account. When the backend answers with a user id the
// user is signed in and the dashboard path is returned, otherwise the login
// path is returned with a notice.
func (a *Auth) Signup(ctx context.Context, form model.SignupForm) (string, error) {
	form.Email = strings.TrimSpace(form.Email)
	if form.Password != form.ConfirmPassword {
		return "", a.reject(invalid(MsgPasswordMismatch))
	}
	if form.Email == "" || form.Password == "" {
		return "", a.reject(invalid(MsgCredentialsRequired))
	}
	if !a.begin() {
		return "", ErrBusy
	}

	sess, err := a.client.Signup(ctx, form)
	if err != nil {
		log.Printf("Signup failed for %s: %v", form.Email, err)
		a.finish(MsgSignupFailed, "")
		return "", failed(MsgSignupFailed, err)
	}
	if sess.IsZero() {
		a.finish("", MsgSignupLogin)
		return AuthPath(), nil
	}
	if err := a.session.SignIn(sess); err != nil {
		log.Printf("Failed to save session after signup: %v", err)
		a.finish(MsgSignupFailed, "")
		return "", failed(MsgSignupFailed, err)
	}

	a.finish("", "")
	return DashboardPath(sess.UserID), nil
}

// Logout forgets the session and returns the auth path
func (a *Auth) Logout() string {
	if err := a.session.SignOut(); err != nil {
		log.Printf("Warning: %v", err)
	}
	return AuthPath()
}

func (a *Auth) notify() {
	a.mutex.RLock()
	callback := a.onUpdate
	a.mutex.RUnlock()
	if callback != nil {
		callback()
	}
}
