package screens

import (
	"context"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/fetch"
	"github.com/studybuddy/studybuddy/internal/model"
)

// Header is the greeting bar shared by the signed-in screens
type Header struct {
	users *fetch.Resource[string, model.User]
}

// NewHeader creates a header backed by client
func NewHeader(client api.Client) *Header {
	return &Header{
		users: fetch.New("user", func(ctx context.Context, userID string) (model.User, error) {
			return client.GetUser(ctx, userID)
		}),
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (h *Header) SetUpdateCallback(callback func()) {
	if callback == nil {
		h.users.SetUpdateCallback(nil)
		return
	}
	h.users.SetUpdateCallback(func(fetch.State[string, model.User]) { callback() })
}

// Load fetches the profile of userID
func (h *Header) Load(ctx context.Context, userID string) {
	h.users.Select(ctx, userID)
}

// Greeting returns "Welcome, First Last", or "Welcome" until the profile
// is known
func (h *Header) Greeting() string {
	st := h.users.State()
	if !st.Loaded() {
		return MsgWelcome
	}
	name := st.Value.DisplayName()
	if name == "" {
		return MsgWelcome
	}
	return MsgWelcome + ", " + name
}
