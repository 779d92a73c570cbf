package screens

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/platform"
)

// Chat is the chatbot panel
type Chat struct {
	client api.Client

	mutex        sync.RWMutex
	transcript   model.Transcript
	busy         bool
	uploadStatus string
	onUpdate     func()
}

// NewChat creates an empty chat
func NewChat(client api.Client) *Chat {
	return &Chat{client: client}
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Chat) SetUpdateCallback(callback func()) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onUpdate = callback
}

// Messages returns the transcript
func (c *Chat) Messages() []model.ChatMessage {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.transcript.Messages()
}

// Busy reports whether an answer is pending
func (c *Chat) Busy() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.busy
}

// UploadStatus returns the status line of the last document upload
func (c *Chat) UploadStatus() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.uploadStatus
}

// Ask sends input with the prior transcript as history and appends the
// answer. Blank input is ignored. A failure appends an error reply.
func (c *Chat) Ask(ctx context.Context, input string) error {
	message := strings.TrimSpace(input)
	if message == "" {
		return nil
	}

	c.mutex.Lock()
	if c.busy {
		c.mutex.Unlock()
		return ErrBusy
	}
	history := c.transcript.Messages()
	c.transcript.Append(model.NewChatMessage(model.ChatRoleUser, message))
	c.busy = true
	c.mutex.Unlock()
	c.notify()

	answer, err := c.client.Chat(ctx, message, history)
	reply := platform.CleanText(answer)
	if err != nil {
		log.Printf("Chat failed: %v", err)
		reply = MsgChatError
	}

	c.mutex.Lock()
	c.transcript.Append(model.NewChatMessage(model.ChatRoleBot, reply))
	c.busy = false
	c.mutex.Unlock()
	c.notify()
	return err
}

// UploadPDF sends a document the chatbot can answer from
func (c *Chat) UploadPDF(ctx context.Context, filename string, r io.Reader) error {
	if r == nil || strings.TrimSpace(filename) == "" {
		return invalid(MsgFileNeeded)
	}
	c.setUploadStatus(MsgUploading)

	message, err := c.client.UploadPDF(ctx, filename, r)
	if err != nil {
		log.Printf("PDF upload of %s failed: %v", filename, err)
		c.setUploadStatus(MsgPDFUploadFailed)
		return failed(MsgPDFUploadFailed, err)
	}
	c.setUploadStatus(MsgUploadedPrefix + message)
	return nil
}

func (c *Chat) setUploadStatus(status string) {
	c.mutex.Lock()
	c.uploadStatus = status
	c.mutex.Unlock()
	c.notify()
}

func (c *Chat) notify() {
	c.mutex.RLock()
	callback := c.onUpdate
	c.mutex.RUnlock()
	if callback != nil {
		callback()
	}
}
