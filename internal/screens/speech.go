package screens

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/platform"
)

// Speech reads text aloud through the backend speech endpoint
type Speech struct {
	client api.Client
	open   func(path string) error

	mutex    sync.RWMutex
	busy     bool
	errMsg   string
	lastPath string
	onUpdate func()
}

// NewSpeech creates a reader that plays audio with the system player
func NewSpeech(client api.Client) *Speech {
	return &Speech{client: client, open: platform.OpenFileWithDefaultApp}
}

// SetUpdateCallback sets the callback invoked after every state change
func (s *Speech) SetUpdateCallback(callback func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.onUpdate = callback
}

// SetPlayer replaces the function that plays a saved file. nil only saves.
func (s *Speech) SetPlayer(open func(path string) error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.open = open
}

// Busy reports whether audio is being generated
func (s *Speech) Busy() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.busy
}

// Error returns the message of the last failure
func (s *Speech) Error() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.errMsg
}

// LastPath returns the file written by the last successful call
func (s *Speech) LastPath() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastPath
}

// Speak converts text to audio, saves it under dir and plays it
func (s *Speech) Speak(ctx context.Context, text, language, dir, title string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", s.reject(invalid(MsgNothingToRead))
	}

	s.mutex.Lock()
	if s.busy {
		s.mutex.Unlock()
		return "", ErrBusy
	}
	s.busy = true
	s.errMsg = ""
	open := s.open
	s.mutex.Unlock()
	s.notify()

	audio, err := s.client.Speak(ctx, text, language)
	var path string
	if err == nil {
		path, err = platform.SaveAudio(dir, title, audio)
		if err != nil && path != "" {
			log.Printf("Warning: %v", err)
			err = nil
		}
	}

	s.mutex.Lock()
	s.busy = false
	if err != nil {
		s.errMsg = MsgSpeechFailed
	} else {
		s.lastPath = path
	}
	s.mutex.Unlock()
	s.notify()

	if err != nil {
		log.Printf("Speech failed: %v", err)
		return "", failed(MsgSpeechFailed, err)
	}

	log.Printf("Saved speech to %s", path)
	if open != nil {
		if err := open(path); err != nil {
			log.Printf("Warning: failed to play %s: %v", path, err)
		}
	}
	return path, nil
}

func (s *Speech) reject(err error) error {
	s.mutex.Lock()
	s.errMsg = Message(err)
	s.mutex.Unlock()
	s.notify()
	return err
}

func (s *Speech) notify() {
	s.mutex.RLock()
	callback := s.onUpdate
	s.mutex.RUnlock()
	if callback != nil {
		callback()
	}
}
