package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL     = "api_base_url"
	KeyTimeoutSeconds = "request_timeout_seconds"
	KeyRetryAttempts  = "retry_attempts"
	KeyRetryBackoffMS = "retry_backoff_ms"
	KeyLanguage       = "app_language"
	KeySummaryLength  = "default_summary_length"
	KeySpeechLanguage = "speech_language"
	KeyAudioDir       = "audio_directory"
)

// Default values
const (
	DefaultAPIBaseURL     = api.DefaultBaseURL
	DefaultTimeoutSeconds = 30
	DefaultRetryAttempts  = 2
	DefaultRetryBackoffMS = 2000
	DefaultLanguage       = "system"
	DefaultSpeechLanguage = "English"
)

// Limits for clamped settings
const (
	MinTimeoutSeconds = 5
	MaxTimeoutSeconds = 300
	MinRetryAttempts  = 1
	MaxRetryAttempts  = 5
	MaxRetryBackoffMS = 10000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the backend address
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the backend address
func (s *Settings) SetAPIBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetTimeout returns the per-request timeout
func (s *Settings) GetTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyTimeoutSeconds)
	if value <= 0 {
		s.SetTimeoutSeconds(DefaultTimeoutSeconds)
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(value) * time.Second
}

// SetTimeoutSeconds sets the per-request timeout
func (s *Settings) SetTimeoutSeconds(seconds int) {
	if seconds < MinTimeoutSeconds {
		seconds = MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		seconds = MaxTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyTimeoutSeconds, seconds)
}

// GetRetryAttempts returns how often read-only requests are attempted
func (s *Settings) GetRetryAttempts() int {
	value := s.app.Preferences().Int(KeyRetryAttempts)
	if value <= 0 {
		s.SetRetryAttempts(DefaultRetryAttempts)
		return DefaultRetryAttempts
	}
	return value
}

// SetRetryAttempts sets how often read-only requests are attempted
func (s *Settings) SetRetryAttempts(attempts int) {
	if attempts < MinRetryAttempts {
		attempts = MinRetryAttempts
	}
	if attempts > MaxRetryAttempts {
		attempts = MaxRetryAttempts
	}
	s.app.Preferences().SetInt(KeyRetryAttempts, attempts)
}

// GetRetryBackoff returns the pause between attempts
func (s *Settings) GetRetryBackoff() time.Duration {
	value := s.app.Preferences().IntWithFallback(KeyRetryBackoffMS, DefaultRetryBackoffMS)
	return time.Duration(value) * time.Millisecond
}

// SetRetryBackoff sets the pause between attempts
func (s *Settings) SetRetryBackoff(d time.Duration) {
	ms := int(d / time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	if ms > MaxRetryBackoffMS {
		ms = MaxRetryBackoffMS
	}
	s.app.Preferences().SetInt(KeyRetryBackoffMS, ms)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"hi":     "हिन्दी",
	}
}

// GetSummaryLength returns the summary variant shown when a course opens
func (s *Settings) GetSummaryLength() model.SummaryLength {
	length, ok := model.ParseSummaryLength(s.app.Preferences().String(KeySummaryLength))
	if !ok {
		s.SetSummaryLength(model.DefaultSummaryLength)
		return model.DefaultSummaryLength
	}
	return length
}

// SetSummaryLength sets the default summary variant
func (s *Settings) SetSummaryLength(length model.SummaryLength) {
	if _, ok := model.ParseSummaryLength(string(length)); !ok {
		length = model.DefaultSummaryLength
	}
	s.app.Preferences().SetString(KeySummaryLength, string(length))
}

// GetSpeechLanguage returns the language used for read-aloud
func (s *Settings) GetSpeechLanguage() string {
	lang := s.app.Preferences().String(KeySpeechLanguage)
	if !isSpeechLanguage(lang) {
		s.SetSpeechLanguage(DefaultSpeechLanguage)
		return DefaultSpeechLanguage
	}
	return lang
}

// SetSpeechLanguage sets the language used for read-aloud
func (s *Settings) SetSpeechLanguage(lang string) {
	if !isSpeechLanguage(lang) {
		lang = DefaultSpeechLanguage
	}
	s.app.Preferences().SetString(KeySpeechLanguage, lang)
}

func isSpeechLanguage(lang string) bool {
	for _, l := range api.SpeechLanguages() {
		if l == lang {
			return true
		}
	}
	return false
}

// GetAudioDirectory returns where speech audio is saved
func (s *Settings) GetAudioDirectory() string {
	dir := s.app.Preferences().String(KeyAudioDir)
	if dir == "" {
		defaultDir, err := platform.DefaultAudioDir()
		if err != nil {
			defaultDir = "/tmp/studybuddy"
		}
		s.SetAudioDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetAudioDirectory sets where speech audio is saved
func (s *Settings) SetAudioDirectory(dir string) {
	s.app.Preferences().SetString(KeyAudioDir, dir)
}

// Options returns the preference values with environment overrides applied
func (s *Settings) Options() Options {
	opts := Options{
		APIBaseURL:     s.GetAPIBaseURL(),
		Timeout:        s.GetTimeout(),
		RetryAttempts:  s.GetRetryAttempts(),
		RetryBackoff:   s.GetRetryBackoff(),
		SummaryLength:  s.GetSummaryLength(),
		SpeechLanguage: s.GetSpeechLanguage(),
		AudioDir:       s.GetAudioDirectory(),
	}
	return opts.WithEnv()
}
