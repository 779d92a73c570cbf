package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/platform"
)

// Environment variables that override preferences
const (
	EnvAPIBase  = "STUDYBUDDY_API_BASE"
	EnvTimeout  = "STUDYBUDDY_TIMEOUT"
	EnvRetries  = "STUDYBUDDY_RETRIES"
	EnvAudioDir = "STUDYBUDDY_AUDIO_DIR"
)

// Options is the resolved client configuration. The CLI builds it without
// a Fyne app.
type Options struct {
	APIBaseURL     string
	Timeout        time.Duration
	RetryAttempts  int
	RetryBackoff   time.Duration
	SummaryLength  model.SummaryLength
	SpeechLanguage string
	AudioDir       string
}

// DefaultOptions returns the built-in configuration
func DefaultOptions() Options {
	audioDir, err := platform.DefaultAudioDir()
	if err != nil {
		audioDir = "/tmp/studybuddy"
	}
	return Options{
		APIBaseURL:     DefaultAPIBaseURL,
		Timeout:        DefaultTimeoutSeconds * time.Second,
		RetryAttempts:  DefaultRetryAttempts,
		RetryBackoff:   DefaultRetryBackoffMS * time.Millisecond,
		SummaryLength:  model.DefaultSummaryLength,
		SpeechLanguage: DefaultSpeechLanguage,
		AudioDir:       audioDir,
	}
}

// LoadEnv reads .env style files into the process environment. Missing
// files are skipped and variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		log.Printf("Loaded environment from %s", f)
	}
	return nil
}

// WithEnv returns a copy of o with environment overrides applied
func (o Options) WithEnv() Options {
	if v := strings.TrimSpace(os.Getenv(EnvAPIBase)); v != "" {
		o.APIBaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		if d, ok := parseTimeout(v); ok {
			o.Timeout = d
		} else {
			log.Printf("Warning: ignoring invalid %s=%q", EnvTimeout, v)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvRetries)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= MinRetryAttempts && n <= MaxRetryAttempts {
			o.RetryAttempts = n
		} else {
			log.Printf("Warning: ignoring invalid %s=%q", EnvRetries, v)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvAudioDir)); v != "" {
		o.AudioDir = v
	}
	return o
}

// parseTimeout accepts a Go duration ("45s") or whole seconds ("45")
func parseTimeout(v string) (time.Duration, bool) {
	if n, err := strconv.Atoi(v); err == nil {
		if n <= 0 {
			return 0, false
		}
		return time.Duration(n) * time.Second, true
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

// RetryPolicy returns the retry settings for read-only requests
func (o Options) RetryPolicy() api.RetryPolicy {
	return api.RetryPolicy{MaxAttempts: o.RetryAttempts, Backoff: o.RetryBackoff}
}

// NewClient builds the backend client described by o
func (o Options) NewClient() api.Client {
	return api.WithRetry(api.NewService(o.APIBaseURL, o.Timeout), o.RetryPolicy())
}
