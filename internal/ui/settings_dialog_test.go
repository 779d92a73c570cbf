package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/studybuddy/studybuddy/internal/config"
	"github.com/studybuddy/studybuddy/internal/model"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), window)
	saved := false
	sd.onSaved = func() { saved = true }
	sd.Show()

	if sd.apiURLEntry.Text != config.DefaultAPIBaseURL {
		t.Errorf("dialog should show the current base URL, got %q", sd.apiURLEntry.Text)
	}

	sd.apiURLEntry.SetText("https://study.example.com/")
	sd.timeoutEntry.SetText("45")
	sd.retriesEntry.SetText("not a number")
	sd.lengthSelect.SetSelected("long")
	sd.speechSelect.SetSelected("Hindi")
	sd.languageSelect.SetSelected("हिन्दी")
	sd.onSave(true)

	if !saved {
		t.Error("onSaved should run after saving")
	}
	if got := settings.GetAPIBaseURL(); got != "https://study.example.com" {
		t.Errorf("base URL = %q", got)
	}
	if got := settings.GetTimeout(); got != 45*time.Second {
		t.Errorf("timeout = %v, want 45s", got)
	}
	if got := settings.GetRetryAttempts(); got != config.DefaultRetryAttempts {
		t.Errorf("invalid retries should keep the default, got %d", got)
	}
	if got := settings.GetSummaryLength(); got != model.SummaryLong {
		t.Errorf("summary length = %q", got)
	}
	if got := settings.GetSpeechLanguage(); got != "Hindi" {
		t.Errorf("speech language = %q", got)
	}
	if got := settings.GetLanguage(); got != "hi" {
		t.Errorf("language = %q, want hi", got)
	}
}

func TestSettingsDialog_CancelKeepsValues(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), window)
	sd.Show()

	sd.apiURLEntry.SetText("https://elsewhere.example.com")
	sd.onSave(false)

	if got := settings.GetAPIBaseURL(); got != config.DefaultAPIBaseURL {
		t.Errorf("cancel should not save, got %q", got)
	}
}
