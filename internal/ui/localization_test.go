package ui

import "testing"

func TestLocalization_EveryLanguageHasEveryKey(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("language %s is offered but has no texts", lang)
		}
		for key := range l.texts["en"] {
			if texts[key] == "" {
				t.Errorf("language %s is missing %q", lang, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{"hindi", "hi", "hi"},
		{"system falls back to english", "system", "en"},
		{"unknown language is ignored", "xx", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.GetCurrentLanguage(); got != tt.want {
				t.Errorf("GetCurrentLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyAppTitle); got != "StudyBuddy" {
		t.Errorf("GetText(KeyAppTitle) = %q", got)
	}

	l.SetLanguage("hi")
	if got := l.GetText(KeyLogout); got != "लॉग आउट" {
		t.Errorf("hindi GetText(KeyLogout) = %q", got)
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("unknown key should come back unchanged, got %q", got)
	}
}
