package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" && downloadsDir != "/sdcard/Download" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestDefaultAudioDir(t *testing.T) {
	dir, err := DefaultAudioDir()
	if err != nil {
		t.Fatalf("DefaultAudioDir() error = %v", err)
	}
	if filepath.Base(dir) != AudioDirName {
		t.Errorf("Expected audio directory to end with %s, got: %s", AudioDirName, dir)
	}
}

func TestAudioFileName(t *testing.T) {
	at := time.Date(2026, time.October, 19, 14, 5, 9, 0, time.UTC)

	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple", "Cloud Security", "cloud-security-20261019-140509.mp3"},
		{"punctuation", "  S3 & Glacier: Tiers!  ", "s3-glacier-tiers-20261019-140509.mp3"},
		{"empty", "", "summary-20261019-140509.mp3"},
		{"only symbols", "***", "summary-20261019-140509.mp3"},
		{"long", strings.Repeat("a", 100), strings.Repeat("a", MaxAudioNameLength) + "-20261019-140509.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AudioFileName(tt.title, at); got != tt.expected {
				t.Errorf("AudioFileName(%q) = %q, expected %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestSaveAudio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio")
	data := []byte("ID3 fake")

	path, err := SaveAudio(dir, "Networking summary", data)
	if err != nil {
		t.Fatalf("SaveAudio() error = %v", err)
	}
	if filepath.Dir(path) != dir || filepath.Ext(path) != AudioExtension {
		t.Errorf("unexpected path %s", path)
	}
	written, err := os.ReadFile(path)
	if err != nil || string(written) != string(data) {
		t.Errorf("file content = %q, %v", written, err)
	}

	if _, err := SaveAudio(dir, "empty", nil); err == nil {
		t.Error("SaveAudio() without data should fail")
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.mp3")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	if err := OpenFileWithDefaultApp(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestOpenFileInManager_WithExistingFile(t *testing.T) {
	tempFile, err := os.CreateTemp(t.TempDir(), "test_file_*.mp3")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tempFile.Close()

	// On CI or headless systems this fails, we only check it handles the path
	if err := OpenFileInManager(tempFile.Name()); err != nil {
		t.Logf("OpenFileInManager failed (expected on headless systems): %v", err)
	}
}
