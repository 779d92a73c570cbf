package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// Audio file naming
const (
	AudioDirName       = "StudyBuddy"
	AudioExtension     = ".mp3"
	AudioTimeFormat    = "20060102-150405"
	MaxAudioNameLength = 60
	DefaultAudioName   = "summary"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

var unsafeNameChars = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// isAndroid checks multiple ways to detect an Android environment
func isAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if isAndroid() {
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// DefaultAudioDir returns the directory speech audio is saved to
func DefaultAudioDir() (string, error) {
	downloads, err := GetHomeDownloadsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(downloads, AudioDirName), nil
}

// AudioFileName builds a file name from a title and a timestamp
func AudioFileName(title string, at time.Time) string {
	name := strings.Trim(unsafeNameChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if len(name) > MaxAudioNameLength {
		name = strings.TrimRight(name[:MaxAudioNameLength], "-")
	}
	if name == "" {
		name = DefaultAudioName
	}
	return name + "-" + at.Format(AudioTimeFormat) + AudioExtension
}

// SaveAudio writes MP3 data into dir and returns the file path
func SaveAudio(dir, title string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("no audio data")
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	path := filepath.Join(dir, AudioFileName(title, time.Now()))
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	if err := NotifyMediaScanner(path); err != nil {
		return path, err
	}
	return path, nil
}

func absExisting(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %v", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := absExisting(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	case OSAndroid:
		return openFileWithDefaultAppAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileWithDefaultAppAndroid tries an audio intent, then lets the system pick
func openFileWithDefaultAppAndroid(filePath string) error {
	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", "audio/mpeg"},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", "audio/*"},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath},
	}
	for _, args := range attempts {
		if err := exec.Command("am", args...).Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to open file with any method: no suitable app found")
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := absExisting(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// NotifyMediaScanner notifies Android media scanner about new media files
// so saved audio shows up in music apps
func NotifyMediaScanner(filePath string) error {
	if !isAndroid() {
		return nil
	}

	cmd := exec.Command("am", "broadcast", "-a", "android.intent.action.MEDIA_SCANNER_SCAN_FILE", "-d", "file://"+filePath)
	go func() {
		if err := cmd.Run(); err != nil {
			fmt.Printf("Failed to notify media scanner about %s: %v\n", filePath, err)
		}
	}()

	return nil
}
