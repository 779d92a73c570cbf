package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/studybuddy/studybuddy/internal/community"
	"github.com/studybuddy/studybuddy/internal/config"
	"github.com/studybuddy/studybuddy/internal/platform"
	"github.com/studybuddy/studybuddy/internal/session"
	"github.com/studybuddy/studybuddy/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.studybuddy.app"
	AppName = "StudyBuddy"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewStudyTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetAudioDirectory()); err != nil {
		log.Printf("Warning: failed to ensure audio dir: %v", err)
	}

	importer := platform.NewLectureImporter()
	importer.SetTimeout(settings.GetTimeout())

	ui.NewRootUI(myWindow, myApp, ui.Services{
		Client:   settings.Options().NewClient(),
		Session:  session.NewContext(session.NewPreferencesStore(myApp)),
		Importer: importer,
		Catalog:  community.DefaultCatalog(),
	})

	myWindow.ShowAndRun()
}
