package ui

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/community"
	"github.com/studybuddy/studybuddy/internal/config"
	"github.com/studybuddy/studybuddy/internal/screens"
	"github.com/studybuddy/studybuddy/internal/session"
)

// Services are the collaborators the UI drives
type Services struct {
	Client   api.Client
	Session  *session.Context
	Importer screens.LectureImporter
	Catalog  community.Catalog
}

// view is one routed page
type view interface {
	content() fyne.CanvasObject
	// start kicks off the loads the page needs; ctx ends when the user
	// navigates away
	start(ctx context.Context)
}

// RootUI represents the main UI structure: a header bar over the page the
// current route renders
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	services     Services
	header       *screens.Header

	mutex      sync.Mutex
	path       string
	route      screens.Route
	viewCtx    context.Context
	viewCancel context.CancelFunc

	greetingLabel *widget.Label
	chatBtn       *widget.Button
	logoutBtn     *widget.Button

	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates the main UI and shows the page of the saved session
func NewRootUI(window fyne.Window, app fyne.App, services Services) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if services.Client == nil {
		services.Client = settings.Options().NewClient()
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		services:     services,
		header:       screens.NewHeader(services.Client),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.header.SetUpdateCallback(func() {
		fyne.Do(ui.refreshHeader)
	})

	ui.createMenu()
	ui.Navigate(ui.startPath())
	return ui
}

// startPath is the dashboard of a restored session, else the login page
func (ui *RootUI) startPath() string {
	sess := ui.services.Session.Session()
	if sess.IsZero() {
		return screens.AuthPath()
	}
	return screens.DashboardPath(sess.UserID)
}

// Navigate renders the page of path. Unknown paths and pages that need a
// session without one lead to the login page.
func (ui *RootUI) Navigate(path string) {
	route, err := screens.ParseRoute(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		path, route = screens.AuthPath(), screens.Route{Name: screens.RouteAuth}
	}
	if route.Name != screens.RouteAuth && route.Name != screens.RouteChat && ui.services.Session.Session().IsZero() {
		log.Printf("Warning: %s needs a session, showing login", path)
		path, route = screens.AuthPath(), screens.Route{Name: screens.RouteAuth}
	}

	ctx, cancel := context.WithCancel(context.Background())
	ui.mutex.Lock()
	if ui.viewCancel != nil {
		ui.viewCancel()
	}
	ui.path = path
	ui.route = route
	ui.viewCtx = ctx
	ui.viewCancel = cancel
	ui.mutex.Unlock()

	log.Printf("Navigating to %s", path)

	var page view
	switch route.Name {
	case screens.RouteDashboard:
		page = newDashboardView(ui)
	case screens.RouteContents:
		page = newContentsView(ui, route.CourseID, route.UserID)
	case screens.RouteChat:
		page = newChatView(ui)
	case screens.RouteCommunity:
		page = newCommunityView(ui, route.CourseID, route.UserID)
	default:
		page = newAuthView(ui)
	}

	ui.window.SetContent(container.NewBorder(ui.createTopBar(route), nil, nil, nil, page.content()))
	page.start(ctx)

	if userID := ui.services.Session.Session().UserID; userID != "" && route.Name != screens.RouteAuth {
		go ui.header.Load(ctx, userID)
	}
}

// Refresh re-renders the current page, e.g. after a language change
func (ui *RootUI) Refresh() {
	ui.mutex.Lock()
	path := ui.path
	ui.mutex.Unlock()
	ui.Navigate(path)
}

// run executes action off the UI goroutine with a deadline. The context is
// cancelled when the user leaves the page.
func (ui *RootUI) run(action func(ctx context.Context)) {
	ui.mutex.Lock()
	parent := ui.viewCtx
	ui.mutex.Unlock()
	if parent == nil {
		parent = context.Background()
	}

	go func() {
		ctx, cancel := context.WithTimeout(parent, ActionTimeout)
		defer cancel()
		action(ctx)
	}()
}

// navigateLater navigates from a background goroutine
func (ui *RootUI) navigateLater(path string) {
	fyne.Do(func() {
		ui.Navigate(path)
	})
}

func (ui *RootUI) createTopBar(route screens.Route) fyne.CanvasObject {
	t := ui.localization.GetText

	title := widget.NewLabel(t(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	ui.greetingLabel = widget.NewLabel(ui.header.Greeting())

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.chatBtn = widget.NewButton(IconChat+" "+t(KeyChatbot), func() {
		ui.Navigate(screens.ChatPath())
	})
	ui.chatBtn.Importance = widget.LowImportance

	ui.logoutBtn = widget.NewButton(t(KeyLogout), ui.onLogout)
	ui.logoutBtn.Importance = widget.DangerImportance

	left := container.NewHBox(title)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, title)
	}

	right := container.NewHBox(ui.chatBtn, settingsBtn, ui.logoutBtn)
	if route.Name == screens.RouteAuth {
		ui.greetingLabel.Hide()
		ui.logoutBtn.Hide()
	}
	if route.Name == screens.RouteChat {
		ui.chatBtn.Hide()
	}

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	bar := container.NewBorder(nil, nil, left, right, container.NewCenter(ui.greetingLabel))
	return container.NewVBox(bar, widget.NewSeparator(), ui.notificationContainer)
}

func (ui *RootUI) refreshHeader() {
	if ui.greetingLabel != nil {
		ui.greetingLabel.SetText(ui.header.Greeting())
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	logoutItem := fyne.NewMenuItem(ui.localization.GetText(KeyLogout), ui.onLogout)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, logoutItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.Refresh()
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// A new backend address or retry policy needs a new client
		ui.services.Client = ui.settings.Options().NewClient()
		ui.header = screens.NewHeader(ui.services.Client)
		ui.header.SetUpdateCallback(func() {
			fyne.Do(ui.refreshHeader)
		})
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.createMenu()
		ui.Refresh()
	})
}

func (ui *RootUI) onLogout() {
	ui.Navigate(screens.NewAuth(ui.services.Client, ui.services.Session).Logout())
}

// showNotification displays a message in the panel under the header.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	fyne.Do(func() {
		if ui.notificationLabel == nil || ui.notificationContainer == nil {
			return
		}
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	fyne.Do(func() {
		if ui.notificationContainer == nil {
			return
		}
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// showToast shows a short message in the top-right corner. onHide runs
// when it disappears.
func (ui *RootUI) showToast(message string, onHide func()) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	var toastPopup *widget.PopUp
	var once sync.Once
	hide := func() {
		once.Do(func() {
			toastPopup.Hide()
			if onHide != nil {
				onHide()
			}
		})
	}

	closeBtn := widget.NewButton(IconClose, hide)
	closeBtn.Importance = widget.LowImportance

	toastPopup = widget.NewPopUp(container.NewBorder(nil, nil, nil, closeBtn, label), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(hide)
	}()
}
