package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/api/apitest"
	"github.com/studybuddy/studybuddy/internal/community"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/screens"
	"github.com/studybuddy/studybuddy/internal/session"
)

func newTestServices(t *testing.T) Services {
	t.Helper()
	backend := apitest.New()
	url := backend.Start(t)
	backend.AddUserWithID("u1", "Ada", "Lovelace", "ada@example.com", "secret")

	return Services{
		Client:  api.NewService(url, 5*time.Second),
		Session: session.NewContext(session.NewMemoryStore()),
		Catalog: community.DefaultCatalog(),
	}
}

func (ui *RootUI) currentRoute() screens.Route {
	ui.mutex.Lock()
	defer ui.mutex.Unlock()
	return ui.route
}

func TestRootUI_StartsAtLogin(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	ui := NewRootUI(window, app, newTestServices(t))

	if got := ui.currentRoute().Name; got != screens.RouteAuth {
		t.Errorf("start route = %q, want %q", got, screens.RouteAuth)
	}
	if window.Title() != "StudyBuddy" {
		t.Errorf("window title = %q", window.Title())
	}
	if ui.logoutBtn.Visible() {
		t.Error("logout should be hidden on the login page")
	}
}

func TestRootUI_RestoredSessionOpensDashboard(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	services := newTestServices(t)
	if err := services.Session.SignIn(model.Session{UserID: "u1"}); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	ui := NewRootUI(window, app, services)

	route := ui.currentRoute()
	if route.Name != screens.RouteDashboard || route.UserID != "u1" {
		t.Errorf("start route = %+v, want dashboard of u1", route)
	}
}

func TestRootUI_Navigate(t *testing.T) {
	tests := []struct {
		name     string
		signedIn bool
		path     string
		want     string
	}{
		{"dashboard needs a session", false, "/dashboard/u1", screens.RouteAuth},
		{"contents needs a session", false, "/contentspage/3/u1", screens.RouteAuth},
		{"chat works signed out", false, "/chatbot", screens.RouteChat},
		{"unknown path", true, "/nowhere", screens.RouteAuth},
		{"dashboard", true, "/dashboard/u1", screens.RouteDashboard},
		{"contents", true, "/contentspage/3/u1", screens.RouteContents},
		{"community", true, "/community/3/u1", screens.RouteCommunity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := test.NewApp()
			window := test.NewWindow(nil)
			defer window.Close()

			services := newTestServices(t)
			ui := NewRootUI(window, app, services)
			if tt.signedIn {
				if err := services.Session.SignIn(model.Session{UserID: "u1"}); err != nil {
					t.Fatalf("SignIn failed: %v", err)
				}
			}

			ui.Navigate(tt.path)
			if got := ui.currentRoute().Name; got != tt.want {
				t.Errorf("Navigate(%q) route = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRootUI_LogoutReturnsToLogin(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	services := newTestServices(t)
	if err := services.Session.SignIn(model.Session{UserID: "u1"}); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	ui := NewRootUI(window, app, services)

	ui.onLogout()

	if got := ui.currentRoute().Name; got != screens.RouteAuth {
		t.Errorf("route after logout = %q, want %q", got, screens.RouteAuth)
	}
	if !services.Session.Session().IsZero() {
		t.Error("session should be cleared after logout")
	}
}
