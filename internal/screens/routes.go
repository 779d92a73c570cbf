package screens

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Route names
const (
	RouteAuth      = "auth"
	RouteDashboard = "dashboard"
	RouteContents  = "contents"
	RouteChat      = "chat"
	RouteCommunity = "community"
)

// Route is a parsed navigation path
type Route struct {
	Name     string
	UserID   string
	CourseID int
}

var routes = newRouteTable()

func newRouteTable() *mux.Router {
	r := mux.NewRouter()
	r.Path("/").Name(RouteAuth)
	r.Path("/chatbot").Name(RouteChat)
	r.Path("/dashboard/{user_id}").Name(RouteDashboard)
	r.Path("/contentspage/{course_id:[0-9]+}/{user_id}").Name(RouteContents)
	r.Path("/community/{course_id:[0-9]+}/{user_id}").Name(RouteCommunity)
	return r
}

// AuthPath is where logout leads
func AuthPath() string {
	return "/"
}

// DashboardPath returns the course list of a user
func DashboardPath(userID string) string {
	return "/dashboard/" + userID
}

// ContentsPath returns the contents screen of a course
func ContentsPath(courseID int, userID string) string {
	return fmt.Sprintf("/contentspage/%d/%s", courseID, userID)
}

// ChatPath returns the chatbot screen
func ChatPath() string {
	return "/chatbot"
}

// CommunityPath returns the community screen reached from a course
func CommunityPath(courseID int, userID string) string {
	return fmt.Sprintf("/community/%d/%s", courseID, userID)
}

// ParseRoute resolves a navigation path
func ParseRoute(path string) (Route, error) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return Route{}, fmt.Errorf("invalid path %q: %w", path, err)
	}

	var match mux.RouteMatch
	if !routes.Match(req, &match) || match.Route == nil {
		return Route{}, fmt.Errorf("unknown path %q", path)
	}

	route := Route{Name: match.Route.GetName(), UserID: match.Vars["user_id"]}
	if v, ok := match.Vars["course_id"]; ok {
		route.CourseID, _ = strconv.Atoi(v)
	}
	return route, nil
}
