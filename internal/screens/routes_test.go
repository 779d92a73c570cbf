package screens

import "testing"

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    Route
		wantErr bool
	}{
		{"auth", AuthPath(), Route{Name: RouteAuth}, false},
		{"dashboard", DashboardPath("42"), Route{Name: RouteDashboard, UserID: "42"}, false},
		{"contents", ContentsPath(7, "42"), Route{Name: RouteContents, UserID: "42", CourseID: 7}, false},
		{"chat", ChatPath(), Route{Name: RouteChat}, false},
		{"community", CommunityPath(7, "42"), Route{Name: RouteCommunity, UserID: "42", CourseID: 7}, false},
		{"non numeric course", "/contentspage/abc/42", Route{}, true},
		{"unknown", "/settings", Route{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoute(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRoute(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRoute(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}
