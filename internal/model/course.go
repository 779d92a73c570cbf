package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Session holds the logged-in user. It is the only client-owned entity that
// outlives a screen.
type Session struct {
	UserID string `json:"user_id"`
}

// IsZero reports whether the session carries no user
func (s Session) IsZero() bool {
	return strings.TrimSpace(s.UserID) == ""
}

// DashboardPath returns the route of the user's course dashboard
func (s Session) DashboardPath() string {
	return "/dashboard/" + s.UserID
}

// User is the profile shown in the screen header greeting
type User struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// DisplayName returns "First Last", the first name alone, or the email
func (u User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full != "" {
		return full
	}
	return u.Email
}

// Course is one entry of the user's dashboard
type Course struct {
	CourseID      int    `json:"course_id"`
	Name          string `json:"course_name"`
	ContentLength int    `json:"content_len"`
}

// Key returns a stable identifier for list rendering, even for courses
// the backend returned without an id
func (c Course) Key(position int) string {
	if c.CourseID != 0 {
		return strconv.Itoa(c.CourseID)
	}
	return fmt.Sprintf("%s-%d", c.Name, position)
}

// NewCourse is the input of the create-course form
type NewCourse struct {
	UserID  string
	Name    string
	Content string
}

// SignupForm is the input of the account creation form
type SignupForm struct {
	FirstName       string `json:"user_firstname"`
	LastName        string `json:"user_lastname"`
	Email           string `json:"user_email"`
	University      string `json:"user_university"`
	CurrentSemester string `json:"user_currentsem"`
	Password        string `json:"user_password"`
	ConfirmPassword string `json:"-"`
}

// Credentials is the input of the login form
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
