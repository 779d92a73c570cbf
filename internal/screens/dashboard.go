package screens

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/fetch"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/platform"
	"github.com/studybuddy/studybuddy/internal/session"
)

// LectureImporter turns a playlist link into course text
type LectureImporter interface {
	Import(ctx context.Context, url string) (*platform.LecturePlaylist, error)
}

// Dashboard is the course list of the signed-in user
type Dashboard struct {
	client   api.Client
	session  *session.Context
	importer LectureImporter
	courses  *fetch.Resource[string, []model.Course]

	mutex     sync.RWMutex
	creating  bool
	createErr string
	query     string
	onUpdate  func()
}

// NewDashboard creates the dashboard. importer may be nil, which disables
// lecture import.
func NewDashboard(client api.Client, sess *session.Context, importer LectureImporter) *Dashboard {
	d := &Dashboard{
		client:   client,
		session:  sess,
		importer: importer,
		courses: fetch.New("courses", func(ctx context.Context, userID string) ([]model.Course, error) {
			return client.ListCourses(ctx, userID)
		}),
	}
	d.courses.SetUpdateCallback(func(fetch.State[string, []model.Course]) { d.notify() })
	return d
}

// SetUpdateCallback sets the callback invoked after every state change
func (d *Dashboard) SetUpdateCallback(callback func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.onUpdate = callback
}

// Load fetches the course list of the signed-in user
func (d *Dashboard) Load(ctx context.Context) error {
	userID, err := d.session.UserID()
	if err != nil {
		return err
	}
	st := d.courses.Attach(ctx, userID)
	if st.Err != nil {
		return failed(MsgCoursesFailed, st.Err)
	}
	return nil
}

// Status returns the fetch status of the course list
func (d *Dashboard) Status() model.FetchStatus {
	return d.courses.State().Status
}

// Error returns the list error message, if the last fetch failed
func (d *Dashboard) Error() string {
	if d.courses.State().Status == model.FetchStatusError {
		return MsgCoursesFailed
	}
	return ""
}

// Courses returns the loaded courses
func (d *Dashboard) Courses() []model.Course {
	return d.courses.State().Value
}

// Headline returns "No courses yet", "1 course" or "N courses"
func (d *Dashboard) Headline() string {
	return Headline(len(d.Courses()))
}

// Headline formats a course count
func Headline(n int) string {
	switch n {
	case 0:
		return "No courses yet"
	case 1:
		return "1 course"
	}
	return fmt.Sprintf("%d courses", n)
}

// SetQuery filters the visible courses
func (d *Dashboard) SetQuery(query string) {
	d.mutex.Lock()
	d.query = strings.TrimSpace(query)
	d.mutex.Unlock()
	d.notify()
}

// Visible returns the courses matching the search query
func (d *Dashboard) Visible() []model.Course {
	d.mutex.RLock()
	query := d.query
	d.mutex.RUnlock()

	courses := d.Courses()
	if query == "" {
		return courses
	}
	return lo.Filter(courses, func(c model.Course, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, c.Name)
	})
}

// Creating reports whether a create, upload or import is in flight
func (d *Dashboard) Creating() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.creating
}

// CreateError returns the message of the last failed create
func (d *Dashboard) CreateError() string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.createErr
}

// ResetCreate clears the create form error, as when the form is reopened
func (d *Dashboard) ResetCreate() {
	d.mutex.Lock()
	d.createErr = ""
	d.mutex.Unlock()
	d.notify()
}

// CreateCourse creates a course from a name and optional text
func (d *Dashboard) CreateCourse(ctx context.Context, name, content string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return d.reject(invalid(MsgCourseNameNeeded))
	}
	return d.create(ctx, MsgCreateFailed, func(userID string) error {
		return d.client.CreateCourse(ctx, model.NewCourse{UserID: userID, Name: name, Content: content})
	})
}

// UploadCourse creates a course from a document
func (d *Dashboard) UploadCourse(ctx context.Context, name, filename string, r io.Reader) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return d.reject(invalid(MsgCourseNameNeeded))
	}
	if r == nil || strings.TrimSpace(filename) == "" {
		return d.reject(invalid(MsgFileNeeded))
	}
	return d.create(ctx, MsgUploadFailed, func(userID string) error {
		return d.client.UploadCourse(ctx, userID, name, filename, r)
	})
}

// ImportLectures creates a course from a YouTube lecture playlist. The
// course is named after the playlist unless name is given.
func (d *Dashboard) ImportLectures(ctx context.Context, name, url string) error {
	url = strings.TrimSpace(url)
	if d.importer == nil || !platform.IsPlaylistURL(url) {
		return d.reject(invalid(MsgPlaylistURLNeeded))
	}
	return d.create(ctx, MsgImportFailed, func(userID string) error {
		playlist, err := d.importer.Import(ctx, url)
		if err != nil {
			return err
		}
		courseName := strings.TrimSpace(name)
		if courseName == "" {
			courseName = playlist.Title
		}
		log.Printf("Importing %d lectures as course %q", len(playlist.Lectures), courseName)
		return d.client.CreateCourse(ctx, model.NewCourse{
			UserID:  userID,
			Name:    courseName,
			Content: playlist.CourseContent(),
		})
	})
}

func (d *Dashboard) create(ctx context.Context, failMsg string, call func(userID string) error) error {
	userID, err := d.session.UserID()
	if err != nil {
		return d.reject(failed(failMsg, err))
	}

	d.mutex.Lock()
	if d.creating {
		d.mutex.Unlock()
		return ErrBusy
	}
	d.creating = true
	d.createErr = ""
	d.mutex.Unlock()
	d.notify()

	err = call(userID)

	d.mutex.Lock()
	d.creating = false
	if err != nil {
		d.createErr = failMsg
	}
	d.mutex.Unlock()

	if err != nil {
		log.Printf("Course creation failed: %v", err)
		d.notify()
		return failed(failMsg, err)
	}

	d.courses.Attach(ctx, userID)
	return nil
}

func (d *Dashboard) reject(err error) error {
	d.mutex.Lock()
	d.createErr = Message(err)
	d.mutex.Unlock()
	d.notify()
	return err
}

func (d *Dashboard) notify() {
	d.mutex.RLock()
	callback := d.onUpdate
	d.mutex.RUnlock()
	if callback != nil {
		callback()
	}
}
