package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/studybuddy/studybuddy/internal/model"
)

// flakyClient fails ListCourses a fixed number of times
type flakyClient struct {
	Client
	failures int
	err      error
	calls    int
}

func (f *flakyClient) ListCourses(ctx context.Context, userID string) ([]model.Course, error) {
	f.calls++
	if f.calls <= f.failures {
		return []model.Course{}, f.err
	}
	return []model.Course{{CourseID: 1, Name: "Networks"}}, nil
}

func (f *flakyClient) CreateCourse(ctx context.Context, course model.NewCourse) error {
	f.calls++
	return f.err
}

func TestWithRetry(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond}

	tests := []struct {
		name          string
		failures      int
		err           error
		expectedCalls int
		expectErr     bool
	}{
		{"succeeds first time", 0, nil, 1, false},
		{"recovers from transport error", 2, ErrTransport, 3, false},
		{"gives up after max attempts", 5, ErrTransport, 3, true},
		{"does not retry client errors", 5, &StatusError{StatusCode: http.StatusNotFound}, 1, true},
		{"retries server errors", 1, &StatusError{StatusCode: http.StatusServiceUnavailable}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &flakyClient{failures: tt.failures, err: tt.err}
			client := WithRetry(inner, policy)

			courses, err := client.ListCourses(context.Background(), "1")
			if (err != nil) != tt.expectErr {
				t.Fatalf("ListCourses() error = %v, expectErr %v", err, tt.expectErr)
			}
			if inner.calls != tt.expectedCalls {
				t.Errorf("calls = %d, expected %d", inner.calls, tt.expectedCalls)
			}
			if !tt.expectErr && len(courses) != 1 {
				t.Errorf("courses = %+v", courses)
			}
		})
	}
}

func TestWithRetry_WritesAreNotRepeated(t *testing.T) {
	inner := &flakyClient{err: ErrTransport}
	client := WithRetry(inner, RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond})

	if err := client.CreateCourse(context.Background(), model.NewCourse{}); !errors.Is(err, ErrTransport) {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("CreateCourse called %d times, expected 1", inner.calls)
	}
}

func TestWithRetry_SingleAttemptReturnsClient(t *testing.T) {
	inner := &flakyClient{}
	if got := WithRetry(inner, NoRetry); got != Client(inner) {
		t.Error("WithRetry with one attempt should return the client unchanged")
	}
}

func TestWithRetry_StopsOnCancel(t *testing.T) {
	inner := &flakyClient{failures: 10, err: ErrTransport}
	client := WithRetry(inner, RetryPolicy{MaxAttempts: 5, Backoff: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := client.ListCourses(ctx, "1")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ListCourses() error = %v, expected context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, expected 1", inner.calls)
	}
}
