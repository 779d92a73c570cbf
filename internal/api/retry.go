package api

import (
	"context"
	"log"
	"time"

	"github.com/studybuddy/studybuddy/internal/model"
)

// RetryPolicy controls how often an idempotent call is attempted
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// NoRetry performs exactly one attempt
var NoRetry = RetryPolicy{MaxAttempts: 1}

// DefaultRetryPolicy allows one retry after two seconds
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 2, Backoff: 2 * time.Second}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// withRetry runs call until it succeeds, fails with a non-retryable error,
// runs out of attempts or ctx is done
func withRetry[T any](ctx context.Context, p RetryPolicy, op string, call func(context.Context) (T, error)) (T, error) {
	var lastErr error
	var result T

	for attempt := 0; attempt < p.attempts(); attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(p.Backoff):
			case <-ctx.Done():
				return result, ctx.Err()
			}

			log.Printf("[INFO] Retrying %s, attempt %d", op, attempt+1)
		}

		res, err := call(ctx)
		if err == nil {
			return res, nil
		}

		lastErr = err
		result = res
		log.Printf("[WARN] %s attempt %d failed: %v", op, attempt+1, err)

		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if !IsRetryable(err) {
			break
		}
	}

	return result, lastErr
}

// retryingClient repeats the read-only calls of an underlying Client.
// Calls that create or change server state pass straight through.
type retryingClient struct {
	Client
	policy RetryPolicy
}

// WithRetry decorates c so that its idempotent GET operations follow policy
func WithRetry(c Client, policy RetryPolicy) Client {
	if policy.attempts() == 1 {
		return c
	}
	return &retryingClient{Client: c, policy: policy}
}

func (r *retryingClient) GetUser(ctx context.Context, userID string) (model.User, error) {
	return withRetry(ctx, r.policy, "GetUser", func(ctx context.Context) (model.User, error) {
		return r.Client.GetUser(ctx, userID)
	})
}

func (r *retryingClient) ListCourses(ctx context.Context, userID string) ([]model.Course, error) {
	return withRetry(ctx, r.policy, "ListCourses", func(ctx context.Context) ([]model.Course, error) {
		return r.Client.ListCourses(ctx, userID)
	})
}

func (r *retryingClient) GetCourse(ctx context.Context, courseID int) (model.Course, error) {
	return withRetry(ctx, r.policy, "GetCourse", func(ctx context.Context) (model.Course, error) {
		return r.Client.GetCourse(ctx, courseID)
	})
}

func (r *retryingClient) GetSummary(ctx context.Context, courseID int, length model.SummaryLength) (model.Summary, error) {
	return withRetry(ctx, r.policy, "GetSummary", func(ctx context.Context) (model.Summary, error) {
		return r.Client.GetSummary(ctx, courseID, length)
	})
}

func (r *retryingClient) GetFlashcards(ctx context.Context, courseID int) ([]model.Flashcard, error) {
	return withRetry(ctx, r.policy, "GetFlashcards", func(ctx context.Context) ([]model.Flashcard, error) {
		return r.Client.GetFlashcards(ctx, courseID)
	})
}

func (r *retryingClient) GetQuiz(ctx context.Context, quizID int) (model.QuizDetail, error) {
	return withRetry(ctx, r.policy, "GetQuiz", func(ctx context.Context) (model.QuizDetail, error) {
		return r.Client.GetQuiz(ctx, quizID)
	})
}

func (r *retryingClient) ListQuizzes(ctx context.Context, courseID int) ([]model.PastQuiz, error) {
	return withRetry(ctx, r.policy, "ListQuizzes", func(ctx context.Context) ([]model.PastQuiz, error) {
		return r.Client.ListQuizzes(ctx, courseID)
	})
}
