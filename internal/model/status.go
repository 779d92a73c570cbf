package model

// FetchStatus represents the lifecycle of one fetched resource
type FetchStatus string

const (
	// FetchStatusIdle means no key is attached and nothing was requested
	FetchStatusIdle FetchStatus = "idle"

	// FetchStatusLoading means a request for the current key is outstanding
	FetchStatusLoading FetchStatus = "loading"

	// FetchStatusLoaded means the latest request completed successfully
	FetchStatusLoaded FetchStatus = "loaded"

	// FetchStatusError means the latest request failed
	FetchStatusError FetchStatus = "error"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsBusy returns true while a request is outstanding
func (fs FetchStatus) IsBusy() bool {
	return fs == FetchStatusLoading
}

// IsSettled returns true if the last request finished (loaded or error)
func (fs FetchStatus) IsSettled() bool {
	return fs == FetchStatusLoaded || fs == FetchStatusError
}

// QuizPhase represents the quiz-taking flow of the contents screen
type QuizPhase string

const (
	QuizPhaseNone       QuizPhase = "no_quiz"
	QuizPhaseGenerating QuizPhase = "generating"
	QuizPhaseReady      QuizPhase = "ready"
	QuizPhaseSubmitting QuizPhase = "submitting"
	QuizPhaseSubmitted  QuizPhase = "submitted"
)

// String returns the string representation of QuizPhase
func (qp QuizPhase) String() string {
	return string(qp)
}

// IsBusy returns true while the phase waits on the network
func (qp QuizPhase) IsBusy() bool {
	return qp == QuizPhaseGenerating || qp == QuizPhaseSubmitting
}

// AcceptsAnswers returns true if picking an option is allowed
func (qp QuizPhase) AcceptsAnswers() bool {
	return qp == QuizPhaseReady
}
