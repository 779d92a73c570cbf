package model

import "testing"

func TestFetchStatus_IsBusy(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusIdle, false},
		{FetchStatusLoading, true},
		{FetchStatusLoaded, false},
		{FetchStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsBusy()
		if result != test.expected {
			t.Errorf("FetchStatus(%s).IsBusy() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFetchStatus_IsSettled(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusIdle, false},
		{FetchStatusLoading, false},
		{FetchStatusLoaded, true},
		{FetchStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsSettled()
		if result != test.expected {
			t.Errorf("FetchStatus(%s).IsSettled() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestQuizPhase_Predicates(t *testing.T) {
	tests := []struct {
		phase          QuizPhase
		busy           bool
		acceptsAnswers bool
	}{
		{QuizPhaseNone, false, false},
		{QuizPhaseGenerating, true, false},
		{QuizPhaseReady, false, true},
		{QuizPhaseSubmitting, true, false},
		{QuizPhaseSubmitted, false, false},
	}

	for _, test := range tests {
		if got := test.phase.IsBusy(); got != test.busy {
			t.Errorf("QuizPhase(%s).IsBusy() = %v, expected %v", test.phase, got, test.busy)
		}
		if got := test.phase.AcceptsAnswers(); got != test.acceptsAnswers {
			t.Errorf("QuizPhase(%s).AcceptsAnswers() = %v, expected %v", test.phase, got, test.acceptsAnswers)
		}
	}
}

func TestFetchStatus_String(t *testing.T) {
	status := FetchStatusLoaded
	expected := "loaded"
	result := status.String()

	if result != expected {
		t.Errorf("FetchStatus.String() = %s, expected %s", result, expected)
	}
}
