package model

// Package model defines the client-side view models of the study assistant:
// sessions, courses, summaries, flashcards, quizzes and chat transcripts, plus
// the status enums that drive screen state. Every entity other than Session and
// the per-card flipped flag is a transient copy of server state.
