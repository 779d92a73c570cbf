// Package api talks to the StudyBuddy HTTP backend.
//
// Every response goes through the normalizer in normalize.go, which absorbs the
// backend's envelope variance (bare values, values wrapped in "data", and "data"
// carrying JSON text) and turns anything unreadable into an empty default plus
// ErrMalformed. Transport and status failures are reported with ErrTransport and
// *StatusError, and the backend's {"status":"FAIL"} envelope with *FailError.
package api
