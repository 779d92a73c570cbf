// Package screens holds the state and actions of every StudyBuddy screen.
//
// Each screen owns its fetch resources and local form state behind a mutex.
// Actions validate local input, issue at most one backend call (plus the
// refetch that follows a generate), update state and invoke the update
// callback so a renderer can redraw. Actions block; renderers run them on
// goroutines.
package screens
