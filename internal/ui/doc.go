package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// RootUI routes navigation paths to pages; each page renders one screen from
// the screens package and re-renders on its update callback. All chrome
// strings are localized via Localization.
