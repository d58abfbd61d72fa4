package ui

// Package ui contains the Fyne-based desktop user interface for the labeler.
// It renders the session's current image and class checkboxes, forwards button
// clicks and key presses to the session, and shows errors without ending the
// session. All UI strings are localized via Localization.
