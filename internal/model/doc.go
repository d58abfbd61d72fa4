package model

// Package model defines the label document shared by the store, the session and
// the UI: the ordered class list, per-image boolean label vectors and the error
// values returned when the document is mutated incorrectly.
