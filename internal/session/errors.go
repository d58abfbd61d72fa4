package session

import "errors"

var (
	// ErrEmptyDataset is returned by navigation and labeling calls when there is
	// no current image. State is left untouched.
	ErrEmptyDataset = errors.New("dataset contains no images")

	// ErrNoDataset is returned when an operation needs an open dataset folder
	ErrNoDataset = errors.New("no dataset folder open")
)
