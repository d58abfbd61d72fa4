package model

import "errors"

var (
	// ErrIndexOutOfRange is returned when a class position is outside the class list.
	ErrIndexOutOfRange = errors.New("class index out of range")

	// ErrDuplicateClass is returned when adding a class name that already exists.
	ErrDuplicateClass = errors.New("class already exists")

	// ErrEmptyClassName is returned when adding a blank class name.
	ErrEmptyClassName = errors.New("class name is empty")

	// ErrUnknownClass is returned when a class name is not in the document.
	ErrUnknownClass = errors.New("unknown class")

	// ErrUnknownImage is returned when an image path has no label entry.
	ErrUnknownImage = errors.New("unknown image")
)
