// Package classify defines the capability the labeler calls for automatic
// classification. No model ships with the application; a Classifier is plugged
// in by whoever embeds the session.
package classify

import (
	"context"
	"errors"
)

// ErrNoClassifier is returned when auto classification is requested but no
// Classifier is configured
var ErrNoClassifier = errors.New("no classifier configured")

// Classifier predicts labels for one image. The result is keyed by class name;
// names outside classes are ignored by the caller and missing names are left
// unchanged.
type Classifier interface {
	Classify(ctx context.Context, image []byte, classes []string) (map[string]bool, error)
}

// Func adapts a plain function to the Classifier interface
type Func func(ctx context.Context, image []byte, classes []string) (map[string]bool, error)

// Classify calls f
func (f Func) Classify(ctx context.Context, image []byte, classes []string) (map[string]bool, error) {
	return f(ctx, image, classes)
}
