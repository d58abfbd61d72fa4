package classify

import (
	"context"
	"testing"
)

func TestFunc_Classify(t *testing.T) {
	var gotClasses []string
	var gotImage []byte
	c := Func(func(ctx context.Context, image []byte, classes []string) (map[string]bool, error) {
		gotImage = image
		gotClasses = classes
		return map[string]bool{"cat": true}, nil
	})

	var _ Classifier = c

	result, err := c.Classify(context.Background(), []byte("png"), []string{"cat", "dog"})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if !result["cat"] || result["dog"] {
		t.Errorf("Classify() = %v, want cat only", result)
	}
	if string(gotImage) != "png" {
		t.Errorf("image = %q, want %q", gotImage, "png")
	}
	if len(gotClasses) != 2 {
		t.Errorf("classes = %v, want 2 entries", gotClasses)
	}
}
