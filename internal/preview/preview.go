// Package preview reads dataset images from disk and scales them to the display
// width, keeping the aspect ratio.
package preview

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// DefaultWidth is the width images are scaled to for display
const DefaultWidth = 1500

// ErrMissingFile is returned when the selected image is not on disk
var ErrMissingFile = errors.New("image file not found")

// ScaledSize returns the size of a w x h image scaled to width target, with
// height = round(target * h / w).
func ScaledSize(w, h, target int) (int, int, error) {
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid image size %dx%d", w, h)
	}
	if target <= 0 {
		return 0, 0, fmt.Errorf("invalid target width %d", target)
	}
	height := int(math.Round(float64(target) * float64(h) / float64(w)))
	if height < 1 {
		height = 1
	}
	return target, height, nil
}

// Scale resizes img to width, preserving the aspect ratio
func Scale(img image.Image, width int) (image.Image, error) {
	bounds := img.Bounds()
	w, h, err := ScaledSize(bounds.Dx(), bounds.Dy(), width)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}

// Load decodes the image at path and scales it to width
func Load(path string, width int) (image.Image, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return Scale(img, width)
}

// ReadBytes returns the raw content of the image at path
func ReadBytes(path string) ([]byte, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func checkExists(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMissingFile, path)
	}
	return nil
}
