package model

import (
	"fmt"
	"strings"
)

// LabelDocument is the on-disk label file: an ordered class list and, for every
// image path relative to the dataset root, one boolean per class. Vectors may be
// shorter than Classes; missing trailing entries are false.
type LabelDocument struct {
	Classes []string          `json:"classes"`
	Labels  map[string][]bool `json:"labels"`
}

// ClassState is the checked state of one class for one image.
type ClassState struct {
	Name    string
	Checked bool
}

// NewLabelDocument returns an empty document
func NewLabelDocument() *LabelDocument {
	return &LabelDocument{
		Classes: []string{},
		Labels:  make(map[string][]bool),
	}
}

// Normalize replaces nil collections with empty ones and truncates label vectors
// longer than the class list. It returns the paths whose vectors were truncated.
func (d *LabelDocument) Normalize() []string {
	if d.Classes == nil {
		d.Classes = []string{}
	}
	if d.Labels == nil {
		d.Labels = make(map[string][]bool)
	}

	var truncated []string
	for path, values := range d.Labels {
		if values == nil {
			d.Labels[path] = []bool{}
			continue
		}
		if len(values) > len(d.Classes) {
			d.Labels[path] = values[:len(d.Classes)]
			truncated = append(truncated, path)
		}
	}
	return truncated
}

// ClassIndex returns the position of name in the class list, or -1
func (d *LabelDocument) ClassIndex(name string) int {
	for i, class := range d.Classes {
		if class == name {
			return i
		}
	}
	return -1
}

// AddClass appends a class. The name is trimmed; blank and duplicate names are
// rejected. Existing label vectors are not extended.
func (d *LabelDocument) AddClass(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyClassName
	}
	if d.ClassIndex(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateClass, name)
	}
	d.Classes = append(d.Classes, name)
	return nil
}

// HasImage reports whether path has a label entry
func (d *LabelDocument) HasImage(path string) bool {
	_, ok := d.Labels[path]
	return ok
}

// EnsureImage creates an empty label vector for path if it has none.
// It returns true when an entry was created.
func (d *LabelDocument) EnsureImage(path string) bool {
	if d.Labels == nil {
		d.Labels = make(map[string][]bool)
	}
	if _, ok := d.Labels[path]; ok {
		return false
	}
	d.Labels[path] = []bool{}
	return true
}

// Label returns a copy of the label vector stored for path
func (d *LabelDocument) Label(path string) ([]bool, bool) {
	values, ok := d.Labels[path]
	if !ok {
		return nil, false
	}
	out := make([]bool, len(values))
	copy(out, values)
	return out, true
}

// SetLabel replaces the label vector for path
func (d *LabelDocument) SetLabel(path string, values []bool) error {
	if len(values) > len(d.Classes) {
		return fmt.Errorf("%w: %d values for %d classes", ErrIndexOutOfRange, len(values), len(d.Classes))
	}
	if d.Labels == nil {
		d.Labels = make(map[string][]bool)
	}
	stored := make([]bool, len(values))
	copy(stored, values)
	d.Labels[path] = stored
	return nil
}

// Value returns the label of class index for path, false when the vector is
// shorter than the class list.
func (d *LabelDocument) Value(path string, index int) (bool, error) {
	if index < 0 || index >= len(d.Classes) {
		return false, fmt.Errorf("%w: %d (classes: %d)", ErrIndexOutOfRange, index, len(d.Classes))
	}
	values, ok := d.Labels[path]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownImage, path)
	}
	if index >= len(values) {
		return false, nil
	}
	return values[index], nil
}

// SetValue sets one class position for path. The vector is padded with false up
// to the class count so every other position keeps its value.
func (d *LabelDocument) SetValue(path string, index int, value bool) error {
	if index < 0 || index >= len(d.Classes) {
		return fmt.Errorf("%w: %d (classes: %d)", ErrIndexOutOfRange, index, len(d.Classes))
	}
	values, ok := d.Labels[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownImage, path)
	}
	if len(values) < len(d.Classes) {
		padded := make([]bool, len(d.Classes))
		copy(padded, values)
		values = padded
	}
	values[index] = value
	d.Labels[path] = values
	return nil
}

// SetClass sets the label of the named class for path
func (d *LabelDocument) SetClass(path, name string, value bool) error {
	index := d.ClassIndex(name)
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return d.SetValue(path, index, value)
}

// LabelMap returns the labels of path keyed by class name
func (d *LabelDocument) LabelMap(path string) map[string]bool {
	values := d.Labels[path]
	out := make(map[string]bool, len(d.Classes))
	for i, class := range d.Classes {
		out[class] = i < len(values) && values[i]
	}
	return out
}

// ClassStates returns one entry per class, in class order, for path
func (d *LabelDocument) ClassStates(path string) []ClassState {
	values := d.Labels[path]
	states := make([]ClassState, len(d.Classes))
	for i, class := range d.Classes {
		states[i] = ClassState{
			Name:    class,
			Checked: i < len(values) && values[i],
		}
	}
	return states
}

// Clone returns a deep copy of the document
func (d *LabelDocument) Clone() *LabelDocument {
	out := &LabelDocument{
		Classes: make([]string, len(d.Classes)),
		Labels:  make(map[string][]bool, len(d.Labels)),
	}
	copy(out.Classes, d.Classes)
	for path, values := range d.Labels {
		stored := make([]bool, len(values))
		copy(stored, values)
		out.Labels[path] = stored
	}
	return out
}
