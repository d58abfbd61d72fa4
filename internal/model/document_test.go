package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestLabelDocument_AddClass(t *testing.T) {
	doc := NewLabelDocument()

	tests := []struct {
		name     string
		expected error
	}{
		{"cat", nil},
		{"dog", nil},
		{"  bird  ", nil},
		{"cat", ErrDuplicateClass},
		{" dog", ErrDuplicateClass},
		{"", ErrEmptyClassName},
		{"   ", ErrEmptyClassName},
	}

	for _, test := range tests {
		err := doc.AddClass(test.name)
		if !errors.Is(err, test.expected) {
			t.Errorf("AddClass(%q) = %v, expected %v", test.name, err, test.expected)
		}
	}

	expected := []string{"cat", "dog", "bird"}
	if !reflect.DeepEqual(doc.Classes, expected) {
		t.Errorf("Classes = %v, expected %v", doc.Classes, expected)
	}
}

func TestLabelDocument_AddClassDoesNotExtendLabels(t *testing.T) {
	doc := NewLabelDocument()
	doc.EnsureImage("a.png")

	if err := doc.AddClass("cat"); err != nil {
		t.Fatalf("AddClass failed: %v", err)
	}

	if got := doc.Labels["a.png"]; len(got) != 0 {
		t.Errorf("Expected label vector to stay empty, got %v", got)
	}
}

func TestLabelDocument_EnsureImage(t *testing.T) {
	doc := &LabelDocument{}

	if !doc.EnsureImage("a.png") {
		t.Error("Expected first EnsureImage to create an entry")
	}
	if doc.EnsureImage("a.png") {
		t.Error("Expected second EnsureImage to keep the existing entry")
	}

	values, ok := doc.Label("a.png")
	if !ok || len(values) != 0 {
		t.Errorf("Expected empty label vector, got %v (ok=%v)", values, ok)
	}
}

func TestLabelDocument_SetValue(t *testing.T) {
	doc := NewLabelDocument()
	doc.Classes = []string{"cat", "dog", "bird"}
	doc.Labels["a.png"] = []bool{false, true}

	if err := doc.SetValue("a.png", 2, true); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	expected := []bool{false, true, true}
	if !reflect.DeepEqual(doc.Labels["a.png"], expected) {
		t.Errorf("Labels = %v, expected %v", doc.Labels["a.png"], expected)
	}

	if err := doc.SetValue("a.png", 0, true); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	expected = []bool{true, true, true}
	if !reflect.DeepEqual(doc.Labels["a.png"], expected) {
		t.Errorf("Labels = %v, expected %v", doc.Labels["a.png"], expected)
	}
}

func TestLabelDocument_SetValueErrors(t *testing.T) {
	doc := NewLabelDocument()
	doc.Classes = []string{"cat"}
	doc.EnsureImage("a.png")

	tests := []struct {
		path     string
		index    int
		expected error
	}{
		{"a.png", -1, ErrIndexOutOfRange},
		{"a.png", 1, ErrIndexOutOfRange},
		{"missing.png", 0, ErrUnknownImage},
	}

	for _, test := range tests {
		err := doc.SetValue(test.path, test.index, true)
		if !errors.Is(err, test.expected) {
			t.Errorf("SetValue(%q, %d) = %v, expected %v", test.path, test.index, err, test.expected)
		}
	}

	if len(doc.Labels["a.png"]) != 0 {
		t.Errorf("Failed writes must not extend the vector, got %v", doc.Labels["a.png"])
	}
}

func TestLabelDocument_Value(t *testing.T) {
	doc := NewLabelDocument()
	doc.Classes = []string{"cat", "dog"}
	doc.Labels["a.png"] = []bool{true}

	if v, err := doc.Value("a.png", 0); err != nil || !v {
		t.Errorf("Value(a.png, 0) = %v, %v, expected true", v, err)
	}
	if v, err := doc.Value("a.png", 1); err != nil || v {
		t.Errorf("Value(a.png, 1) = %v, %v, expected false by default", v, err)
	}
	if _, err := doc.Value("a.png", 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestLabelDocument_SetLabel(t *testing.T) {
	doc := NewLabelDocument()
	doc.Classes = []string{"cat", "dog"}

	values := []bool{true, false}
	if err := doc.SetLabel("a.png", values); err != nil {
		t.Fatalf("SetLabel failed: %v", err)
	}
	values[0] = false
	if !doc.Labels["a.png"][0] {
		t.Error("SetLabel must store a copy of the values")
	}

	if err := doc.SetLabel("a.png", []bool{true, true, true}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for oversized vector, got %v", err)
	}
}

func TestLabelDocument_SetClassAndLabelMap(t *testing.T) {
	doc := NewLabelDocument()
	doc.Classes = []string{"cat", "dog"}
	doc.EnsureImage("a.png")

	if err := doc.SetClass("a.png", "dog", true); err != nil {
		t.Fatalf("SetClass failed: %v", err)
	}
	if err := doc.SetClass("a.png", "fish", true); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("Expected ErrUnknownClass, got %v", err)
	}

	expected := map[string]bool{"cat": false, "dog": true}
	if got := doc.LabelMap("a.png"); !reflect.DeepEqual(got, expected) {
		t.Errorf("LabelMap = %v, expected %v", got, expected)
	}
}

func TestLabelDocument_ClassStates(t *testing.T) {
	doc := NewLabelDocument()
	doc.Classes = []string{"cat", "dog", "bird"}
	doc.Labels["a.png"] = []bool{true}

	expected := []ClassState{
		{Name: "cat", Checked: true},
		{Name: "dog", Checked: false},
		{Name: "bird", Checked: false},
	}
	if got := doc.ClassStates("a.png"); !reflect.DeepEqual(got, expected) {
		t.Errorf("ClassStates = %v, expected %v", got, expected)
	}
}

func TestLabelDocument_Normalize(t *testing.T) {
	doc := &LabelDocument{
		Classes: []string{"cat"},
		Labels: map[string][]bool{
			"a.png": {true, false, true},
			"b.png": nil,
			"c.png": {false},
		},
	}

	truncated := doc.Normalize()
	if !reflect.DeepEqual(truncated, []string{"a.png"}) {
		t.Errorf("Truncated = %v, expected [a.png]", truncated)
	}
	if !reflect.DeepEqual(doc.Labels["a.png"], []bool{true}) {
		t.Errorf("Expected a.png truncated to [true], got %v", doc.Labels["a.png"])
	}
	if doc.Labels["b.png"] == nil {
		t.Error("Expected nil vector replaced by an empty one")
	}

	empty := &LabelDocument{}
	empty.Normalize()
	if empty.Classes == nil || empty.Labels == nil {
		t.Error("Normalize should allocate empty collections")
	}
}

func TestLabelDocument_Clone(t *testing.T) {
	doc := NewLabelDocument()
	doc.Classes = []string{"cat"}
	doc.Labels["a.png"] = []bool{true}

	clone := doc.Clone()
	clone.Labels["a.png"][0] = false
	clone.Classes[0] = "dog"

	if !doc.Labels["a.png"][0] || doc.Classes[0] != "cat" {
		t.Error("Clone must not share storage with the original")
	}
}
