package platform

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{nil, []string{".png"}},
		{[]string{"", " "}, []string{".png"}},
		{[]string{"png"}, []string{".png"}},
		{[]string{".PNG", "jpg", ".jpg", " .jpeg "}, []string{".png", ".jpg", ".jpeg"}},
	}

	for _, test := range tests {
		result := NormalizeExtensions(test.input)
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("NormalizeExtensions(%v) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestHasImageExtension(t *testing.T) {
	exts := []string{".png", ".jpg"}

	tests := []struct {
		name     string
		expected bool
	}{
		{"a.png", true},
		{"a.PNG", true},
		{"dir/b.jpg", true},
		{"a.gif", false},
		{"png", false},
		{"image_labels.json", false},
	}

	for _, test := range tests {
		if result := HasImageExtension(test.name, exts); result != test.expected {
			t.Errorf("HasImageExtension(%q) = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestScanImages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.png")
	writeFile(t, root, "sub/b.png")
	writeFile(t, root, "sub/deeper/c.PNG")
	writeFile(t, root, "notes.txt")
	writeFile(t, root, "sub/d.jpg")
	writeFile(t, root, "image_labels.json")

	images, err := ScanImages(root, []string{".png"})
	if err != nil {
		t.Fatalf("ScanImages failed: %v", err)
	}

	expected := []string{"a.png", "sub/b.png", "sub/deeper/c.PNG"}
	if !reflect.DeepEqual(images, expected) {
		t.Errorf("ScanImages = %v, expected %v", images, expected)
	}

	images, err = ScanImages(root, []string{"png", "jpg"})
	if err != nil {
		t.Fatalf("ScanImages failed: %v", err)
	}
	if len(images) != 4 {
		t.Errorf("Expected 4 images with png+jpg, got %v", images)
	}
}

func TestScanImages_EmptyFolder(t *testing.T) {
	images, err := ScanImages(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("ScanImages failed: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("Expected no images, got %v", images)
	}
}

func TestScanImages_NotADirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.png")

	if _, err := ScanImages(filepath.Join(root, "a.png"), nil); err == nil {
		t.Error("Expected error when scanning a file")
	}
	if _, err := ScanImages(filepath.Join(root, "missing"), nil); err == nil {
		t.Error("Expected error when scanning a missing folder")
	}
}

func TestListDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sub/deeper/c.png")
	writeFile(t, root, "other/x.png")

	dirs, err := ListDirectories(root)
	if err != nil {
		t.Fatalf("ListDirectories failed: %v", err)
	}

	expected := []string{
		root,
		filepath.Join(root, "other"),
		filepath.Join(root, "sub"),
		filepath.Join(root, "sub", "deeper"),
	}
	if !reflect.DeepEqual(dirs, expected) {
		t.Errorf("ListDirectories = %v, expected %v", dirs, expected)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")

	if err := AtomicWriteFile(path, []byte("first"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected 'second', got %q", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), tempFilePrefix) {
			t.Errorf("Temp file left behind: %s", entry.Name())
		}
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	dir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}
	if dir == "" {
		t.Fatal("Pictures directory is empty")
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path")
	}
}
