package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-labeler/internal/model"
	"github.com/ytget/image-labeler/internal/platform"
	"github.com/ytget/image-labeler/internal/store"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	jsonOutput = false
	statsExtensions = platform.DefaultImageExtensions

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "sub/c.png", "d.jpg"} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	doc := model.NewLabelDocument()
	require.NoError(t, doc.AddClass("cat"))
	require.NoError(t, doc.AddClass("dog"))
	require.NoError(t, doc.SetLabel("a.png", []bool{true, true}))
	require.NoError(t, doc.SetLabel("b.png", []bool{false}))
	require.NoError(t, doc.SetLabel("sub/c.png", []bool{true}))
	require.NoError(t, doc.SetLabel("gone.png", []bool{true, true}))
	require.NoError(t, store.Save(dir, doc))
	return dir
}

func TestRootCommand_Help(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "image-labeler")
	assert.Contains(t, out, "stats")
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")

	out, err = executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestSetVersion_EmptyKeepsCurrent(t *testing.T) {
	SetVersion("2.0.0")
	SetVersion("")
	assert.Equal(t, "2.0.0", rootCmd.Version)
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	_, err := executeCommand(t, "a", "b")
	assert.Error(t, err)
}

func TestStats_Text(t *testing.T) {
	dir := writeDataset(t)

	out, err := executeCommand(t, "stats", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[1], "3")
	assert.True(t, strings.HasPrefix(lines[2], "Labeled:"))
	assert.Contains(t, lines[2], "2")
	assert.Contains(t, lines[3], "1")
	assert.Equal(t, "Classes:", lines[4])
	assert.Equal(t, []string{"cat", "2"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"dog", "1"}, strings.Fields(lines[6]))
}

func TestStats_JSONWithExtensions(t *testing.T) {
	dir := writeDataset(t)

	out, err := executeCommand(t, "stats", dir, "--json", "--ext", ".png,.jpg")
	require.NoError(t, err)

	var report statsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 4, report.Images)
	assert.Equal(t, 2, report.Labeled)
	assert.Equal(t, 2, report.Unlabeled)
	assert.Equal(t, []classCount{{Name: "cat", Count: 2}, {Name: "dog", Count: 1}}, report.Classes)
}

func TestStats_NoLabelFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("x"), 0644))

	out, err := executeCommand(t, "stats", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "Classes:")

	_, err = os.Stat(store.FilePath(dir))
	assert.True(t, os.IsNotExist(err), "stats must not create the label file")
}

func TestStats_MalformedLabels(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(store.FilePath(dir), []byte("{nope"), 0644))

	_, err := executeCommand(t, "stats", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrLabelParse))
}

func TestStats_RequiresFolder(t *testing.T) {
	_, err := executeCommand(t, "stats")
	assert.Error(t, err)
}
