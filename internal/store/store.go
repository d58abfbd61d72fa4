package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/image-labeler/internal/logging"
	"github.com/ytget/image-labeler/internal/model"
	"github.com/ytget/image-labeler/internal/platform"
)

// FileName is the label file created inside every dataset folder
const FileName = "image_labels.json"

// File permissions
const (
	DefaultFilePermissions = 0644
)

// ErrLabelParse is returned when the label file exists but is not valid JSON
var ErrLabelParse = errors.New("malformed label file")

// FilePath returns the label file location for dataset folder dir
func FilePath(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the label document of dir. A missing file yields an empty document.
func Load(dir string) (*model.LabelDocument, error) {
	doc, _, err := load(dir)
	return doc, err
}

func load(dir string) (*model.LabelDocument, []string, error) {
	path := FilePath(dir)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return model.NewLabelDocument(), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := &model.LabelDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrLabelParse, path, err)
	}
	slashKeys(doc)
	truncated := doc.Normalize()
	return doc, truncated, nil
}

// slashKeys rewrites backslash-separated image keys, as written on Windows,
// to the slash-separated form ScanImages produces. An existing slash key wins.
func slashKeys(doc *model.LabelDocument) {
	for path, values := range doc.Labels {
		if !strings.Contains(path, `\`) {
			continue
		}
		delete(doc.Labels, path)
		key := strings.ReplaceAll(path, `\`, "/")
		if _, exists := doc.Labels[key]; !exists {
			doc.Labels[key] = values
		}
	}
}

// Save writes doc to the label file of dir, replacing any existing file
func Save(dir string, doc *model.LabelDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode labels: %w", err)
	}
	if err := platform.AtomicWriteFile(FilePath(dir), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to save labels: %w", err)
	}
	return nil
}

// Store owns the label document of one dataset folder
type Store struct {
	dir    string
	doc    *model.LabelDocument
	logger *zap.Logger
}

// Open loads the label document of dir
func Open(dir string, logger *zap.Logger) (*Store, error) {
	logger = logging.OrNop(logger)

	doc, truncated, err := load(dir)
	if err != nil {
		return nil, err
	}
	for _, path := range truncated {
		logger.Warn("Label vector longer than class list, truncated",
			zap.String("image", path),
			zap.Int("classes", len(doc.Classes)))
	}

	logger.Debug("Labels loaded",
		zap.String("file", FilePath(dir)),
		zap.Int("classes", len(doc.Classes)),
		zap.Int("images", len(doc.Labels)))

	return &Store{dir: dir, doc: doc, logger: logger}, nil
}

// Dir returns the dataset folder
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the label file location
func (s *Store) Path() string {
	return FilePath(s.dir)
}

// Document returns the live document; mutations are persisted by Save
func (s *Store) Document() *model.LabelDocument {
	return s.doc
}

// Save writes the document to disk
func (s *Store) Save() error {
	if err := Save(s.dir, s.doc); err != nil {
		return err
	}
	s.logger.Debug("Labels saved", zap.String("file", s.Path()), zap.Int("images", len(s.doc.Labels)))
	return nil
}
