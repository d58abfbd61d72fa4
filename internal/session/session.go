package session

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/image-labeler/internal/classify"
	"github.com/ytget/image-labeler/internal/config"
	"github.com/ytget/image-labeler/internal/logging"
	"github.com/ytget/image-labeler/internal/model"
	"github.com/ytget/image-labeler/internal/platform"
	"github.com/ytget/image-labeler/internal/preview"
	"github.com/ytget/image-labeler/internal/store"
)

// Options configures a Session
type Options struct {
	// Config receives the last opened folder; nil disables persisting it.
	Config     *config.Config
	Extensions []string
	// Width is the display width images are scaled to; 0 means preview.DefaultWidth.
	Width      int
	Classifier classify.Classifier
	Logger     *zap.Logger
}

// View is what the presentation layer renders for the current image
type View struct {
	Index    int
	Total    int
	Path     string
	FullPath string
	Classes  []model.ClassState
}

// Session is the state of one labeling window
type Session struct {
	id         string
	cfg        *config.Config
	store      *store.Store
	imageNames []string
	index      int
	extensions []string
	width      int
	classifier classify.Classifier
	logger     *zap.Logger
}

// New creates a session with no dataset open
func New(opts Options) *Session {
	width := opts.Width
	if width <= 0 {
		width = preview.DefaultWidth
	}
	id := uuid.NewString()
	return &Session{
		id:         id,
		cfg:        opts.Config,
		extensions: platform.NormalizeExtensions(opts.Extensions),
		width:      width,
		classifier: opts.Classifier,
		logger:     logging.OrNop(opts.Logger).With(zap.String("session", id)),
	}
}

// SetWidth changes the display width used by Image
func (s *Session) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// SetExtensions changes the extensions scanned by OpenFolder and Rescan
func (s *Session) SetExtensions(exts []string) {
	s.extensions = platform.NormalizeExtensions(exts)
}

// SetClassifier installs the classifier used by AutoClassify
func (s *Session) SetClassifier(c classify.Classifier) {
	s.classifier = c
}

// HasClassifier reports whether AutoClassify can run
func (s *Session) HasClassifier() bool {
	return s.classifier != nil
}

// OpenFolder makes dir the active dataset. The previous dataset is flushed, the
// folder is recorded in the config, labels are loaded and the folder is scanned.
// Every discovered image gets a label entry and the cursor moves to the first
// image. On failure the previous dataset stays active.
func (s *Session) OpenFolder(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	if err := s.Save(); err != nil {
		s.logger.Warn("Failed to flush previous dataset", zap.Error(err))
	}

	if s.cfg != nil {
		if err := s.cfg.SetDefaultDataPath(absDir); err != nil {
			return err
		}
	}

	st, err := store.Open(absDir, s.logger)
	if err != nil {
		return err
	}

	images, err := platform.ScanImages(absDir, s.extensions)
	if err != nil {
		return err
	}

	doc := st.Document()
	added := 0
	for _, path := range images {
		if doc.EnsureImage(path) {
			added++
		}
	}

	s.store = st
	s.imageNames = images
	s.index = 0

	s.logger.Info("Dataset opened",
		zap.String("dir", absDir),
		zap.Int("images", len(images)),
		zap.Int("new_images", added),
		zap.Int("classes", len(doc.Classes)))
	return nil
}

// Rescan re-reads the image list of the open folder without reloading labels.
// The current image stays selected when it still exists.
func (s *Session) Rescan() error {
	if s.store == nil {
		return ErrNoDataset
	}

	images, err := platform.ScanImages(s.store.Dir(), s.extensions)
	if err != nil {
		return err
	}

	current, hadCurrent := s.Current()
	doc := s.store.Document()
	for _, path := range images {
		doc.EnsureImage(path)
	}
	s.imageNames = images

	switch {
	case len(images) == 0:
		s.index = 0
	case hadCurrent:
		s.index = clampIndex(s.index, len(images))
		for i, path := range images {
			if path == current {
				s.index = i
				break
			}
		}
	default:
		s.index = 0
	}

	s.logger.Debug("Dataset rescanned", zap.Int("images", len(images)), zap.Int("index", s.index))
	return nil
}

func clampIndex(index, n int) int {
	if index >= n {
		return n - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

// IsOpen reports whether a dataset folder is open
func (s *Session) IsOpen() bool {
	return s.store != nil
}

// Dir returns the open dataset folder, or "" when none is open
func (s *Session) Dir() string {
	if s.store == nil {
		return ""
	}
	return s.store.Dir()
}

// Images returns the discovered image paths in scan order
func (s *Session) Images() []string {
	out := make([]string, len(s.imageNames))
	copy(out, s.imageNames)
	return out
}

// Len returns the number of discovered images
func (s *Session) Len() int {
	return len(s.imageNames)
}

// Index returns the cursor position
func (s *Session) Index() int {
	return s.index
}

// Current returns the path of the current image
func (s *Session) Current() (string, bool) {
	if len(s.imageNames) == 0 {
		return "", false
	}
	return s.imageNames[s.index], true
}

// Next moves to the following image, wrapping to the first
func (s *Session) Next() error {
	if len(s.imageNames) == 0 {
		return ErrEmptyDataset
	}
	s.index++
	if s.index >= len(s.imageNames) {
		s.index = 0
	}
	return nil
}

// Previous moves to the preceding image, wrapping to the last
func (s *Session) Previous() error {
	if len(s.imageNames) == 0 {
		return ErrEmptyDataset
	}
	s.index--
	if s.index < 0 {
		s.index = len(s.imageNames) - 1
	}
	return nil
}

// GoTo moves the cursor to index
func (s *Session) GoTo(index int) error {
	if len(s.imageNames) == 0 {
		return ErrEmptyDataset
	}
	if index < 0 || index >= len(s.imageNames) {
		return fmt.Errorf("%w: image %d of %d", model.ErrIndexOutOfRange, index, len(s.imageNames))
	}
	s.index = index
	return nil
}

// Classes returns the class names in checkbox order
func (s *Session) Classes() []string {
	if s.store == nil {
		return nil
	}
	classes := s.store.Document().Classes
	out := make([]string, len(classes))
	copy(out, classes)
	return out
}

// View returns the current image and its per-class state. Classes beyond the
// stored label vector read as false.
func (s *Session) View() (View, error) {
	path, ok := s.Current()
	if !ok {
		return View{}, ErrEmptyDataset
	}
	return View{
		Index:    s.index,
		Total:    len(s.imageNames),
		Path:     path,
		FullPath: s.fullPath(path),
		Classes:  s.store.Document().ClassStates(path),
	}, nil
}

// Image loads the current image scaled to the display width. A file deleted
// since the scan yields preview.ErrMissingFile; navigation keeps working.
func (s *Session) Image() (image.Image, error) {
	path, ok := s.Current()
	if !ok {
		return nil, ErrEmptyDataset
	}
	return preview.Load(s.fullPath(path), s.width)
}

func (s *Session) fullPath(path string) string {
	return filepath.Join(s.store.Dir(), filepath.FromSlash(path))
}

// AddClass appends a class to the open dataset and saves
func (s *Session) AddClass(name string) error {
	if s.store == nil {
		return ErrNoDataset
	}
	doc := s.store.Document()
	if err := doc.AddClass(name); err != nil {
		return err
	}
	s.logger.Info("Class added", zap.String("class", doc.Classes[len(doc.Classes)-1]))
	return s.persist()
}

// SelectClass sets the class at index for the current image and saves
func (s *Session) SelectClass(index int, value bool) error {
	path, ok := s.Current()
	if !ok {
		return ErrEmptyDataset
	}
	if err := s.store.Document().SetValue(path, index, value); err != nil {
		return err
	}
	s.logger.Debug("Label changed", zap.String("image", path), zap.Int("class", index), zap.Bool("value", value))
	return s.persist()
}

// SetClass sets the named class for the current image and saves
func (s *Session) SetClass(name string, value bool) error {
	path, ok := s.Current()
	if !ok {
		return ErrEmptyDataset
	}
	if err := s.store.Document().SetClass(path, name, value); err != nil {
		return err
	}
	s.logger.Debug("Label changed", zap.String("image", path), zap.String("class", name), zap.Bool("value", value))
	return s.persist()
}

// AutoClassify asks the classifier for the current image and applies the
// returned labels for known classes
func (s *Session) AutoClassify(ctx context.Context) error {
	if s.classifier == nil {
		return classify.ErrNoClassifier
	}
	path, ok := s.Current()
	if !ok {
		return ErrEmptyDataset
	}

	data, err := preview.ReadBytes(s.fullPath(path))
	if err != nil {
		return err
	}

	doc := s.store.Document()
	result, err := s.classifier.Classify(ctx, data, s.Classes())
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	applied := 0
	for i, class := range doc.Classes {
		value, ok := result[class]
		if !ok {
			continue
		}
		if err := doc.SetValue(path, i, value); err != nil {
			return err
		}
		applied++
	}

	s.logger.Info("Image classified", zap.String("image", path), zap.Int("applied", applied))
	return s.persist()
}

// Stats summarizes labeling progress over the discovered images
func (s *Session) Stats() model.Stats {
	if s.store == nil {
		return model.Stats{}
	}
	return s.store.Document().Stats(s.Images())
}

// Document returns a copy of the label document
func (s *Session) Document() *model.LabelDocument {
	if s.store == nil {
		return model.NewLabelDocument()
	}
	return s.store.Document().Clone()
}

// Save writes the label file of the open dataset; without one it does nothing
func (s *Session) Save() error {
	if s.store == nil {
		return nil
	}
	return s.store.Save()
}

// Close flushes the label file. It is safe to call more than once.
func (s *Session) Close() error {
	if err := s.Save(); err != nil {
		return err
	}
	if s.store != nil {
		s.logger.Info("Session closed", zap.String("dir", s.store.Dir()))
	}
	return nil
}

func (s *Session) persist() error {
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("labels changed but not saved: %w", err)
	}
	return nil
}
