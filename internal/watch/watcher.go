// Package watch notifies the labeler when images are added to, removed from or
// renamed inside the open dataset folder, so the image list can be rescanned.
package watch

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ytget/image-labeler/internal/logging"
	"github.com/ytget/image-labeler/internal/platform"
)

// DefaultDebounce batches bursts of events, such as copying a folder of images
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a dataset folder and its subdirectories
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	root     string
	exts     []string
	debounce time.Duration
	onChange func()
	logger   *zap.Logger

	pending bool
	lastHit time.Time
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a watcher for root. onChange is called from the watcher goroutine
// once events have settled for the debounce duration.
func New(root string, exts []string, debounce time.Duration, onChange func(), logger *zap.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		watcher:  w,
		root:     root,
		exts:     platform.NormalizeExtensions(exts),
		debounce: debounce,
		onChange: onChange,
		logger:   logging.OrNop(logger),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start adds root and its subdirectories to the watch list and begins
// processing events in a goroutine
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	dirs, err := platform.ListDirectories(w.root)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Warn("Failed to watch directory", zap.String("dir", dir), zap.Error(err))
		}
	}
	w.logger.Debug("Watching dataset", zap.String("root", w.root), zap.Int("dirs", len(dirs)))

	// running is only set once run owns doneCh; Stop waits on it
	w.mu.Lock()
	w.running = true
	w.mu.Unlock()

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("Error closing watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	relevant := platform.HasImageExtension(event.Name, w.exts)
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			// new subdirectories must be watched too; images already inside
			// them are picked up by the rescan
			if err := w.watcher.Add(event.Name); err != nil {
				w.logger.Warn("Failed to watch directory", zap.String("dir", event.Name), zap.Error(err))
			}
			relevant = true
		}
	}
	if !relevant {
		return
	}

	w.logger.Debug("Dataset changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
	w.mu.Lock()
	w.pending = true
	w.lastHit = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if !w.pending || time.Since(w.lastHit) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = false
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange()
	}
}
