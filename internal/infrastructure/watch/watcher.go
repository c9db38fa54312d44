package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FolderWatcher watches a single drop folder for contract files using
// fsnotify. Create and write events for accepted files are debounced per
// path and delivered to onFile once the file stops changing.
type FolderWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	accept   func(name string) bool
	onFile   func(path string)
}

// NewFolderWatcher creates a watcher. accept filters candidate filenames
// before any callback; files it rejects are ignored silently (the upload
// guard reports rejections for explicit submissions, not for stray files
// in the folder).
func NewFolderWatcher(debounce time.Duration, accept func(string) bool, onFile func(string)) (*FolderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	if accept == nil {
		accept = func(string) bool { return true }
	}
	return &FolderWatcher{
		watcher:  w,
		debounce: debounce,
		accept:   accept,
		onFile:   onFile,
	}, nil
}

// Watch adds the drop folder to the watcher.
func (w *FolderWatcher) Watch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: not a directory", dir)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}

// Run starts the event loop. It blocks until the context is cancelled or
// the watcher fails.
func (w *FolderWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debouncer := newKeyedDebouncer(w.debounce, func(path string) {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return
		}
		if w.onFile != nil {
			w.onFile(path)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !w.accept(event.Name) {
				continue
			}
			debouncer.Trigger(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
