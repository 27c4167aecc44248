package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/hotbarscroll/internal/logging"
	"github.com/bnema/hotbarscroll/internal/ui/mainloop"
)

const reloadKey = "config-reload"

// Watcher reloads the settings file when it changes on disk. Detection runs
// on the fsnotify goroutine; the re-parse and Store.Replace are posted to the
// frame goroutine so no frame sees a settings swap mid-read.
type Watcher struct {
	manager   *Manager
	store     *Store
	coalescer *mainloop.Coalescer
	fsw       *fsnotify.Watcher

	mu        sync.Mutex
	callbacks []func(Settings)
}

// NewWatcher watches the directory holding the manager's file. post
// schedules work on the frame goroutine, usually mainloop.Queue.Post.
func NewWatcher(manager *Manager, store *Store, post func(func())) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory rather than the file: editors that save via
	// rename replace the inode and a file watch would go silent.
	dir := filepath.Dir(manager.Path())
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		manager:   manager,
		store:     store,
		coalescer: mainloop.NewCoalescer(post),
		fsw:       fsw,
	}, nil
}

// OnReload registers a callback run on the frame goroutine after every
// successful reload.
func (w *Watcher) OnReload(callback func(Settings)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.callbacks = append(w.callbacks, callback)
}

// Run forwards filesystem events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	defer func() {
		w.coalescer.Stop()
		_ = w.fsw.Close()
	}()

	log.Debug().Str("file", w.manager.Path()).Msg("watching config file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !shouldReload(w.manager.Path(), event) {
		return
	}

	logging.FromContext(ctx).Debug().
		Str("op", event.Op.String()).
		Str("file", event.Name).
		Msg("config change detected")

	w.coalescer.Post(reloadKey, func() { w.reload(ctx) })
}

// shouldReload reports whether an fsnotify event concerns the config file and
// is a create, write or rename.
func shouldReload(configPath string, event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	if name == filepath.Clean(configPath) {
		return true
	}
	return filepath.Base(name) == filepath.Base(configPath)
}

// reload runs on the frame goroutine.
func (w *Watcher) reload(ctx context.Context) {
	log := logging.FromContext(ctx)

	if _, err := os.Stat(w.manager.Path()); err != nil {
		return
	}

	settings, err := w.manager.Reload()
	if err != nil {
		log.Error().Err(err).Msgf("There was an issue loading %s", filepath.Base(w.manager.Path()))
		log.Error().Msg("Please check your config entries for spelling and format!")
		return
	}

	previous := w.store.Current()
	w.store.Replace(settings)
	log.Info().
		Str("modifier_key", settings.Modifier.String()).
		Str("inverted_scroll", settings.InvertScroll.String()).
		Bool("changed", !previous.Equal(settings)).
		Msg("config reloaded")

	w.mu.Lock()
	callbacks := make([]func(Settings), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		callback(settings)
	}
}
