package storage

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher surfaces external changes to a file-backed substrate, the server
// equivalent of the browser reacting to another tab writing localStorage.
// Events are debounced per key because editors and atomic renames produce
// bursts of filesystem events for a single logical write.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	store    *FileStorage
	onChange func(key string)
	logger   zerolog.Logger

	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a watcher over the given file storage. onChange is
// invoked with the substrate key whose payload changed on disk.
func NewWatcher(store *FileStorage, onChange func(key string), logger zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fsw,
		store:       store,
		onChange:    onChange,
		logger:      logger,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching the storage directory. Non-blocking; events are
// handled on a background goroutine until Stop is called.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.store.Dir()); err != nil {
		return err
	}

	go w.loop()
	w.logger.Info().Str("dir", w.store.Dir()).Msg("Storage change watcher started")
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			key, ok := w.store.KeyForPath(event.Name)
			if !ok {
				continue
			}
			if w.debounced(key) {
				continue
			}
			w.logger.Debug().Str("key", key).Str("op", event.Op.String()).Msg("Substrate payload changed on disk")
			if w.onChange != nil {
				w.onChange(key)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("Storage watcher error")
		}
	}
}

// debounced reports whether an event for key arrived within the debounce window
func (w *Watcher) debounced(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	if last, ok := w.debounceMap[key]; ok && now.Sub(last) < w.debounceDur {
		return true
	}
	w.debounceMap[key] = now
	return false
}
