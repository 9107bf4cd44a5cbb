package watch

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a set of files through their parent directories and
// delivers debounced change events to a handler.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	handler Handler
	delay   time.Duration

	// files maps watched file paths; dirs refcounts their parents.
	files map[string]bool
	dirs  map[string]int

	pending map[string]*pendingEvent

	// Stats
	startTime   time.Time
	totalEvents int64
	totalErrors int64
	lastError   error

	// Lifecycle
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// pendingEvent tracks a debounced event.
type pendingEvent struct {
	event Event
	timer *time.Timer
}

// New creates a watcher delivering events to handler.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:   fsw,
		handler:   handler,
		delay:     config.DebounceDelay,
		files:     make(map[string]bool),
		dirs:      make(map[string]int),
		pending:   make(map[string]*pendingEvent),
		startTime: time.Now(),
		closeCh:   make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Add starts watching a file. The file must exist; its parent directory
// is what actually lands in fsnotify.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}

	if w.files[absPath] {
		return ErrAlreadyWatching
	}

	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[absPath] = true
	return nil
}

// Remove stops watching a file. A pending debounced event for the file
// is discarded.
func (w *Watcher) Remove(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if !w.files[absPath] {
		return ErrNotWatching
	}

	delete(w.files, absPath)
	if p, ok := w.pending[absPath]; ok {
		p.timer.Stop()
		delete(w.pending, absPath)
	}

	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		return w.watcher.Remove(dir)
	}
	return nil
}

// IsWatching returns true if the file is being watched.
func (w *Watcher) IsWatching(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[absPath]
}

// WatchedFiles returns all watched file paths in sorted order.
func (w *Watcher) WatchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Stats returns watcher statistics.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Stats{
		WatchedFiles:  len(w.files),
		PendingEvents: len(w.pending),
		TotalEvents:   atomic.LoadInt64(&w.totalEvents),
		Errors:        atomic.LoadInt64(&w.totalErrors),
		LastError:     w.lastError,
		StartTime:     w.startTime,
	}
}

// Flush immediately fires all pending events. Useful for tests.
func (w *Watcher) Flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path, p := range w.pending {
		p.timer.Stop()
		paths = append(paths, path)
	}
	w.mu.Unlock()

	for _, path := range paths {
		w.fire(path)
	}
}

// Close stops the watcher. Events arriving after Close are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)

	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.recordError(err)
		}
	}
}

// handleFSEvent filters and debounces one fsnotify event.
func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	path := filepath.Clean(fsEvent.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[path] {
		return
	}
	// Saves land as writes, or creates when the editor rename-replaces.
	if !op.Has(OpWrite) && !op.Has(OpCreate) {
		return
	}

	now := time.Now()
	if p, exists := w.pending[path]; exists {
		p.event.Op |= op
		p.event.Timestamp = now
		p.timer.Reset(w.delay)
		return
	}

	w.pending[path] = &pendingEvent{
		event: Event{Path: path, Op: op, Timestamp: now},
		timer: time.AfterFunc(w.delay, func() {
			w.fire(path)
		}),
	}
}

// fire delivers a pending event to the handler.
func (w *Watcher) fire(path string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	p, exists := w.pending[path]
	if !exists {
		w.mu.Unlock()
		return
	}
	delete(w.pending, path)
	event := p.event
	w.mu.Unlock()

	atomic.AddInt64(&w.totalEvents, 1)
	if w.handler != nil {
		w.handler(event)
	}
}

// convertOp converts fsnotify.Op to watch.Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}

// recordError records an error in stats.
func (w *Watcher) recordError(err error) {
	atomic.AddInt64(&w.totalErrors, 1)
	w.mu.Lock()
	w.lastError = err
	w.mu.Unlock()
}
