// Package watch re-runs indentation work when BenchScript sources change
// on disk.
//
// Editors commonly save through a rename-replace, so a watch on the file
// itself dies on the first save. The watcher instead watches the parent
// directories of its target files and filters events down to writes and
// creates of the watched names. Rapid bursts for one path are coalesced
// before the handler runs.
package watch

import (
	"errors"
	"strings"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("file is already being watched")
	ErrNotWatching     = errors.New("file is not being watched")
	ErrPathNotExist    = errors.New("path does not exist")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates a file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

// String returns a readable name. Coalesced events may carry several ops.
func (op Op) String() string {
	if op == 0 {
		return "NONE"
	}
	var parts []string
	if op.Has(OpCreate) {
		parts = append(parts, "CREATE")
	}
	if op.Has(OpWrite) {
		parts = append(parts, "WRITE")
	}
	if op.Has(OpRemove) {
		parts = append(parts, "REMOVE")
	}
	if op.Has(OpRename) {
		parts = append(parts, "RENAME")
	}
	if op.Has(OpChmod) {
		parts = append(parts, "CHMOD")
	}
	if len(parts) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(parts, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event represents a change to a watched file.
type Event struct {
	// Path is the absolute path of the affected file.
	Path string

	// Op is the operation that occurred. A debounced event carries the
	// union of the coalesced operations.
	Op Op

	// Timestamp is when the most recent underlying event occurred.
	Timestamp time.Time
}

// Handler is called with each debounced event.
type Handler func(event Event)

// Stats provides watcher status information.
type Stats struct {
	// WatchedFiles is the number of files being watched.
	WatchedFiles int

	// PendingEvents is the number of events waiting out the debounce
	// window.
	PendingEvents int

	// TotalEvents is the number of events delivered to the handler.
	TotalEvents int64

	// Errors is the total number of errors encountered.
	Errors int64

	// LastError is the most recent error, if any.
	LastError error

	// StartTime is when the watcher was started.
	StartTime time.Time
}

// Config holds watcher configuration options.
type Config struct {
	// DebounceDelay is how long a path's events are coalesced before
	// delivery. Default: 100ms.
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
	}
}

// Option configures a watcher.
type Option func(*Config)

// WithDebounceDelay sets the debounce delay.
func WithDebounceDelay(d time.Duration) Option {
	return func(c *Config) {
		c.DebounceDelay = d
	}
}
