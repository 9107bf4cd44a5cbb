package lua

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// InitScript is the entry script a plugin directory provides.
const InitScript = "init.lua"

// Logger is the logging surface the runtime reports through.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// ScriptInfo identifies one loaded script instance.
type ScriptInfo struct {
	// ID is the instance identifier assigned at load time.
	ID string

	// Path is the script's filesystem path.
	Path string

	// LoadedAt records when the script ran.
	LoadedAt time.Time
}

// Runtime loads extension scripts from a plugin directory and collects
// their contributions.
type Runtime struct {
	dir     string
	log     Logger
	state   *State
	contrib *Contrib
	scripts []ScriptInfo
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLogger sets the logger the runtime reports through.
func WithLogger(l Logger) RuntimeOption {
	return func(r *Runtime) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRuntime creates a runtime rooted at the plugin directory. The
// directory does not need to exist.
func NewRuntime(dir string, opts ...RuntimeOption) (*Runtime, error) {
	state, err := NewState()
	if err != nil {
		return nil, err
	}

	r := &Runtime{
		dir:     dir,
		log:     nopLogger{},
		state:   state,
		contrib: NewContrib(),
	}
	for _, opt := range opts {
		opt(r)
	}

	installBenchModule(state, r.contrib)
	return r, nil
}

// Load executes the directory's scripts: init.lua first when present,
// then any other .lua files in name order. A missing directory or a
// directory without scripts is not an error. A script that fails is
// logged and skipped; contributions it made before failing stand.
func (r *Runtime) Load() *Contrib {
	for _, path := range r.scriptPaths() {
		if err := r.state.DoFile(path); err != nil {
			r.log.Error("extension script %s failed: %v", path, err)
			continue
		}
		r.scripts = append(r.scripts, ScriptInfo{
			ID:       uuid.New().String(),
			Path:     path,
			LoadedAt: time.Now(),
		})
		r.log.Info("loaded extension script %s", path)
	}
	return r.contrib
}

// scriptPaths returns the scripts to run, init.lua first.
func (r *Runtime) scriptPaths() []string {
	if r.dir == "" {
		return nil
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil
	}

	var paths []string
	hasInit := false
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".lua" {
			continue
		}
		if e.Name() == InitScript {
			hasInit = true
			continue
		}
		paths = append(paths, filepath.Join(r.dir, e.Name()))
	}
	sort.Strings(paths)
	if hasInit {
		paths = append([]string{filepath.Join(r.dir, InitScript)}, paths...)
	}
	return paths
}

// Contrib returns the contributions collected so far.
func (r *Runtime) Contrib() *Contrib {
	return r.contrib
}

// Scripts returns the scripts loaded so far.
func (r *Runtime) Scripts() []ScriptInfo {
	out := make([]ScriptInfo, len(r.scripts))
	copy(out, r.scripts)
	return out
}

// Close releases the runtime's Lua state.
func (r *Runtime) Close() error {
	return r.state.Close()
}
