// Package app wires the benchedit components into a runnable tool:
// configuration, the Lua extension runtime, the classifier/resolver pair,
// highlighting, documentation, and the four operating modes (filter,
// watch, view, doc).
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/dshills/benchedit/internal/config"
	"github.com/dshills/benchedit/internal/engine/buffer"
	"github.com/dshills/benchedit/internal/help"
	"github.com/dshills/benchedit/internal/highlight"
	"github.com/dshills/benchedit/internal/indent"
	"github.com/dshills/benchedit/internal/lang"
	"github.com/dshills/benchedit/internal/plugin/lua"
	"github.com/dshills/benchedit/internal/term"
	"github.com/dshills/benchedit/internal/watch"
)

// Options configures the application.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
	// LogFile overrides the configured log file when non-empty.
	LogFile string

	// Write rewrites files in place instead of printing to stdout.
	Write bool
	// List prints the names of files whose indentation differs.
	List bool
	// Check reports differences through the exit code without writing.
	Check bool
	// Watch keeps running and rewrites watched files on save. Implies
	// Write.
	Watch bool
	// View opens the read-only viewer on the given file.
	View bool
	// Doc looks up language documentation instead of processing files.
	Doc string
	// TabWidth overrides the configured indentation step when positive.
	TabWidth int

	// Paths are the files and directories to process. Empty means read
	// from standard input.
	Paths []string

	// Stdin, Stdout and Stderr override the process streams in tests.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Application is the assembled tool.
type Application struct {
	opts      Options
	writeMode bool

	cfg        *config.Config
	log        *Logger
	logSink    io.WriteCloser
	runtime    *lua.Runtime
	classifier *lang.Classifier
	resolver   *indent.Resolver
	provider   *highlight.Provider
	theme      *highlight.Theme
	docs       *help.Docs

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New builds an application from opts: configuration is loaded, extension
// scripts run, and the language components are assembled from the merged
// settings. Construction failures are configuration or usage problems.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		writeMode: opts.Write || opts.Watch,
		stdin:     opts.Stdin,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	// Flags beat file and environment settings.
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}

	log := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Log.Level),
		Output: app.stderr,
		Prefix: "benchedit",
	})
	if cfg.Log.File != "" {
		sink, err := FileSink(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		log.SetOutput(sink)
		app.logSink = sink
	}
	SetLogger(log)
	app.log = log

	contrib := app.loadPlugins(cfg)
	applyContribSettings(cfg, contrib, log)

	if opts.TabWidth > 0 {
		cfg.Editor.TabWidth = opts.TabWidth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app.cfg = cfg

	openers := append(append([]string(nil), cfg.Language.ExtraOpeners...), contrib.Openers...)
	closers := append(append([]string(nil), cfg.Language.ExtraClosers...), contrib.Closers...)

	classifier, err := lang.NewClassifier(lang.Config{
		CommentPrefix: cfg.Language.CommentPrefix,
		ExtraOpeners:  openers,
		ExtraClosers:  closers,
	})
	if err != nil {
		return nil, err
	}
	app.classifier = classifier
	app.resolver = indent.NewResolver(classifier, cfg.Editor.TabWidth)

	app.provider, err = highlight.NewProvider(
		highlight.BenchScriptHighlighterWith(cfg.Language.CommentPrefix, openers, closers), 0)
	if err != nil {
		return nil, err
	}

	theme, ok := highlight.ThemeNamed(cfg.UI.Theme)
	if !ok {
		log.Warn("unknown theme %q, using default", cfg.UI.Theme)
		theme = highlight.DefaultTheme()
	}
	app.theme = theme

	docs := help.Builtin()
	docs.Add(contrib.Docs...)
	for _, p := range cfg.Language.DocPaths {
		entries, err := help.LoadPath(p)
		if err != nil {
			log.Warn("doc pack %s: %v", p, err)
			continue
		}
		docs.Add(entries...)
	}
	app.docs = docs

	log.Debug("ready: tab_width=%d comment_prefix=%q openers=%d closers=%d docs=%d",
		cfg.Editor.TabWidth, classifier.CommentPrefix(), len(openers), len(closers), docs.Len())

	return app, nil
}

// loadPlugins runs the extension scripts and returns their contributions.
// Plugin trouble is logged, never fatal.
func (app *Application) loadPlugins(cfg *config.Config) *lua.Contrib {
	if !cfg.Plugin.Enabled {
		return lua.NewContrib()
	}
	dir := cfg.Plugin.Dir
	if dir == "" {
		dir = config.DefaultPluginDir()
	}
	if dir == "" {
		return lua.NewContrib()
	}

	rt, err := lua.NewRuntime(dir, lua.WithLogger(app.log.WithComponent("plugin")))
	if err != nil {
		app.log.Warn("plugin runtime unavailable: %v", err)
		return lua.NewContrib()
	}
	app.runtime = rt

	contrib := rt.Load()
	if n := len(rt.Scripts()); n > 0 {
		app.log.Debug("loaded %d extension scripts from %s", n, dir)
	}
	return contrib
}

// applyContribSettings merges validated extension settings over cfg.
// Unusable values are logged and skipped so a bad script cannot stall
// the tool.
func applyContribSettings(cfg *config.Config, contrib *lua.Contrib, log *Logger) {
	for key, value := range contrib.Settings {
		switch key {
		case lua.SettingTabWidth:
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 || n > 16 {
				log.Warn("extension tab_width %q ignored", value)
				continue
			}
			cfg.Editor.TabWidth = n
		case lua.SettingCommentPrefix:
			if utf8.RuneCountInString(value) != 1 {
				log.Warn("extension comment_prefix %q ignored", value)
				continue
			}
			cfg.Language.CommentPrefix = value
		case lua.SettingTheme:
			cfg.UI.Theme = value
		}
	}
}

// Run executes the selected mode and blocks until it finishes.
func (app *Application) Run(ctx context.Context) error {
	switch {
	case app.opts.Doc != "":
		return app.runDoc()
	case app.opts.View:
		return app.runView()
	case app.opts.Watch:
		return app.runWatch(ctx)
	default:
		return app.runFilter(ctx)
	}
}

// Shutdown releases held resources. Safe to call more than once.
func (app *Application) Shutdown() {
	if app.runtime != nil {
		if err := app.runtime.Close(); err != nil {
			app.log.Error("closing plugin runtime: %v", err)
		}
		app.runtime = nil
	}
	if app.logSink != nil {
		_ = app.logSink.Close()
		app.logSink = nil
	}
}

// runDoc prints the documentation entry for the requested name.
func (app *Application) runDoc() error {
	entry, ok := app.docs.Lookup(app.opts.Doc)
	if !ok {
		return NewOperationError("doc", app.opts.Doc, ErrDocNotFound)
	}
	fmt.Fprintln(app.stdout, entry)
	return nil
}

// runView opens the read-only viewer on the single given file.
func (app *Application) runView() error {
	if len(app.opts.Paths) != 1 {
		return fmt.Errorf("%w: -view needs exactly one file", ErrUsage)
	}
	path := app.opts.Paths[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return NewOperationError("view", path, err)
	}
	buf := app.newBuffer(string(data))

	backend, err := term.NewTerminal()
	if err != nil {
		return NewOperationError("view", path, err)
	}
	viewer := term.NewViewer(backend, buf,
		term.WithName(filepath.Base(path)),
		term.WithClassifier(app.classifier),
		term.WithResolver(app.resolver),
		term.WithProvider(app.provider),
		term.WithTheme(app.theme),
	)

	app.log.Info("viewing %s", path)
	if err := viewer.Run(); err != nil && !errors.Is(err, term.ErrQuit) {
		return NewOperationError("view", path, err)
	}
	return nil
}

// runWatch reindents the target files in place every time they are saved,
// until ctx is cancelled.
func (app *Application) runWatch(ctx context.Context) error {
	files, err := app.collectFiles(app.opts.Paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: -watch needs at least one file", ErrUsage)
	}

	w, err := watch.New(func(ev watch.Event) {
		app.log.Info("%s changed", ev.Path)
		if _, err := app.processFile(ev.Path); err != nil {
			app.log.Error("reindent %s: %v", ev.Path, err)
		}
	})
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	for _, f := range files {
		if err := w.Add(f); err != nil {
			return NewOperationError("watch", f, err)
		}
	}

	// Bring every file up to date before waiting for changes.
	for _, f := range files {
		if _, err := app.processFile(f); err != nil {
			app.log.Error("reindent %s: %v", f, err)
		}
	}
	app.log.Info("watching %d files", len(w.WatchedFiles()))

	<-ctx.Done()
	app.log.Info("watch stopped")
	return nil
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.log
}

// Classifier returns the assembled line classifier.
func (app *Application) Classifier() *lang.Classifier {
	return app.classifier
}

// Resolver returns the assembled indent resolver.
func (app *Application) Resolver() *indent.Resolver {
	return app.resolver
}

// Docs returns the documentation table.
func (app *Application) Docs() *help.Docs {
	return app.docs
}

// newBuffer builds a buffer in the configured style, keeping the line
// ending the text already uses.
func (app *Application) newBuffer(text string) *buffer.Buffer {
	style := buffer.IndentSpaces
	if s, err := buffer.ParseIndentStyle(app.cfg.Editor.IndentStyle); err == nil {
		style = s
	}
	return buffer.NewBufferFromString(text,
		buffer.WithTabWidth(app.cfg.Editor.TabWidth),
		buffer.WithIndentStyle(style),
		buffer.WithDetectedLineEnding(text),
	)
}
