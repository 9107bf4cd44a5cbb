package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testConfig writes a config file into a temp dir and returns its path.
func testConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// quietConfig keeps tests away from any plugins installed on the host.
const quietConfig = "[plugin]\nenabled = false\n"

// newTestApp builds an application with hermetic defaults: an isolated
// config file, disabled plugins, and discarded log output.
func newTestApp(t *testing.T, opts Options) *Application {
	t.Helper()
	if opts.ConfigPath == "" {
		opts.ConfigPath = testConfig(t, quietConfig)
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(app.Shutdown)
	return app
}

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readSource(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

const messySource = "program demo\ndeclare numeric x\nx = 1\nend\n"
const cleanSource = "program demo\n    declare numeric x\n    x = 1\nend\n"

func TestNewDefaults(t *testing.T) {
	app := newTestApp(t, Options{})

	if got := app.Config().Editor.TabWidth; got != 4 {
		t.Errorf("TabWidth = %d, want 4", got)
	}
	if app.Classifier() == nil {
		t.Error("Classifier() = nil")
	}
	if got := app.Resolver().TabWidth(); got != 4 {
		t.Errorf("Resolver().TabWidth() = %d, want 4", got)
	}
	if app.Docs().Len() == 0 {
		t.Error("expected builtin docs to be loaded")
	}
	if app.Logger() == nil {
		t.Error("Logger() = nil")
	}
}

func TestAppStdinFilter(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, Options{
		Stdin:  strings.NewReader(messySource),
		Stdout: &out,
	})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != cleanSource {
		t.Errorf("output = %q, want %q", got, cleanSource)
	}
}

func TestAppStdinWriteRejected(t *testing.T) {
	app := newTestApp(t, Options{
		Write: true,
		Stdin: strings.NewReader(messySource),
	})

	err := app.Run(context.Background())
	if !errors.Is(err, ErrUsage) {
		t.Errorf("Run() error = %v, want ErrUsage", err)
	}
}

func TestAppFileWrite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "demo.bsc")
	writeSource(t, file, messySource)

	var out bytes.Buffer
	app := newTestApp(t, Options{
		Write:  true,
		Paths:  []string{file},
		Stdout: &out,
	})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := readSource(t, file); got != cleanSource {
		t.Errorf("file = %q, want %q", got, cleanSource)
	}
	if out.Len() != 0 {
		t.Errorf("expected no stdout output in write mode, got %q", out.String())
	}
}

func TestAppFileWriteCleanUnchanged(t *testing.T) {
	file := filepath.Join(t.TempDir(), "demo.bsc")
	writeSource(t, file, cleanSource)

	app := newTestApp(t, Options{
		Write: true,
		Paths: []string{file},
	})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := readSource(t, file); got != cleanSource {
		t.Errorf("file = %q, want %q", got, cleanSource)
	}
}

func TestAppListMode(t *testing.T) {
	dir := t.TempDir()
	messy := filepath.Join(dir, "messy.bsc")
	clean := filepath.Join(dir, "clean.bsc")
	writeSource(t, messy, messySource)
	writeSource(t, clean, cleanSource)

	var out bytes.Buffer
	app := newTestApp(t, Options{
		List:   true,
		Paths:  []string{messy, clean},
		Stdout: &out,
	})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := out.String(), messy+"\n"; got != want {
		t.Errorf("list output = %q, want %q", got, want)
	}
	if got := readSource(t, messy); got != messySource {
		t.Error("list mode must not rewrite files")
	}
}

func TestAppCheckMode(t *testing.T) {
	t.Run("differences", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "demo.bsc")
		writeSource(t, file, messySource)

		var out bytes.Buffer
		app := newTestApp(t, Options{
			Check:  true,
			Paths:  []string{file},
			Stdout: &out,
		})

		err := app.Run(context.Background())
		if !errors.Is(err, ErrDifferences) {
			t.Errorf("Run() error = %v, want ErrDifferences", err)
		}
		if out.Len() != 0 {
			t.Errorf("expected silent check, got %q", out.String())
		}
		if got := readSource(t, file); got != messySource {
			t.Error("check mode must not rewrite files")
		}
	})

	t.Run("clean", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "demo.bsc")
		writeSource(t, file, cleanSource)

		app := newTestApp(t, Options{
			Check: true,
			Paths: []string{file},
		})

		if err := app.Run(context.Background()); err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	})
}

func TestAppCheckModeStdin(t *testing.T) {
	app := newTestApp(t, Options{
		Check: true,
		Stdin: strings.NewReader(messySource),
	})

	err := app.Run(context.Background())
	if !errors.Is(err, ErrDifferences) {
		t.Errorf("Run() error = %v, want ErrDifferences", err)
	}
}

func TestAppDirectoryWalk(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, filepath.Join(dir, "a.bsc"), messySource)
	writeSource(t, filepath.Join(dir, "b.bench"), messySource)
	writeSource(t, filepath.Join(dir, "notes.txt"), messySource)
	hidden := filepath.Join(dir, ".cache")
	if err := os.Mkdir(hidden, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeSource(t, filepath.Join(hidden, "c.bsc"), messySource)

	var out bytes.Buffer
	app := newTestApp(t, Options{
		List:   true,
		Paths:  []string{dir},
		Stdout: &out,
	})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "a.bsc") {
		t.Errorf("expected a.bsc in output, got %q", got)
	}
	if !strings.Contains(got, "b.bench") {
		t.Errorf("expected b.bench in output, got %q", got)
	}
	if strings.Contains(got, "notes.txt") {
		t.Errorf("expected notes.txt to be skipped, got %q", got)
	}
	if strings.Contains(got, ".cache") {
		t.Errorf("expected hidden directory to be skipped, got %q", got)
	}
}

func TestAppExplicitFileAnyExtension(t *testing.T) {
	// Files named on the command line are processed whatever their
	// extension, like directories are filtered but arguments are not.
	file := filepath.Join(t.TempDir(), "notes.txt")
	writeSource(t, file, messySource)

	var out bytes.Buffer
	app := newTestApp(t, Options{
		List:   true,
		Paths:  []string{file},
		Stdout: &out,
	})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := out.String(), file+"\n"; got != want {
		t.Errorf("list output = %q, want %q", got, want)
	}
}

func TestAppMissingFile(t *testing.T) {
	app := newTestApp(t, Options{
		Paths: []string{filepath.Join(t.TempDir(), "absent.bsc")},
	})

	err := app.Run(context.Background())
	if err == nil {
		t.Fatal("Run() error = nil, want error for missing file")
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Errorf("Run() error = %T, want *OperationError", err)
	}
}

func TestAppDocLookup(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, Options{
		Doc:    "measure",
		Stdout: &out,
	})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); !strings.Contains(got, "measure(CHANNEL)") {
		t.Errorf("doc output = %q, want signature for measure", got)
	}
}

func TestAppDocNotFound(t *testing.T) {
	app := newTestApp(t, Options{Doc: "no-such-word"})

	err := app.Run(context.Background())
	if !errors.Is(err, ErrDocNotFound) {
		t.Errorf("Run() error = %v, want ErrDocNotFound", err)
	}
}

func TestAppViewNeedsOnePath(t *testing.T) {
	app := newTestApp(t, Options{View: true})

	err := app.Run(context.Background())
	if !errors.Is(err, ErrUsage) {
		t.Errorf("Run() error = %v, want ErrUsage", err)
	}
}

func TestAppTabWidthOverride(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, Options{
		TabWidth: 2,
		Stdin:    strings.NewReader(messySource),
		Stdout:   &out,
	})

	want := "program demo\n  declare numeric x\n  x = 1\nend\n"
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAppConfigFileSettings(t *testing.T) {
	cfgPath := testConfig(t, quietConfig+"\n[editor]\ntab_width = 8\n")

	var out bytes.Buffer
	app := newTestApp(t, Options{
		ConfigPath: cfgPath,
		Stdin:      strings.NewReader(messySource),
		Stdout:     &out,
	})

	want := "program demo\n        declare numeric x\n        x = 1\nend\n"
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAppIndentStyleTabs(t *testing.T) {
	cfgPath := testConfig(t, quietConfig+"\n[editor]\nindent_style = \"tabs\"\n")

	var out bytes.Buffer
	app := newTestApp(t, Options{
		ConfigPath: cfgPath,
		Stdin:      strings.NewReader(messySource),
		Stdout:     &out,
	})

	want := "program demo\n\tdeclare numeric x\n\tx = 1\nend\n"
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAppTrimTrailingSpace(t *testing.T) {
	cfgPath := testConfig(t, quietConfig+"\n[editor]\ntrim_trailing_space = true\n")

	var out bytes.Buffer
	app := newTestApp(t, Options{
		ConfigPath: cfgPath,
		Stdin:      strings.NewReader("program demo   \nx = 1\t\nend\n"),
		Stdout:     &out,
	})

	want := "program demo\n    x = 1\nend\n"
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAppConfigError(t *testing.T) {
	t.Run("bad toml", func(t *testing.T) {
		cfgPath := testConfig(t, "tab_width = [broken\n")
		_, err := New(Options{ConfigPath: cfgPath, Stderr: io.Discard})
		if err == nil {
			t.Fatal("New() error = nil, want parse error")
		}
	})

	t.Run("bad value", func(t *testing.T) {
		cfgPath := testConfig(t, "[editor]\ntab_width = 99\n")
		_, err := New(Options{ConfigPath: cfgPath, Stderr: io.Discard})
		if err == nil {
			t.Fatal("New() error = nil, want validation error")
		}
	})

	t.Run("bad flag tab width", func(t *testing.T) {
		cfgPath := testConfig(t, quietConfig)
		_, err := New(Options{ConfigPath: cfgPath, TabWidth: 99, Stderr: io.Discard})
		if err == nil {
			t.Fatal("New() error = nil, want validation error")
		}
	})
}

func TestAppPluginContrib(t *testing.T) {
	pluginDir := t.TempDir()
	script := `
be.opener("workflow")
be.closer("done")
be.doc("workflow", "workflow NAME", "Opens a named workflow block.")
be.set("tab_width", "2")
`
	writeSource(t, filepath.Join(pluginDir, "init.lua"), script)
	cfgPath := testConfig(t, "[plugin]\nenabled = true\ndir = \""+pluginDir+"\"\n")

	var out bytes.Buffer
	app := newTestApp(t, Options{
		ConfigPath: cfgPath,
		Stdin:      strings.NewReader("workflow w\nx = 1\ndone\n"),
		Stdout:     &out,
	})

	if got := app.Config().Editor.TabWidth; got != 2 {
		t.Errorf("plugin tab_width not applied: TabWidth = %d, want 2", got)
	}
	if _, ok := app.Docs().Lookup("workflow"); !ok {
		t.Error("plugin doc entry not registered")
	}

	want := "workflow w\n  x = 1\ndone\n"
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAppPluginBadSettingIgnored(t *testing.T) {
	pluginDir := t.TempDir()
	writeSource(t, filepath.Join(pluginDir, "init.lua"), `be.set("tab_width", "99")`)
	cfgPath := testConfig(t, "[plugin]\nenabled = true\ndir = \""+pluginDir+"\"\n")

	app := newTestApp(t, Options{ConfigPath: cfgPath})

	if got := app.Config().Editor.TabWidth; got != 4 {
		t.Errorf("out of range plugin tab_width should be skipped: TabWidth = %d, want 4", got)
	}
}

func TestAppWatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "demo.bsc")
	writeSource(t, file, messySource)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := newTestApp(t, Options{
		Watch: true,
		Paths: []string{file},
	})

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	// The startup pass rewrites files that are already out of shape.
	waitForContent(t, file, cleanSource)

	// A later save should be picked up and rewritten too.
	writeSource(t, file, messySource)
	waitForContent(t, file, cleanSource)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for watch shutdown")
	}
}

func TestAppWatchNeedsFiles(t *testing.T) {
	app := newTestApp(t, Options{Watch: true, Paths: []string{t.TempDir()}})

	err := app.Run(context.Background())
	if !errors.Is(err, ErrUsage) {
		t.Errorf("Run() error = %v, want ErrUsage for empty watch set", err)
	}
}

func waitForContent(t *testing.T, path, want string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		if readSource(t, path) == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("timeout: %s = %q, want %q", path, readSource(t, path), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestIsBenchFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"run.bsc", true},
		{"RUN.BSC", true},
		{"suite.bench", true},
		{"notes.txt", false},
		{"noext", false},
		{"dir/nested.bsc", true},
	}

	for _, tt := range tests {
		if got := isBenchFile(tt.path); got != tt.want {
			t.Errorf("isBenchFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
