package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/benchedit/internal/engine/buffer"
	"github.com/dshills/benchedit/internal/highlight"
)

// stdinName is reported in list output when reading standard input.
const stdinName = "<standard input>"

// runFilter reindents the given paths, or standard input when there are
// none. Per-file failures are collected so one unreadable file does not
// stop the rest.
func (app *Application) runFilter(ctx context.Context) error {
	if len(app.opts.Paths) == 0 {
		return app.processStdin()
	}

	files, err := app.collectFiles(app.opts.Paths)
	if err != nil {
		return err
	}

	var (
		errs        ErrorList
		differences bool
	)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		changed, err := app.processFile(path)
		if err != nil {
			app.log.Error("reindent %s: %v", path, err)
			errs.Add(NewOperationError("reindent", path, err))
			continue
		}
		if changed {
			differences = true
		}
	}
	if err := errs.AsError(); err != nil {
		return err
	}
	if app.opts.Check && differences {
		return ErrDifferences
	}
	return nil
}

// processStdin runs the filter over standard input.
func (app *Application) processStdin() error {
	if app.writeMode {
		return fmt.Errorf("%w: cannot use -w with standard input", ErrUsage)
	}
	data, err := io.ReadAll(app.stdin)
	if err != nil {
		return NewOperationError("reindent", stdinName, err)
	}

	buf := app.newBuffer(string(data))
	changed, err := app.reindent(buf)
	if err != nil {
		return NewOperationError("reindent", stdinName, err)
	}

	switch {
	case app.opts.List:
		if changed {
			fmt.Fprintln(app.stdout, stdinName)
		}
	case app.opts.Check:
		if changed {
			return ErrDifferences
		}
	default:
		if _, err := io.WriteString(app.stdout, buf.Text()); err != nil {
			return NewOperationError("reindent", stdinName, err)
		}
	}
	return nil
}

// processFile reindents a single file and reports whether anything
// changed. What happens to the result depends on the selected mode:
// rewrite in place, list the name, stay silent for check, or print the
// text to stdout.
func (app *Application) processFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	buf := app.newBuffer(string(data))
	changed, err := app.reindent(buf)
	if err != nil {
		return false, err
	}

	switch {
	case app.writeMode:
		if changed {
			perm := fs.FileMode(0o644)
			if info, err := os.Stat(path); err == nil {
				perm = info.Mode().Perm()
			}
			if err := os.WriteFile(path, []byte(buf.Text()), perm); err != nil {
				return changed, err
			}
			app.log.Info("rewrote %s", path)
		}
	case app.opts.List:
		if changed {
			fmt.Fprintln(app.stdout, path)
		}
	case app.opts.Check:
		// Differences surface through the exit status alone.
	default:
		if _, err := io.WriteString(app.stdout, buf.Text()); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// reindent normalizes indentation across buf and reports whether any
// line changed.
func (app *Application) reindent(buf *buffer.Buffer) (bool, error) {
	n, err := app.resolver.ReindentAll(buf)
	if err != nil {
		return false, err
	}
	changed := n > 0
	if app.cfg.Editor.TrimTrailingSpace {
		trimmed, err := trimTrailing(buf)
		if err != nil {
			return changed, err
		}
		changed = changed || trimmed
	}
	return changed, nil
}

// trimTrailing strips trailing blanks from every line of buf.
func trimTrailing(buf *buffer.Buffer) (bool, error) {
	changed := false
	for i := 0; i < buf.LineCount(); i++ {
		text := buf.LineText(i)
		trimmed := strings.TrimRight(text, " \t")
		if trimmed == text {
			continue
		}
		if err := buf.SetLineText(i, trimmed); err != nil {
			return changed, err
		}
		changed = true
	}
	return changed, nil
}

// collectFiles expands paths into the list of files to process.
// Explicitly named files are always included; directories are walked
// for BenchScript sources, skipping hidden subdirectories.
func (app *Application) collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, NewOperationError("reindent", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != path && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if isBenchFile(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, NewOperationError("reindent", path, err)
		}
	}
	return files, nil
}

// isBenchFile reports whether path has a BenchScript extension.
func isBenchFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range highlight.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
