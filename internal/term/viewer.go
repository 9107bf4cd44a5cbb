// Package term renders BenchScript in a read-only terminal pane. The
// viewer draws highlighted lines over a Backend abstraction and keeps a
// status line in step with the indentation engine, so the resolved
// indentation of any line can be inspected without touching the file.
package term

import (
	"fmt"

	"github.com/dshills/benchedit/internal/engine/buffer"
	"github.com/dshills/benchedit/internal/highlight"
	"github.com/dshills/benchedit/internal/indent"
	"github.com/dshills/benchedit/internal/lang"
)

// Viewer is a read-only pane over a single buffer. Movement keys change
// the cursor line; the status line reports the cursor line's structural
// role and resolved indentation.
type Viewer struct {
	backend    Backend
	buf        *buffer.Buffer
	classifier *lang.Classifier
	resolver   *indent.Resolver
	provider   *highlight.Provider
	theme      *highlight.Theme
	name       string

	line int // cursor line, zero-based
	top  int // first visible buffer line

	width  int
	height int
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithName sets the file name shown in the status line.
func WithName(name string) ViewerOption {
	return func(v *Viewer) {
		if name != "" {
			v.name = name
		}
	}
}

// WithClassifier sets the classifier used for role reporting.
func WithClassifier(c *lang.Classifier) ViewerOption {
	return func(v *Viewer) {
		if c != nil {
			v.classifier = c
		}
	}
}

// WithResolver sets the resolver used for indent reporting.
func WithResolver(r *indent.Resolver) ViewerOption {
	return func(v *Viewer) {
		if r != nil {
			v.resolver = r
		}
	}
}

// WithProvider sets the highlight provider used for rendering.
func WithProvider(p *highlight.Provider) ViewerOption {
	return func(v *Viewer) {
		if p != nil {
			v.provider = p
		}
	}
}

// WithTheme sets the color theme used for rendering.
func WithTheme(t *highlight.Theme) ViewerOption {
	return func(v *Viewer) {
		if t != nil {
			v.theme = t
		}
	}
}

// NewViewer creates a viewer for buf on the given backend. Unset
// collaborators fall back to the stock BenchScript classifier, resolver,
// highlighter, and theme.
func NewViewer(backend Backend, buf *buffer.Buffer, opts ...ViewerOption) *Viewer {
	v := &Viewer{
		backend: backend,
		buf:     buf,
		name:    "untitled",
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.classifier == nil {
		v.classifier = lang.Default()
	}
	if v.resolver == nil {
		v.resolver = indent.NewResolver(v.classifier, 0)
	}
	if v.provider == nil {
		v.provider, _ = highlight.NewProvider(highlight.BenchScriptHighlighter(), 0)
	}
	if v.theme == nil {
		v.theme = highlight.DefaultTheme()
	}
	return v
}

// Line returns the zero-based cursor line.
func (v *Viewer) Line() int {
	return v.line
}

// Top returns the first visible buffer line.
func (v *Viewer) Top() int {
	return v.top
}

// Run drives the viewer until the user quits. It returns ErrQuit on a
// clean quit and the backend's error otherwise.
func (v *Viewer) Run() error {
	if err := v.backend.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer v.backend.Shutdown()

	v.Render()
	for {
		ev := v.backend.PollEvent()
		if err := v.HandleEvent(ev); err != nil {
			return err
		}
		v.Render()
	}
}

// HandleEvent applies a single event to the viewer state. It returns
// ErrQuit when the event asks to leave the viewer.
func (v *Viewer) HandleEvent(ev Event) error {
	switch ev.Type {
	case EventKey:
		return v.handleKey(ev)
	case EventResize:
		v.width = ev.Width
		v.height = ev.Height
		v.scrollIntoView()
	}
	return nil
}

func (v *Viewer) handleKey(ev Event) error {
	switch ev.Key {
	case KeyEscape, KeyCtrlC:
		return ErrQuit
	case KeyUp:
		v.moveTo(v.line - 1)
	case KeyDown:
		v.moveTo(v.line + 1)
	case KeyPageUp:
		v.moveTo(v.line - v.pageSize())
	case KeyPageDown:
		v.moveTo(v.line + v.pageSize())
	case KeyHome:
		v.moveTo(0)
	case KeyEnd:
		v.moveTo(v.buf.LineCount() - 1)
	case KeyRune:
		switch ev.Rune {
		case 'q':
			return ErrQuit
		case 'k':
			v.moveTo(v.line - 1)
		case 'j':
			v.moveTo(v.line + 1)
		case 'g':
			v.moveTo(0)
		case 'G':
			v.moveTo(v.buf.LineCount() - 1)
		}
	}
	return nil
}

// moveTo moves the cursor to the given line, clamped to the buffer.
func (v *Viewer) moveTo(line int) {
	last := v.buf.LineCount() - 1
	if last < 0 {
		v.line = 0
		v.top = 0
		return
	}
	if line < 0 {
		line = 0
	} else if line > last {
		line = last
	}
	v.line = line
	v.scrollIntoView()
}

func (v *Viewer) scrollIntoView() {
	h := v.textHeight()
	if h < 1 {
		v.top = v.line
		return
	}
	if v.line < v.top {
		v.top = v.line
	}
	if v.line >= v.top+h {
		v.top = v.line - h + 1
	}
}

// textHeight is the number of rows available for buffer text. The bottom
// row is reserved for the status line.
func (v *Viewer) textHeight() int {
	if v.height < 1 {
		return 0
	}
	return v.height - 1
}

// pageSize is how far PgUp/PgDn move.
func (v *Viewer) pageSize() int {
	if h := v.textHeight(); h > 1 {
		return h
	}
	return 1
}

// Render draws the visible lines and the status line.
func (v *Viewer) Render() {
	v.width, v.height = v.backend.Size()
	v.backend.Clear()

	h := v.textHeight()
	for row := 0; row < h; row++ {
		line := v.top + row
		if line >= v.buf.LineCount() {
			break
		}
		v.renderLine(row, line)
	}
	v.renderStatus()
	v.backend.ShowCursor(0, v.line-v.top)
	v.backend.Show()
}

// renderLine draws one buffer line at the given screen row. Token
// columns are byte offsets, so styles are looked up by byte index while
// the screen position advances per rune.
func (v *Viewer) renderLine(row, line int) {
	text := v.buf.LineText(line)
	tokens := v.provider.HighlightLine(text)

	base := highlight.Style{Foreground: v.theme.Foreground, Background: highlight.ColorDefault}
	styles := make([]highlight.Style, len(text))
	for i := range styles {
		styles[i] = base
	}
	for _, tok := range tokens {
		style := v.theme.StyleForToken(tok.Type)
		for i := int(tok.StartCol); i < int(tok.EndCol) && i < len(text); i++ {
			styles[i] = style
		}
	}

	tabWidth := v.resolver.TabWidth()
	x := 0
	for i, r := range text {
		if x >= v.width {
			break
		}
		if r == '\t' {
			next := (x/tabWidth + 1) * tabWidth
			for ; x < next && x < v.width; x++ {
				v.backend.SetCell(x, row, Cell{Rune: ' ', Style: styles[i]})
			}
			continue
		}
		v.backend.SetCell(x, row, Cell{Rune: r, Style: styles[i]})
		x++
	}
}

// renderStatus draws the bottom status line: file name, cursor position,
// and the cursor line's role and resolved indentation.
func (v *Viewer) renderStatus() {
	if v.height < 1 {
		return
	}
	row := v.height - 1

	total := v.buf.LineCount()
	cur := v.line + 1
	if total == 0 {
		cur = 0
	}
	role := v.classifier.Classify(v.buf.LineText(v.line))
	want := v.resolver.Resolve(v.buf, v.line)

	status := fmt.Sprintf("%s · %d/%d · role=%s · indent=%d",
		v.name, cur, total, role, want)

	style := highlight.DefaultStyle().Reverse()
	x := 0
	for _, r := range status {
		if x >= v.width {
			break
		}
		v.backend.SetCell(x, row, Cell{Rune: r, Style: style})
		x++
	}
	for ; x < v.width; x++ {
		v.backend.SetCell(x, row, Cell{Rune: ' ', Style: style})
	}
}
