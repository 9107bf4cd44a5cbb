package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrNegativeIndent = errors.New("negative indent width")
	ErrLineBreak      = errors.New("text contains a line break")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// IndentStyle selects how SetLineIndent renders leading whitespace.
type IndentStyle uint8

const (
	// IndentSpaces renders indentation as spaces only.
	IndentSpaces IndentStyle = iota
	// IndentTabs renders whole tab stops as tabs plus a space remainder.
	IndentTabs
)

// String returns the string representation of the indent style.
func (s IndentStyle) String() string {
	if s == IndentTabs {
		return "tabs"
	}
	return "spaces"
}

// ParseIndentStyle parses "spaces" or "tabs".
func ParseIndentStyle(s string) (IndentStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "spaces", "space":
		return IndentSpaces, nil
	case "tabs", "tab":
		return IndentTabs, nil
	default:
		return IndentSpaces, errors.New("unknown indent style: " + s)
	}
}

// Buffer is a line-addressed text store. Content is held as lines without
// their endings; the configured LineEnding is reapplied on output. All
// methods are safe for concurrent use.
type Buffer struct {
	mu           sync.RWMutex
	lines        []string
	finalNewline bool
	lineEnding   LineEnding
	tabWidth     int
	indentStyle  IndentStyle
	revision     atomic.Int64
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lineEnding:  LineEndingLF,
		tabWidth:    4,
		indentStyle: IndentSpaces,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content. Mixed line
// endings are accepted; output uses the buffer's configured style.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.load(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read everything first: CRLF sequences may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// load splits content into ending-free lines. A trailing line ending marks
// the last line as terminated rather than adding an empty line.
func (b *Buffer) load(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	if s == "" {
		b.lines = nil
		b.finalNewline = false
		return
	}
	b.finalNewline = strings.HasSuffix(s, "\n")
	if b.finalNewline {
		s = s[:len(s)-1]
	}
	b.lines = strings.Split(s, "\n")
}

// Read Operations

// Text returns the full buffer content with the configured line endings.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	seq := b.lineEnding.Sequence()
	out := strings.Join(b.lines, seq)
	if b.finalNewline {
		out += seq
	}
	return out
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of the zero-based line without its ending.
// Out-of-range lines return the empty string.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// Len returns the byte length of the buffer content as Text would render it.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, l := range b.lines {
		n += len(l)
	}
	breaks := len(b.lines) - 1
	if b.finalNewline {
		breaks++
	}
	if breaks > 0 {
		n += breaks * len(b.lineEnding.Sequence())
	}
	return n
}

// Revision returns the buffer's mutation counter. It increases on every
// content change.
func (b *Buffer) Revision() int64 {
	return b.revision.Load()
}

// LineEnding returns the buffer's output line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// TabWidth returns the buffer's tab width in columns.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// IndentStyle returns the buffer's indent rendering style.
func (b *Buffer) IndentStyle() IndentStyle {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.indentStyle
}

// Write Operations

// SetLineText replaces the text of the zero-based line. The text must not
// contain line breaks.
func (b *Buffer) SetLineText(line int, text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return ErrLineBreak
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if line < 0 || line >= len(b.lines) {
		return ErrLineOutOfRange
	}
	if b.lines[line] == text {
		return nil
	}
	b.lines[line] = text
	b.revision.Add(1)
	return nil
}

// SetLineIndent replaces the line's leading whitespace with an indentation
// of width columns, rendered per the buffer's indent style.
func (b *Buffer) SetLineIndent(line, width int) error {
	if width < 0 {
		return ErrNegativeIndent
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if line < 0 || line >= len(b.lines) {
		return ErrLineOutOfRange
	}

	body := strings.TrimLeft(b.lines[line], " \t")
	text := b.renderIndent(width) + body
	if b.lines[line] == text {
		return nil
	}
	b.lines[line] = text
	b.revision.Add(1)
	return nil
}

// renderIndent builds the leading whitespace for width columns.
func (b *Buffer) renderIndent(width int) string {
	if width <= 0 {
		return ""
	}
	if b.indentStyle == IndentTabs && b.tabWidth > 0 {
		return strings.Repeat("\t", width/b.tabWidth) + strings.Repeat(" ", width%b.tabWidth)
	}
	return strings.Repeat(" ", width)
}

// Reset replaces the whole content, keeping the buffer's configuration.
func (b *Buffer) Reset(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.load(text)
	b.revision.Add(1)
}
