package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/benchedit/internal/indent"
)

var (
	_ indent.Document = (*Buffer)(nil)
	_ indent.Editable = (*Buffer)(nil)
)

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantText  string
	}{
		{"empty", "", 0, ""},
		{"single line no newline", "x = 1", 1, "x = 1"},
		{"single line with newline", "x = 1\n", 1, "x = 1\n"},
		{"two lines", "a\nb\n", 2, "a\nb\n"},
		{"blank middle line", "a\n\nb", 3, "a\n\nb"},
		{"newline only", "\n", 1, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.input)
			if got := b.LineCount(); got != tt.wantCount {
				t.Errorf("LineCount() = %d, want %d", got, tt.wantCount)
			}
			if got := b.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestLineText(t *testing.T) {
	b := NewBufferFromString("alpha\nbeta\ngamma\n")

	if got := b.LineText(1); got != "beta" {
		t.Errorf("LineText(1) = %q, want %q", got, "beta")
	}
	if got := b.LineText(-1); got != "" {
		t.Errorf("LineText(-1) = %q, want empty", got)
	}
	if got := b.LineText(3); got != "" {
		t.Errorf("LineText(3) = %q, want empty", got)
	}
}

func TestLineEndingRoundTrip(t *testing.T) {
	src := "a\r\nb\r\nc\r\n"
	b := NewBufferFromString(src, WithDetectedLineEnding(src))

	if got := b.LineEnding(); got != LineEndingCRLF {
		t.Fatalf("LineEnding() = %v, want %v", got, LineEndingCRLF)
	}
	if got := b.LineText(1); got != "b" {
		t.Errorf("LineText(1) = %q, want %q", got, "b")
	}
	if got := b.Text(); got != src {
		t.Errorf("Text() = %q, want %q", got, src)
	}
}

func TestMixedLineEndingsNormalized(t *testing.T) {
	b := NewBufferFromString("a\r\nb\rc\nd", WithLF())

	if got := b.LineCount(); got != 4 {
		t.Fatalf("LineCount() = %d, want 4", got)
	}
	if got := b.Text(); got != "a\nb\nc\nd" {
		t.Errorf("Text() = %q, want %q", got, "a\nb\nc\nd")
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		name string
		text string
		want LineEnding
	}{
		{"empty", "", LineEndingLF},
		{"no endings", "abc", LineEndingLF},
		{"lf", "a\nb\n", LineEndingLF},
		{"crlf", "a\r\nb\r\n", LineEndingCRLF},
		{"cr", "a\rb\r", LineEndingCR},
		{"crlf majority", "a\r\nb\r\nc\n", LineEndingCRLF},
		{"lf majority", "a\nb\nc\r\n", LineEndingLF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLineEnding(tt.text); got != tt.want {
				t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSetLineText(t *testing.T) {
	b := NewBufferFromString("a\nb\n")

	if err := b.SetLineText(1, "beta"); err != nil {
		t.Fatalf("SetLineText() error = %v", err)
	}
	if got := b.LineText(1); got != "beta" {
		t.Errorf("LineText(1) = %q, want %q", got, "beta")
	}

	if err := b.SetLineText(5, "x"); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("SetLineText(5) error = %v, want %v", err, ErrLineOutOfRange)
	}
	if err := b.SetLineText(0, "two\nlines"); !errors.Is(err, ErrLineBreak) {
		t.Errorf("SetLineText(embedded newline) error = %v, want %v", err, ErrLineBreak)
	}
}

func TestSetLineIndentSpaces(t *testing.T) {
	b := NewBufferFromString("if a then\nx = 1\nend if\n")

	if err := b.SetLineIndent(1, 4); err != nil {
		t.Fatalf("SetLineIndent() error = %v", err)
	}
	if got := b.LineText(1); got != "    x = 1" {
		t.Errorf("LineText(1) = %q, want %q", got, "    x = 1")
	}

	// Existing leading whitespace is replaced, not stacked.
	if err := b.SetLineIndent(1, 2); err != nil {
		t.Fatalf("SetLineIndent() error = %v", err)
	}
	if got := b.LineText(1); got != "  x = 1" {
		t.Errorf("LineText(1) = %q, want %q", got, "  x = 1")
	}
}

func TestSetLineIndentTabs(t *testing.T) {
	b := NewBufferFromString("x = 1\n", WithIndentStyle(IndentTabs), WithTabWidth(4))

	if err := b.SetLineIndent(0, 6); err != nil {
		t.Fatalf("SetLineIndent() error = %v", err)
	}
	if got := b.LineText(0); got != "\t  x = 1" {
		t.Errorf("LineText(0) = %q, want %q", got, "\t  x = 1")
	}
}

func TestSetLineIndentErrors(t *testing.T) {
	b := NewBufferFromString("x\n")

	if err := b.SetLineIndent(0, -1); !errors.Is(err, ErrNegativeIndent) {
		t.Errorf("SetLineIndent(-1) error = %v, want %v", err, ErrNegativeIndent)
	}
	if err := b.SetLineIndent(9, 0); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("SetLineIndent(line 9) error = %v, want %v", err, ErrLineOutOfRange)
	}
}

func TestRevisionTracking(t *testing.T) {
	b := NewBufferFromString("  x = 1\n")
	start := b.Revision()

	// A rewrite producing identical text does not count as a change.
	if err := b.SetLineIndent(0, 2); err != nil {
		t.Fatalf("SetLineIndent() error = %v", err)
	}
	if got := b.Revision(); got != start {
		t.Errorf("Revision() after no-op = %d, want %d", got, start)
	}

	if err := b.SetLineIndent(0, 4); err != nil {
		t.Fatalf("SetLineIndent() error = %v", err)
	}
	if got := b.Revision(); got != start+1 {
		t.Errorf("Revision() after change = %d, want %d", got, start+1)
	}

	b.Reset("y = 2\n")
	if got := b.Revision(); got != start+2 {
		t.Errorf("Revision() after Reset = %d, want %d", got, start+2)
	}
	if got := b.LineText(0); got != "y = 2" {
		t.Errorf("LineText(0) after Reset = %q, want %q", got, "y = 2")
	}
}

func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("a\nb\n"))
	if err != nil {
		t.Fatalf("NewBufferFromReader() error = %v", err)
	}
	if got := b.LineCount(); got != 2 {
		t.Errorf("LineCount() = %d, want 2", got)
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		b    *Buffer
		want int
	}{
		{"empty", NewBufferFromString(""), 0},
		{"lf lines", NewBufferFromString("ab\ncd\n"), 6},
		{"no trailing newline", NewBufferFromString("ab\ncd"), 5},
		{"crlf", NewBufferFromString("ab\r\ncd\r\n", WithCRLF()), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseIndentStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    IndentStyle
		wantErr bool
	}{
		{"spaces", IndentSpaces, false},
		{"tabs", IndentTabs, false},
		{"Tab", IndentTabs, false},
		{"", IndentSpaces, false},
		{"elastic", IndentSpaces, true},
	}

	for _, tt := range tests {
		got, err := ParseIndentStyle(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseIndentStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseIndentStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
