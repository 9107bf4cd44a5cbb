// Package indent computes the indentation of BenchScript lines from the
// structural role of the line and of its nearest preceding content line.
// The resolver is stateless: every call re-derives its answer from the
// document, so it can never drift out of sync with edits.
package indent

import "github.com/dshills/benchedit/internal/lang"

// Document is the read surface the resolver walks.
type Document interface {
	// LineCount returns the number of lines in the document.
	LineCount() int
	// LineText returns the text of the zero-based line without its
	// line ending.
	LineText(line int) string
}

// Editable extends Document with indentation rewriting.
type Editable interface {
	Document
	// SetLineIndent replaces the line's leading whitespace with an
	// indentation of width columns.
	SetLineIndent(line, width int) error
}

// Resolver computes line indentation against a classifier and a tab width.
// It holds no document state and is safe for concurrent use.
type Resolver struct {
	classifier *lang.Classifier
	tabWidth   int
}

// NewResolver returns a resolver over the given classifier. A nil
// classifier selects lang.Default; a non-positive tabWidth selects
// DefaultTabWidth.
func NewResolver(c *lang.Classifier, tabWidth int) *Resolver {
	if c == nil {
		c = lang.Default()
	}
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &Resolver{classifier: c, tabWidth: tabWidth}
}

// TabWidth returns the resolver's indentation step in columns.
func (r *Resolver) TabWidth() int {
	return r.tabWidth
}

// Resolve returns the indentation, in columns, the addressed line should
// have. The reference is the nearest preceding line that is neither blank
// nor comment-only; its ACTUAL leading whitespace anchors the result.
// Out-of-range lines and lines with no reference resolve to 0. Resolve
// never fails, whatever the document contains.
func (r *Resolver) Resolve(doc Document, line int) int {
	if doc == nil || line < 0 || line >= doc.LineCount() {
		return 0
	}
	role := r.classifier.Classify(doc.LineText(line))

	ref := -1
	for i := line - 1; i >= 0; i-- {
		if !r.classifier.IsBlankOrComment(doc.LineText(i)) {
			ref = i
			break
		}
	}
	if ref < 0 {
		return 0
	}
	refText := doc.LineText(ref)
	refRole := r.classifier.Classify(refText)
	refIndent := Width(refText, r.tabWidth)

	// Branch order decides ties; the first matching branch wins.
	var want int
	switch {
	case refRole == lang.RoleStartEnd && (role == lang.RoleStartEnd || role == lang.RoleEnd):
		// Chained else arms align with each other, and a closing end
		// aligns with the arm it terminates.
		want = refIndent
	case role == lang.RoleEnd || role == lang.RoleStartEnd:
		if refRole == lang.RoleStart {
			// Empty block: the closer stays at the opener's column.
			want = refIndent
		} else {
			want = refIndent - r.tabWidth
		}
	case refRole == lang.RoleStart || refRole == lang.RoleStartEnd:
		want = refIndent + r.tabWidth
	default:
		want = refIndent
	}
	if want < 0 {
		want = 0
	}
	return want
}
