package indent

// ReindentAll rewrites the indentation of every content line, top to
// bottom. Because lines are rewritten in place as the walk proceeds, each
// line resolves against predecessors that already carry their final
// indentation, so one pass normalizes the whole document. Blank and
// comment-only lines keep their text. Returns the number of lines whose
// text changed.
func (r *Resolver) ReindentAll(doc Editable) (int, error) {
	changed := 0
	for i := 0; i < doc.LineCount(); i++ {
		text := doc.LineText(i)
		if r.classifier.IsBlankOrComment(text) {
			continue
		}
		want := r.Resolve(doc, i)
		if err := doc.SetLineIndent(i, want); err != nil {
			return changed, err
		}
		if doc.LineText(i) != text {
			changed++
		}
	}
	return changed, nil
}
