package indent

// DefaultTabWidth is the reference indentation step in columns.
const DefaultTabWidth = 4

// Width returns the column width of the line's leading whitespace. A space
// advances one column; a tab advances to the next multiple of tabWidth.
// Non-positive tabWidth falls back to DefaultTabWidth.
func Width(line string, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	w := 0
	for _, r := range line {
		switch r {
		case ' ':
			w++
		case '\t':
			w += tabWidth - w%tabWidth
		default:
			return w
		}
	}
	return w
}
