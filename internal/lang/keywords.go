package lang

import "regexp"

// Core keyword tables for BenchScript. The classifier, the highlighter, and
// the builtin help entries all read from these so the three stay in sync.

// openerKeywords open a block when they begin a line, regardless of what
// follows on the line.
var openerKeywords = []string{"program", "function", "for", "loop", "handle", "exercise"}

// closerKeywords close a block when they begin a line.
var closerKeywords = []string{"end", "next"}

// controlKeywords appear inside statements and clause headers.
var controlKeywords = []string{"if", "then", "else", "arm", "readout", "device", "to", "step", "return"}

// declKeywords introduce declarations and name the declarable types.
var declKeywords = []string{"declare", "numeric", "string", "boolean"}

// builtinFunctions are the callable bench primitives.
var builtinFunctions = []string{
	"measure", "setline", "readline", "trigger", "delay",
	"abs", "min", "max", "sqrt", "round", "format", "len",
}

// OpenerKeywords returns the block-opening keywords.
func OpenerKeywords() []string { return copyStrings(openerKeywords) }

// CloserKeywords returns the block-closing keywords.
func CloserKeywords() []string { return copyStrings(closerKeywords) }

// ControlKeywords returns the flow-control keywords.
func ControlKeywords() []string { return copyStrings(controlKeywords) }

// DeclKeywords returns the declaration keywords and type names.
func DeclKeywords() []string { return copyStrings(declKeywords) }

// BuiltinFunctions returns the builtin function names.
func BuiltinFunctions() []string { return copyStrings(builtinFunctions) }

func copyStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// keywordShape constrains contributed keywords to bare identifiers.
var keywordShape = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidKeyword reports whether word can serve as a contributed block
// keyword: a letter followed by letters, digits, or underscores.
func ValidKeyword(word string) bool {
	return keywordShape.MatchString(word)
}
