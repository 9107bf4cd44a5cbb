// Package highlight provides syntax highlighting for BenchScript sources.
package highlight

// TokenType represents the semantic type of a token.
type TokenType uint16

// Token types produced by the BenchScript highlighter.
const (
	TokenNone TokenType = iota
	TokenCommentLine
	TokenString
	TokenDevice
	TokenNumber
	TokenKeywordControl
	TokenKeywordDeclaration
	TokenConstantLanguage
	TokenFunctionBuiltin
	TokenIdentifier

	// Sentinel for iteration
	tokenTypeCount
)

// tokenTypeNames maps token types to their string names.
var tokenTypeNames = []string{
	TokenNone:               "none",
	TokenCommentLine:        "comment.line",
	TokenString:             "string",
	TokenDevice:             "string.device",
	TokenNumber:             "number",
	TokenKeywordControl:     "keyword.control",
	TokenKeywordDeclaration: "keyword.declaration",
	TokenConstantLanguage:   "constant.language",
	TokenFunctionBuiltin:    "function.builtin",
	TokenIdentifier:         "identifier",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// IsKeyword returns true for keyword token types.
func (t TokenType) IsKeyword() bool {
	return t == TokenKeywordControl || t == TokenKeywordDeclaration
}

// Token represents a highlighted span on one line.
type Token struct {
	// Type is the semantic type of the token.
	Type TokenType

	// StartCol is the starting byte column (0-indexed).
	StartCol uint32

	// EndCol is the ending byte column (exclusive).
	EndCol uint32
}

// Len returns the length of the token.
func (t Token) Len() uint32 {
	return t.EndCol - t.StartCol
}

// Contains returns true if the column is within the token.
func (t Token) Contains(col uint32) bool {
	return col >= t.StartCol && col < t.EndCol
}
