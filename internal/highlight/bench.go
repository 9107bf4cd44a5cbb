package highlight

import (
	"regexp"

	"github.com/dshills/benchedit/internal/lang"
)

// LanguageName is the registry name for BenchScript.
const LanguageName = "benchscript"

// Extensions are the file extensions BenchScript sources use.
var Extensions = []string{".bsc", ".bench"}

// BenchScriptHighlighter returns the highlighter for stock BenchScript.
func BenchScriptHighlighter() *SimpleHighlighter {
	return BenchScriptHighlighterWith(lang.DefaultCommentPrefix, nil, nil)
}

// BenchScriptHighlighterWith builds a BenchScript highlighter honoring a
// custom comment prefix and site keyword extensions.
func BenchScriptHighlighterWith(commentPrefix string, extraOpeners, extraClosers []string) *SimpleHighlighter {
	if commentPrefix == "" {
		commentPrefix = lang.DefaultCommentPrefix
	}
	h := NewSimpleHighlighter(LanguageName, Extensions)

	h.AddRule(regexp.QuoteMeta(commentPrefix)+`.*$`, TokenCommentLine)
	h.AddRule(`"(?:/[A-Za-z0-9_.\-]+)+"`, TokenDevice)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	h.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)

	h.AddKeywords(TokenKeywordControl, lang.OpenerKeywords()...)
	h.AddKeywords(TokenKeywordControl, lang.CloserKeywords()...)
	h.AddKeywords(TokenKeywordControl, lang.ControlKeywords()...)
	h.AddKeywords(TokenKeywordControl, extraOpeners...)
	h.AddKeywords(TokenKeywordControl, extraClosers...)
	h.AddKeywords(TokenKeywordDeclaration, lang.DeclKeywords()...)
	h.AddKeywords(TokenConstantLanguage, "true", "false", "high", "low", "on", "off")
	h.AddKeywords(TokenFunctionBuiltin, lang.BuiltinFunctions()...)

	return h
}
