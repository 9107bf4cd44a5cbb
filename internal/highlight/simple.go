package highlight

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Rule defines a highlighting rule.
type Rule struct {
	// Pattern is the regex pattern to match.
	Pattern *regexp.Regexp

	// TokenType is the type to assign to matches.
	TokenType TokenType
}

// SimpleHighlighter is a regex-based syntax highlighter. Rules are applied
// in the order added; earlier rules claim their spans and later rules skip
// anything already claimed. Keyword lookup ignores case.
type SimpleHighlighter struct {
	language   string
	extensions []string
	rules      []Rule
	keywords   map[string]TokenType
}

// NewSimpleHighlighter creates a new highlighter for the named language.
func NewSimpleHighlighter(language string, extensions []string) *SimpleHighlighter {
	return &SimpleHighlighter{
		language:   language,
		extensions: extensions,
		keywords:   make(map[string]TokenType),
	}
}

// AddRule adds a highlighting rule.
func (h *SimpleHighlighter) AddRule(pattern string, tokenType TokenType) *SimpleHighlighter {
	h.rules = append(h.rules, Rule{
		Pattern:   regexp.MustCompile(pattern),
		TokenType: tokenType,
	})
	return h
}

// AddKeywords adds keywords with a specific token type.
func (h *SimpleHighlighter) AddKeywords(tokenType TokenType, keywords ...string) *SimpleHighlighter {
	for _, kw := range keywords {
		h.keywords[strings.ToLower(kw)] = tokenType
	}
	return h
}

// Language returns the language name.
func (h *SimpleHighlighter) Language() string {
	return h.language
}

// FileExtensions returns the supported file extensions.
func (h *SimpleHighlighter) FileExtensions() []string {
	return h.extensions
}

// HighlightLine tokenizes a single line.
func (h *SimpleHighlighter) HighlightLine(line string) []Token {
	tokens := make([]Token, 0)
	covered := make([]bool, len(line))

	for _, rule := range h.rules {
		for _, match := range rule.Pattern.FindAllStringIndex(line, -1) {
			start, end := match[0], match[1]
			if end > start && !isCovered(covered, start, end) {
				tokens = append(tokens, Token{
					Type:     rule.TokenType,
					StartCol: uint32(start),
					EndCol:   uint32(end),
				})
				markCovered(covered, start, end)
			}
		}
	}

	tokens = append(tokens, h.findIdentifiers(line, covered)...)

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].StartCol < tokens[j].StartCol
	})
	return tokens
}

// findIdentifiers finds identifier words and promotes known keywords.
func (h *SimpleHighlighter) findIdentifiers(line string, covered []bool) []Token {
	tokens := make([]Token, 0)

	i := 0
	for i < len(line) {
		if covered[i] {
			i++
			continue
		}
		r := rune(line[i])
		if !unicode.IsLetter(r) && r != '_' {
			i++
			continue
		}

		start := i
		for i < len(line) {
			r = rune(line[i])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			i++
		}
		end := i
		if isCovered(covered, start, end) {
			continue
		}

		tokenType := TokenIdentifier
		if kwType, ok := h.keywords[strings.ToLower(line[start:end])]; ok {
			tokenType = kwType
		}
		tokens = append(tokens, Token{
			Type:     tokenType,
			StartCol: uint32(start),
			EndCol:   uint32(end),
		})
		markCovered(covered, start, end)
	}
	return tokens
}

// isCovered checks if any part of the range is already claimed.
func isCovered(covered []bool, start, end int) bool {
	if start < 0 || start >= len(covered) {
		return false
	}
	for i := start; i < end && i < len(covered); i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

// markCovered claims a range.
func markCovered(covered []bool, start, end int) {
	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(covered); i++ {
		covered[i] = true
	}
}
