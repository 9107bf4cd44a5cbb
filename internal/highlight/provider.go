package highlight

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of distinct lines a Provider remembers.
const DefaultCacheSize = 4096

// Provider caches per-line token runs in front of a Highlighter. Because
// BenchScript tokenization depends on nothing but the line's own text, the
// cache key is the line itself, so identical lines anywhere in a document
// share one tokenization. The indent engine stays cache-free; a Provider
// sits only on the rendering path.
//
// Returned token slices are shared between callers and must not be
// modified.
type Provider struct {
	h     Highlighter
	cache *lru.Cache[string, []Token]
}

// NewProvider wraps a highlighter with an LRU line cache. A non-positive
// size selects DefaultCacheSize.
func NewProvider(h Highlighter, size int) (*Provider, error) {
	if size < 1 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []Token](size)
	if err != nil {
		return nil, err
	}
	return &Provider{h: h, cache: cache}, nil
}

// HighlightLine tokenizes a single line, serving repeated lines from the
// cache.
func (p *Provider) HighlightLine(line string) []Token {
	if tokens, ok := p.cache.Get(line); ok {
		return tokens
	}
	tokens := p.h.HighlightLine(line)
	p.cache.Add(line, tokens)
	return tokens
}

// Language returns the wrapped highlighter's language.
func (p *Provider) Language() string {
	return p.h.Language()
}

// FileExtensions returns the wrapped highlighter's extensions.
func (p *Provider) FileExtensions() []string {
	return p.h.FileExtensions()
}

// Len returns the number of cached lines.
func (p *Provider) Len() int {
	return p.cache.Len()
}

// Purge drops every cached line.
func (p *Provider) Purge() {
	p.cache.Purge()
}

// Ensure Provider implements Highlighter.
var _ Highlighter = (*Provider)(nil)
