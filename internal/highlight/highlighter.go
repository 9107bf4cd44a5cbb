package highlight

import "sync"

// Highlighter defines the interface for syntax highlighters. BenchScript
// has no constructs that span lines, so tokenization is per line with no
// carried state.
type Highlighter interface {
	// HighlightLine tokenizes a single line.
	HighlightLine(line string) []Token

	// Language returns the language this highlighter supports.
	Language() string

	// FileExtensions returns the file extensions this highlighter handles.
	FileExtensions() []string
}

// Registry manages available highlighters.
type Registry struct {
	mu          sync.RWMutex
	byLanguage  map[string]Highlighter
	byExtension map[string]Highlighter
}

// NewRegistry creates a new highlighter registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage:  make(map[string]Highlighter),
		byExtension: make(map[string]Highlighter),
	}
}

// Register adds a highlighter to the registry.
func (r *Registry) Register(h Highlighter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byLanguage[h.Language()] = h
	for _, ext := range h.FileExtensions() {
		r.byExtension[ext] = h
	}
}

// GetByLanguage returns a highlighter for the given language.
func (r *Registry) GetByLanguage(language string) (Highlighter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byLanguage[language]
	return h, ok
}

// GetByExtension returns a highlighter for the given file extension.
// The leading dot is optional.
func (r *Registry) GetByExtension(ext string) (Highlighter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ext == "" {
		return nil, false
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	h, ok := r.byExtension[ext]
	return h, ok
}

// Languages returns all registered language names.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	return langs
}
