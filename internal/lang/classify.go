package lang

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// DefaultCommentPrefix is the standard BenchScript comment marker.
const DefaultCommentPrefix = "!"

// Errors returned by NewClassifier.
var (
	// ErrCommentPrefix indicates an invalid comment prefix.
	ErrCommentPrefix = errors.New("comment prefix must be a single non-space character")
	// ErrKeyword indicates an extra keyword that is not a bare identifier.
	ErrKeyword = errors.New("keyword must be a bare identifier")
)

// Config configures a Classifier.
type Config struct {
	// CommentPrefix is the character that starts a line comment.
	// Empty selects DefaultCommentPrefix.
	CommentPrefix string
	// ExtraOpeners are additional block-opening keywords contributed by
	// site extensions.
	ExtraOpeners []string
	// ExtraClosers are additional block-closing keywords contributed by
	// site extensions.
	ExtraClosers []string
}

// Classifier assigns structural roles to single lines of BenchScript.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	comment string
	rules   []rule
	skip    *regexp.Regexp
}

type rule struct {
	pattern *regexp.Regexp
	role    Role
}

// NewClassifier builds a classifier from cfg. Construction is the only
// point of failure; classification itself never errors.
func NewClassifier(cfg Config) (*Classifier, error) {
	comment := cfg.CommentPrefix
	if comment == "" {
		comment = DefaultCommentPrefix
	}
	if utf8.RuneCountInString(comment) != 1 || strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("%w: %q", ErrCommentPrefix, cfg.CommentPrefix)
	}
	for _, kw := range cfg.ExtraOpeners {
		if !ValidKeyword(kw) {
			return nil, fmt.Errorf("%w: %q", ErrKeyword, kw)
		}
	}
	for _, kw := range cfg.ExtraClosers {
		if !ValidKeyword(kw) {
			return nil, fmt.Errorf("%w: %q", ErrKeyword, kw)
		}
	}

	openers := append(OpenerKeywords(), cfg.ExtraOpeners...)
	closers := append(CloserKeywords(), cfg.ExtraClosers...)

	// tail matches the remainder of a line that carries no content:
	// optional whitespace, then an optional comment running to the end.
	cq := regexp.QuoteMeta(comment)
	tail := `\s*(?:` + cq + `.*)?$`

	// Rule order carries meaning: the first matching rule decides the role.
	rules := []rule{
		{regexp.MustCompile(`(?i)^\s*(?:` + alternation(openers) + `)\b`), RoleStart},
		{regexp.MustCompile(`(?i)^\s*declare` + tail), RoleStart},
		{regexp.MustCompile(`(?i)^\s*if\b.*\bthen` + tail), RoleStart},
		{regexp.MustCompile(`(?i)^\s*arm\s+device\b`), RoleStart},
		{regexp.MustCompile(`(?i)^\s*else\b`), RoleStartEnd},
		{regexp.MustCompile(`(?i)^\s*(?:` + alternation(closers) + `)\b`), RoleEnd},
		{regexp.MustCompile(`(?i)^\s*readout\s+device\b`), RoleEnd},
	}

	return &Classifier{
		comment: comment,
		rules:   rules,
		skip:    regexp.MustCompile(`^\s*(?:` + cq + `.*)?$`),
	}, nil
}

var (
	defaultClassifier *Classifier
	defaultOnce       sync.Once
)

// Default returns the classifier for stock BenchScript. The result is
// shared; callers must not assume a fresh instance.
func Default() *Classifier {
	defaultOnce.Do(func() {
		defaultClassifier, _ = NewClassifier(Config{})
	})
	return defaultClassifier
}

// Classify returns the structural role of a single line. Matching is
// case-insensitive and keywords count as whole words only. Any input maps
// to exactly one role.
func (c *Classifier) Classify(line string) Role {
	for _, r := range c.rules {
		if r.pattern.MatchString(line) {
			return r.role
		}
	}
	return RolePlain
}

// IsBlankOrComment reports whether the line holds no content: only
// whitespace, or whitespace followed by a comment.
func (c *Classifier) IsBlankOrComment(line string) bool {
	return c.skip.MatchString(line)
}

// CommentPrefix returns the comment marker this classifier recognizes.
func (c *Classifier) CommentPrefix() string {
	return c.comment
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
