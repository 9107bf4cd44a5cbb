package highlight

import (
	"sort"
	"strings"
)

// Attr represents text attributes (bold, italic, etc.).
type Attr uint8

// Text attribute flags.
const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << iota
	AttrDim            // Faint/dim text
	AttrItalic         // Italic text
	AttrUnderline      // Underlined text
	AttrReverse        // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Color represents a true color value or the terminal default.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// RGB creates a true color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Style represents the visual style of a token.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attr
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg, Background: ColorDefault}
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new style with the dim attribute added.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Italic returns a new style with the italic attribute added.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a new style with the underline attribute added.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a new style with the reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Theme defines colors and styles for rendering BenchScript.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Background is the viewer background color.
	Background Color

	// Foreground is the default text color.
	Foreground Color

	// TokenStyles maps token types to their styles.
	TokenStyles map[TokenType]Style
}

// StyleForToken returns the style for a given token type.
func (t *Theme) StyleForToken(tokenType TokenType) Style {
	if style, ok := t.TokenStyles[tokenType]; ok {
		return style
	}
	return Style{Foreground: t.Foreground, Background: ColorDefault}
}

// DefaultTheme returns the standard dark theme.
func DefaultTheme() *Theme {
	comment := RGB(106, 153, 85)
	keyword := RGB(86, 156, 214)
	str := RGB(206, 145, 120)
	device := RGB(78, 201, 176)
	number := RGB(181, 206, 168)
	function := RGB(220, 220, 170)
	variable := RGB(156, 220, 254)

	return &Theme{
		Name:       "default",
		Background: RGB(30, 30, 30),
		Foreground: RGB(212, 212, 212),
		TokenStyles: map[TokenType]Style{
			TokenCommentLine:        NewStyle(comment).Italic(),
			TokenString:             NewStyle(str),
			TokenDevice:             NewStyle(device).Underline(),
			TokenNumber:             NewStyle(number),
			TokenKeywordControl:     NewStyle(keyword),
			TokenKeywordDeclaration: NewStyle(keyword),
			TokenConstantLanguage:   NewStyle(RGB(79, 193, 255)),
			TokenFunctionBuiltin:    NewStyle(function),
			TokenIdentifier:         NewStyle(variable),
		},
	}
}

// MonoTheme returns a monochrome theme that relies on attributes alone,
// for terminals without color support.
func MonoTheme() *Theme {
	return &Theme{
		Name:       "mono",
		Background: ColorDefault,
		Foreground: ColorDefault,
		TokenStyles: map[TokenType]Style{
			TokenCommentLine:        DefaultStyle().Dim().Italic(),
			TokenString:             DefaultStyle(),
			TokenDevice:             DefaultStyle().Underline(),
			TokenNumber:             DefaultStyle(),
			TokenKeywordControl:     DefaultStyle().Bold(),
			TokenKeywordDeclaration: DefaultStyle().Bold(),
			TokenConstantLanguage:   DefaultStyle().Bold(),
			TokenFunctionBuiltin:    DefaultStyle(),
			TokenIdentifier:         DefaultStyle(),
		},
	}
}

// builtinThemes maps lowercase theme names to constructors.
var builtinThemes = map[string]func() *Theme{
	"default": DefaultTheme,
	"mono":    MonoTheme,
}

// ThemeNamed returns the built-in theme with the given name. Matching
// ignores case; ok is false for unknown names.
func ThemeNamed(name string) (*Theme, bool) {
	ctor, ok := builtinThemes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// ThemeNames returns the names of all built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
