// Package theme computes component styles from caller props and design
// tokens.
package theme

import (
	"strconv"
	"strings"
	"sync"
)

// Context identifies the kind of component a style is computed for.
type Context string

// ContextIcon is the style context for rendered icons.
const ContextIcon Context = "icon"

// Recognized prop names.
const (
	PropColor = "color"
	PropSize  = "size"
	PropStyle = "style"
)

// Props is an open bag of caller supplied attributes. Unrecognized keys are
// ignored by Compute.
type Props map[string]string

// NewProps builds props from optional color, size and style values. Blank
// values are left out.
func NewProps(color, size, style string) Props {
	props := Props{}
	if color = strings.TrimSpace(color); color != "" {
		props[PropColor] = color
	}
	if size = strings.TrimSpace(size); size != "" {
		props[PropSize] = size
	}
	if style = strings.TrimSpace(style); style != "" {
		props[PropStyle] = style
	}
	return props
}

// Declaration is a single CSS property and value.
type Declaration struct {
	Property string
	Value    string
}

// Style is the computed presentation for one component.
type Style struct {
	Context Context
	// Color is a hex literal or CurrentColor.
	Color string
	// Size is the edge length in pixels; zero means unsized.
	Size int
	// Overrides are caller declarations applied after the computed ones.
	Overrides []Declaration
}

// Declarations returns the style as ordered CSS declarations. A later
// declaration of a property replaces an earlier one in place.
func (s Style) Declarations() []Declaration {
	decls := []Declaration{{Property: "color", Value: s.Color}}
	if s.Size > 0 {
		px := strconv.Itoa(s.Size) + "px"
		decls = append(decls,
			Declaration{Property: "width", Value: px},
			Declaration{Property: "height", Value: px},
		)
	}
	for _, override := range s.Overrides {
		replaced := false
		for i := range decls {
			if decls[i].Property == override.Property {
				decls[i].Value = override.Value
				replaced = true
				break
			}
		}
		if !replaced {
			decls = append(decls, override)
		}
	}
	return decls
}

// CSS renders the style as an inline style attribute value.
func (s Style) CSS() string {
	decls := s.Declarations()
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.Property+":"+decl.Value)
	}
	return strings.Join(parts, ";")
}

// Theme computes styles from a validated palette.
type Theme struct {
	palette Palette
}

// New builds a theme from p after validating it. Token names are matched
// case insensitively.
func New(p Palette) (*Theme, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	normalized, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	return &Theme{palette: normalized}, nil
}

// Load builds a theme from a YAML palette file.
func Load(path string) (*Theme, error) {
	p, err := LoadPalette(path)
	if err != nil {
		return nil, err
	}
	return &Theme{palette: p}, nil
}

var defaultTheme = sync.OnceValue(func() *Theme {
	return &Theme{palette: DefaultPalette()}
})

// Default returns the theme built from the embedded palette.
func Default() *Theme {
	return defaultTheme()
}

// Compute computes a style with the default theme.
func Compute(props Props, ctx Context) Style {
	return Default().Compute(props, ctx)
}

// Color resolves a color token.
func (t *Theme) Color(token string) (string, bool) {
	value, ok := t.palette.Colors[strings.ToLower(strings.TrimSpace(token))]
	return value, ok
}

// Compute returns the style for props in ctx. Props that cannot be resolved
// fall back to the context defaults rather than failing.
func (t *Theme) Compute(props Props, ctx Context) Style {
	style := Style{Context: ctx, Color: CurrentColor}
	if defaults, ok := t.palette.Contexts[ctx]; ok {
		if color, ok := t.resolveColor(defaults.Color); ok {
			style.Color = color
		}
		style.Size = t.palette.Sizes[defaults.Size]
	}
	if color, ok := t.resolveColor(props[PropColor]); ok {
		style.Color = color
	}
	if size, ok := t.resolveSize(props[PropSize]); ok {
		style.Size = size
	}
	style.Overrides = ParseDeclarations(props[PropStyle])
	return style
}

// resolveColor accepts a palette token, CurrentColor, or a hex literal. Hex
// literals are returned exactly as given.
func (t *Theme) resolveColor(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if strings.EqualFold(raw, CurrentColor) {
		return CurrentColor, true
	}
	if value, ok := t.Color(raw); ok {
		return value, true
	}
	if _, _, ok := ParseHex(raw); !ok {
		return "", false
	}
	return raw, true
}

func (t *Theme) resolveSize(raw string) (int, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, false
	}
	if size, ok := t.palette.Sizes[raw]; ok {
		return size, true
	}
	size, err := strconv.Atoi(strings.TrimSuffix(raw, "px"))
	if err != nil || size <= 0 {
		return 0, false
	}
	return size, true
}

// ParseDeclarations parses inline CSS such as "opacity: .5; margin:0".
// Malformed entries are skipped and property names are lower cased.
func ParseDeclarations(raw string) []Declaration {
	var decls []Declaration
	for _, part := range strings.Split(raw, ";") {
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" || value == "" {
			continue
		}
		decls = append(decls, Declaration{Property: property, Value: value})
	}
	return decls
}
