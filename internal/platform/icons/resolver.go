package icons

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/casing"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/svg"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/theme"
)

// Normalizer converts a raw identifier to canonical form given the word
// delimiter callers use. It must be pure and idempotent.
type Normalizer func(raw, delimiter string) string

// Styler computes the style for a component context from caller props.
type Styler func(props theme.Props, ctx theme.Context) theme.Style

// Result is the outcome of a resolve call: either a styled graphic or
// nothing. The zero value is the empty result.
type Result struct {
	key     Key
	element svg.Element
	found   bool
}

var _ templ.Component = Result{}

// Empty returns the empty result.
func Empty() Result {
	return Result{}
}

// Found reports whether the result holds a graphic.
func (r Result) Found() bool {
	return r.found
}

// Key returns the canonical key of the resolved icon, or "" when empty.
func (r Result) Key() Key {
	return r.key
}

// Element returns a copy of the styled graphic.
func (r Result) Element() (svg.Element, bool) {
	if !r.found {
		return svg.Element{}, false
	}
	return r.element.Clone(), true
}

// Render writes the graphic as SVG markup. An empty result writes nothing.
func (r Result) Render(ctx context.Context, w io.Writer) error {
	if !r.found {
		return nil
	}
	return r.element.Render(ctx, w)
}

// String returns the SVG markup, or "" for an empty result.
func (r Result) String() string {
	if !r.found {
		return ""
	}
	return r.element.String()
}

// Resolver turns caller identifiers into styled graphics. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	registry  *Registry
	normalize Normalizer
	style     Styler
	delimiter string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNormalizer replaces the identifier normalizer.
func WithNormalizer(n Normalizer) ResolverOption {
	return func(r *Resolver) {
		if n != nil {
			r.normalize = n
		}
	}
}

// WithStyler replaces the style computation.
func WithStyler(s Styler) ResolverOption {
	return func(r *Resolver) {
		if s != nil {
			r.style = s
		}
	}
}

// WithTheme computes styles from t.
func WithTheme(t *theme.Theme) ResolverOption {
	return func(r *Resolver) {
		if t != nil {
			r.style = t.Compute
		}
	}
}

// WithDelimiter sets the word delimiter passed to the normalizer.
func WithDelimiter(delimiter string) ResolverOption {
	return func(r *Resolver) {
		r.delimiter = delimiter
	}
}

// NewResolver builds a resolver over reg. A nil reg uses Default().
func NewResolver(reg *Registry, opts ...ResolverOption) *Resolver {
	if reg == nil {
		reg = Default()
	}
	r := &Resolver{
		registry:  reg,
		normalize: casing.Pascal,
		style:     theme.Compute,
		delimiter: casing.DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize converts a raw identifier to a key without looking it up.
func (r *Resolver) Normalize(name string) Key {
	return Key(r.normalize(name, r.delimiter))
}

// Resolve normalizes name and renders the matching icon with props applied.
// Empty names and unknown icons produce the empty Result.
func (r *Resolver) Resolve(name string, props theme.Props) Result {
	if strings.TrimSpace(name) == "" {
		return Empty()
	}
	return r.ResolveKey(r.Normalize(name), props)
}

// ResolveKey renders the icon registered under an already canonical key.
func (r *Resolver) ResolveKey(key Key, props theme.Props) Result {
	if key == "" {
		return Result{}
	}
	build, ok := r.registry.Lookup(key)
	if !ok {
		return Result{}
	}
	graphic := build()
	if !graphic.Renderable() {
		return Result{}
	}
	style := r.style(props, theme.ContextIcon)
	return Result{
		key: key,
		element: graphic.WithAttrs(
			svg.A("style", style.CSS()),
			svg.A("fill", style.Color),
		),
		found: true,
	}
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver(Default())
})

// Resolve renders name from the built-in catalog with the default theme.
func Resolve(name string, props theme.Props) Result {
	return defaultResolver().Resolve(name, props)
}
