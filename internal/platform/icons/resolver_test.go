package icons

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/svg"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/theme"
)

func TestResolveEmptyIdentifier(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", "\t"} {
		for _, props := range []theme.Props{nil, {theme.PropColor: "#FF0000"}} {
			result := Resolve(name, props)
			require.False(t, result.Found(), "name %q", name)
			require.Empty(t, result.Key())
			require.Empty(t, result.String())
			_, ok := result.Element()
			require.False(t, ok)
			require.Equal(t, Empty(), result)
		}
	}
}

func TestResolveUnknownIdentifier(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"ic_does_not_exist", "banana", "___", "ic-add-extra"} {
		require.NotPanics(t, func() {
			require.False(t, Resolve(name, nil).Found(), "name %q", name)
		})
	}
}

func TestResolveVariantsMatchCanonical(t *testing.T) {
	t.Parallel()

	props := theme.Props{theme.PropColor: "primary-50"}
	for _, key := range Default().Keys() {
		want := Resolve(string(key), props)
		require.True(t, want.Found(), "canonical %s", key)

		snake := SnakeName(key)
		variants := []string{
			snake,
			strings.ToUpper(snake),
			strings.ReplaceAll(snake, "_", "-"),
			strings.ReplaceAll(snake, "_", " "),
			"  " + snake + "  ",
		}
		for _, variant := range variants {
			got := Resolve(variant, props)
			require.True(t, got.Found(), "variant %q of %s", variant, key)
			require.Equal(t, key, got.Key())
			require.Equal(t, want.String(), got.String(), "variant %q", variant)
		}
	}
}

func TestResolveAppliesColor(t *testing.T) {
	t.Parallel()

	result := Resolve("ic_add", theme.Props{theme.PropColor: "#FF0000"})
	require.True(t, result.Found())
	require.Equal(t, Key("IcAdd"), result.Key())

	el, ok := result.Element()
	require.True(t, ok)
	fill, ok := el.Attr("fill")
	require.True(t, ok)
	require.Equal(t, "#FF0000", fill)
	style, ok := el.Attr("style")
	require.True(t, ok)
	require.Equal(t, "color:#FF0000;width:24px;height:24px", style)
}

func TestResolveStyleMatchesStyler(t *testing.T) {
	t.Parallel()

	props := theme.Props{theme.PropSize: "large", theme.PropStyle: "opacity:0.4"}
	want := theme.Compute(props, theme.ContextIcon)

	el, ok := Resolve("IcSearch", props).Element()
	require.True(t, ok)
	style, _ := el.Attr("style")
	fill, _ := el.Attr("fill")
	require.Equal(t, want.CSS(), style)
	require.Equal(t, want.Color, fill)
}

func TestResolveUsesInjectedCollaborators(t *testing.T) {
	t.Parallel()

	var gotDelimiter string
	var gotContext theme.Context
	resolver := NewResolver(Default(),
		WithDelimiter("."),
		WithNormalizer(func(raw, delimiter string) string {
			gotDelimiter = delimiter
			return "IcAdd"
		}),
		WithStyler(func(props theme.Props, ctx theme.Context) theme.Style {
			gotContext = ctx
			return theme.Style{Context: ctx, Color: "#010203"}
		}),
	)

	result := resolver.Resolve("anything", nil)
	require.True(t, result.Found())
	require.Equal(t, ".", gotDelimiter)
	require.Equal(t, theme.ContextIcon, gotContext)
	require.Contains(t, result.String(), `style="color:#010203"`)
	require.Contains(t, result.String(), `fill="#010203"`)
}

func TestResolveWithTheme(t *testing.T) {
	t.Parallel()

	th, err := theme.New(theme.Palette{
		Colors:   map[string]string{"ink": "#222222"},
		Sizes:    map[string]int{"base": 18},
		Contexts: map[theme.Context]theme.ContextDefault{theme.ContextIcon: {Color: "ink", Size: "base"}},
	})
	require.NoError(t, err)

	result := NewResolver(nil, WithTheme(th)).Resolve("ic_add", nil)
	require.Contains(t, result.String(), `style="color:#222222;width:18px;height:18px"`)
}

func TestResolveDuplicateLastWins(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry([]Definition{
		{Key: "IcDot", Build: circle("first")},
		{Key: "IcDot", Build: circle("second")},
	})
	require.NoError(t, err)
	resolver := NewResolver(reg, WithStyler(func(theme.Props, theme.Context) theme.Style {
		return theme.Style{Color: "red"}
	}))

	first := resolver.Resolve("ic_dot", nil)
	for i := 0; i < 5; i++ {
		again := resolver.Resolve("ic_dot", nil)
		require.Equal(t, first.String(), again.String())
	}
	el, ok := first.Element()
	require.True(t, ok)
	require.Len(t, el.Children, 1)
	fill, _ := el.Children[0].Attr("fill")
	require.Equal(t, "second", fill)
}

func TestResolveResultsAreIndependent(t *testing.T) {
	t.Parallel()

	a, ok := Resolve("ic_add", nil).Element()
	require.True(t, ok)
	b, ok := Resolve("ic_add", nil).Element()
	require.True(t, ok)
	require.True(t, a.Equal(b))

	a.SetAttr("fill", "#123456")
	a.Children[0].SetAttr("d", "M0 0")
	require.False(t, a.Equal(b))

	fill, _ := b.Attr("fill")
	require.Equal(t, "#141414", fill)

	build, _ := Default().Lookup("IcAdd")
	fresh := build()
	d, _ := fresh.Children[0].Attr("d")
	require.NotEqual(t, "M0 0", d)
	fill, _ = fresh.Attr("fill")
	require.Equal(t, "none", fill)
}

func TestResolveElementReturnsCopy(t *testing.T) {
	t.Parallel()

	result := Resolve("ic_add", nil)
	el, _ := result.Element()
	el.SetAttr("fill", "#000000")
	again, _ := result.Element()
	fill, _ := again.Attr("fill")
	require.Equal(t, "#141414", fill)
}

func TestResolveNonRenderableIsMiss(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry([]Definition{
		{Key: "IcBroken", Build: func() svg.Element { return svg.New("g", nil) }},
		{Key: "IcEmpty", Build: func() svg.Element { return svg.Element{} }},
	})
	require.NoError(t, err)
	resolver := NewResolver(reg)

	require.False(t, resolver.Resolve("ic_broken", nil).Found())
	require.False(t, resolver.Resolve("IcEmpty", nil).Found())
}

func TestResolveKeySkipsNormalization(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(nil)
	require.True(t, resolver.ResolveKey("IcAdd", nil).Found())
	require.False(t, resolver.ResolveKey("ic_add", nil).Found())
	require.False(t, resolver.ResolveKey("", nil).Found())
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(nil)
	for _, key := range Default().Keys() {
		require.Equal(t, key, resolver.Normalize(string(key)))
		require.Equal(t, key, resolver.Normalize(string(resolver.Normalize(SnakeName(key)))))
	}
}

func TestResultRender(t *testing.T) {
	t.Parallel()

	result := Resolve("ic_add", nil)
	var b bytes.Buffer
	require.NoError(t, result.Render(context.Background(), &b))
	require.Equal(t, result.String(), b.String())
	require.True(t, strings.HasPrefix(b.String(), `<svg xmlns="http://www.w3.org/2000/svg"`))

	b.Reset()
	require.NoError(t, Result{}.Render(context.Background(), &b))
	require.Empty(t, b.String())
}
