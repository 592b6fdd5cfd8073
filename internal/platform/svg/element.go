// Package svg models vector graphic elements and renders them as inline SVG
// markup.
//
// Elements are plain values. Every operation that changes attributes returns
// a deep copy, so an element handed to one caller can never be observed
// changing through another.
package svg

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Namespace is the XML namespace written on every root element.
const Namespace = "http://www.w3.org/2000/svg"

// RootTag is the tag of a renderable graphic.
const RootTag = "svg"

// MIMEType is the media type of rendered markup.
const MIMEType = "image/svg+xml"

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// A builds an attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Element is a node in a vector graphic tree. Attribute order is preserved
// when rendering.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Element
}

var _ templ.Component = Element{}

// New builds an element from a tag, attributes, and children.
func New(tag string, attrs []Attr, children ...Element) Element {
	return Element{Tag: tag, Attrs: attrs, Children: children}
}

// Root builds an svg root element for the given view box. The root fill is
// "none" so only explicitly filled shapes paint.
func Root(viewBox string, children ...Element) Element {
	return New(RootTag, []Attr{
		A("xmlns", Namespace),
		A("viewBox", viewBox),
		A("fill", "none"),
	}, children...)
}

// Path builds a path element with path data d and the given fill.
func Path(d, fill string) Element {
	return New("path", []Attr{A("d", d), A("fill", fill)})
}

// IsZero reports whether e is the zero element.
func (e Element) IsZero() bool {
	return e.Tag == "" && len(e.Attrs) == 0 && len(e.Children) == 0
}

// Renderable reports whether e is a complete graphic that can stand on its
// own in a document.
func (e Element) Renderable() bool {
	return e.Tag == RootTag
}

// Attr returns the value of the named attribute.
func (e Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	clone := Element{Tag: e.Tag}
	if e.Attrs != nil {
		clone.Attrs = make([]Attr, len(e.Attrs))
		copy(clone.Attrs, e.Attrs)
	}
	if e.Children != nil {
		clone.Children = make([]Element, len(e.Children))
		for i, child := range e.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}

// WithAttrs returns a deep copy of e with attrs merged in. Existing
// attributes are replaced in place; new ones are appended in order.
func (e Element) WithAttrs(attrs ...Attr) Element {
	merged := e.Clone()
	for _, attr := range attrs {
		merged.SetAttr(attr.Name, attr.Value)
	}
	return merged
}

// SetAttr sets an attribute on e in place.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Equal reports whether e and other describe the same tree.
func (e Element) Equal(other Element) bool {
	if e.Tag != other.Tag || len(e.Attrs) != len(other.Attrs) || len(e.Children) != len(other.Children) {
		return false
	}
	for i := range e.Attrs {
		if e.Attrs[i] != other.Attrs[i] {
			return false
		}
	}
	for i := range e.Children {
		if !e.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Render writes e as SVG markup. It implements templ.Component.
func (e Element) Render(ctx context.Context, w io.Writer) error {
	if e.IsZero() {
		return nil
	}
	var b strings.Builder
	e.write(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the SVG markup for e.
func (e Element) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e Element) write(b *strings.Builder) {
	if e.IsZero() {
		return
	}
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, attr := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attr.Value))
		b.WriteByte('"')
	}
	if len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, child := range e.Children {
		child.write(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}
