package vdom

import "strings"

// HiddenTag is the tag name of elements that render only their children.
const HiddenTag = "__hidden__"

// Element is a concrete markup node.
type Element struct {
	tag      string
	header   string
	void     bool
	children []Child
	attrs    Attrs
	context  Context
	classes  []string
}

// Render implements Component. An element is its own fixed point.
func (e *Element) Render() (Component, error) {
	return e, nil
}

// TagName returns the element's tag name.
func (e *Element) TagName() string {
	return e.tag
}

// Header returns the text emitted before the opening tag, if any.
func (e *Element) Header() string {
	return e.header
}

// IsVoid reports whether the element never has a body or closing tag.
func (e *Element) IsVoid() bool {
	return e.void
}

// Children returns a copy of the element's children.
func (e *Element) Children() []Child {
	return append([]Child(nil), e.children...)
}

// Attrs returns a copy of the element's attributes.
func (e *Element) Attrs() Attrs {
	return e.attrs.Clone()
}

// Len returns the number of children.
func (e *Element) Len() int {
	return len(e.children)
}

// IsSimple reports whether the element has exactly one literal child.
func (e *Element) IsSimple() bool {
	return len(e.children) == 1 && e.children[0].isPrimitive()
}

// HasAttributes reports whether any attribute is set. False booleans count.
func (e *Element) HasAttributes() bool {
	return len(e.attrs) > 0
}

// Context returns the element's context store, allocating it on first use.
func (e *Element) Context() Context {
	if e.context == nil {
		e.context = make(Context)
	}
	return e.context
}

// UpdateContext merges ctx into the element's own context.
func (e *Element) UpdateContext(ctx Context) {
	if len(ctx) == 0 {
		return
	}
	e.Context().Update(ctx)
}

// Classes returns the element's extra class names.
func (e *Element) Classes() []string {
	return e.classes
}

// AppendClasses adds class names that are merged into the class attribute
// when the element is formatted.
func (e *Element) AppendClasses(names ...string) {
	e.classes = append(e.classes, names...)
}

// FormatAttrs encodes the attributes with classes merged into the class
// attribute. It returns "" when nothing survives encoding.
func (e *Element) FormatAttrs(classes []string) string {
	return e.attrs.withClasses(classes).Encode()
}

// FormatChildren renders the children in order. Before each child is
// encoded the element's context is pushed into it. Void elements format no
// children at all.
func (e *Element) FormatChildren() (string, error) {
	if e.void {
		return "", nil
	}
	var b strings.Builder
	for _, child := range e.children {
		if err := child.propagate(e.context); err != nil {
			return "", err
		}
		text, err := child.encode()
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// ToHTML serializes the element tree in a single pass. Nested components
// are rendered once each. On error no text is returned.
func (e *Element) ToHTML() (string, error) {
	if e == nil {
		return "", nil
	}

	var b strings.Builder

	// Document header
	if e.header != "" {
		b.WriteString(e.header)
		b.WriteByte('\n')
	}

	if e.tag == HiddenTag {
		children, err := e.FormatChildren()
		if err != nil {
			return "", err
		}
		b.WriteString(children)
		return b.String(), nil
	}

	// Opening tag
	b.WriteByte('<')
	b.WriteString(e.tag)
	if attrs := e.FormatAttrs(e.classes); attrs != "" {
		b.WriteByte(' ')
		b.WriteString(attrs)
	}
	b.WriteByte('>')

	if e.void {
		return b.String(), nil
	}

	children, err := e.FormatChildren()
	if err != nil {
		return "", err
	}
	b.WriteString(children)

	// Closing tag
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')

	return b.String(), nil
}

// String returns a compact representation with children elided:
// <div id="x">...</div>.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.tag)
	if attrs := e.attrs.Encode(); attrs != "" {
		b.WriteByte(' ')
		b.WriteString(attrs)
	}
	b.WriteByte('>')
	if !e.void {
		if len(e.children) > 0 {
			b.WriteString("...")
		}
		b.WriteString("</")
		b.WriteString(e.tag)
		b.WriteByte('>')
	}
	return b.String()
}
