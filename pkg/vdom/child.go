package vdom

import (
	"strconv"

	"github.com/vango-dev/markup/internal/errors"
)

// ChildKind is the child discriminator.
type ChildKind uint8

const (
	ChildRawText     ChildKind = iota // inserted verbatim
	ChildEscapedText                  // already escaped by the caller
	ChildInt                          // decimal integer
	ChildFloat                        // decimal float
	ChildBool                         // "true" / "false"
	ChildNode                         // nested element
	ChildComponent                    // externally owned component
)

// String returns the string representation of the ChildKind.
func (k ChildKind) String() string {
	switch k {
	case ChildRawText:
		return "RawText"
	case ChildEscapedText:
		return "EscapedText"
	case ChildInt:
		return "Int"
	case ChildFloat:
		return "Float"
	case ChildBool:
		return "Bool"
	case ChildNode:
		return "Node"
	case ChildComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Child is anything that may appear inside an element.
type Child struct {
	kind  ChildKind
	text  string
	num   int64
	float float64
	flag  bool
	node  *Element
	comp  any
}

// RawText creates a text child inserted without escaping.
func RawText(s string) Child { return Child{kind: ChildRawText, text: s} }

// EscapedText creates a text child the caller has already escaped.
func EscapedText(s string) Child { return Child{kind: ChildEscapedText, text: s} }

// Int creates an integer child.
func Int(n int64) Child { return Child{kind: ChildInt, num: n} }

// Float creates a float child.
func Float(f float64) Child { return Child{kind: ChildFloat, float: f} }

// Bool creates a boolean child.
func Bool(b bool) Child { return Child{kind: ChildBool, flag: b} }

// NodeChild creates a nested element child.
func NodeChild(e *Element) Child { return Child{kind: ChildNode, node: e} }

// ComponentChild creates a component child. The component is not owned by
// the tree; it is rendered once and receives a merge of its parent's context.
func ComponentChild(c Component) Child { return Child{kind: ChildComponent, comp: c} }

// Kind returns the variant of the child.
func (c Child) Kind() ChildKind {
	return c.kind
}

// Text returns the string of a RawText or EscapedText child.
func (c Child) Text() string {
	return c.text
}

// Element returns the element of a Node child.
func (c Child) Element() *Element {
	return c.node
}

// Component returns the handle of a Component child.
func (c Child) Component() any {
	return c.comp
}

// isPrimitive reports whether the child is a literal.
func (c Child) isPrimitive() bool {
	return c.kind != ChildNode && c.kind != ChildComponent
}

// propagate pushes ctx into the child. Node children pass it on to every
// descendant, components merge it into their own store. Literals ignore it.
func (c Child) propagate(ctx Context) error {
	if len(ctx) == 0 {
		return nil
	}
	switch c.kind {
	case ChildNode:
		if c.node == nil {
			return nil
		}
		for _, grandchild := range c.node.children {
			if err := grandchild.propagate(ctx); err != nil {
				return err
			}
		}
	case ChildComponent:
		updater, ok := c.comp.(ContextUpdater)
		if !ok {
			return errors.New("E003").WithDetailf("%T has no UpdateContext method", c.comp)
		}
		updater.UpdateContext(ctx)
	}
	return nil
}

// encode returns the text of the child. A component is rendered exactly
// once and must return something that can produce text itself.
func (c Child) encode() (string, error) {
	switch c.kind {
	case ChildRawText, ChildEscapedText:
		return c.text, nil
	case ChildInt:
		return strconv.FormatInt(c.num, 10), nil
	case ChildFloat:
		return formatFloat(c.float), nil
	case ChildBool:
		return strconv.FormatBool(c.flag), nil
	case ChildNode:
		if c.node == nil {
			return "", nil
		}
		return c.node.ToHTML()
	case ChildComponent:
		return renderLeaf(c.comp)
	default:
		return "", nil
	}
}

func renderLeaf(handle any) (string, error) {
	comp, ok := handle.(Component)
	if !ok {
		return "", errors.New("E002").WithDetailf("%T has no Render method", handle)
	}
	out, err := comp.Render()
	if err != nil {
		return "", err
	}
	text, ok := out.(HTMLer)
	if !ok {
		return "", errors.New("E004").WithDetailf("%T rendered %T", handle, out)
	}
	return text.ToHTML()
}
