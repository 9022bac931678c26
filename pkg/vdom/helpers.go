package vdom

import (
	"fmt"
	"html"
)

// Text creates a child escaped for safe inclusion in markup.
func Text(content string) Child {
	return EscapedText(html.EscapeString(content))
}

// Textf creates a formatted, escaped text child.
func Textf(format string, args ...any) Child {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped child.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(markup string) Child {
	return RawText(markup)
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Element {
	return createElement(HiddenTag, children)
}

// Blank is an alias for Fragment, for components that return only children.
func Blank(children ...any) *Element {
	return Fragment(children...)
}

// If returns the element if condition is true, nil otherwise.
func If(condition bool, e *Element) *Element {
	if condition {
		return e
	}
	return nil
}

// IfElse returns the first element if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Element) *Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, e *Element) *Element {
	if !condition {
		return e
	}
	return nil
}

// Range maps a slice to elements.
func Range[T any](items []T, fn func(item T, index int) *Element) []*Element {
	result := make([]*Element, 0, len(items))
	for i, item := range items {
		if e := fn(item, i); e != nil {
			result = append(result, e)
		}
	}
	return result
}
