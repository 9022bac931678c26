// Package vdom provides the markup node model.
//
// A document is a tree of Elements. Each element has a fixed tag, an
// optional document header, a void flag, ordered children, attributes and
// a context map that is pushed into descendants while the element is
// serialized.
//
// # Core Types
//
// AttrValue is one of String, Integer, Float, Boolean, ClassList or
// StyleMap. Attrs maps attribute names to values and encodes them in key
// order, dropping values that encode to the empty string (a false Boolean).
//
// Child is anything that may appear inside an element: raw or escaped
// text, an integer, float or boolean literal, a nested Element, or a
// Component owned by the caller.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P(Text("Content <escaped>")),
//	    WithContext("theme", "dark"),
//	)
//
// # Components
//
// A Component renders itself into another Component. *Element renders to
// itself, which is the fixed point the render package drives towards.
// User components embed ComponentBase for context and class storage.
//
// # Context
//
// When an element serializes a child it first pushes its context into
// it: nested elements forward it to every descendant, components merge it
// into their own store. Elements closer to a component win because they
// push later.
package vdom
