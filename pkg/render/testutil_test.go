package render

import "github.com/vango-dev/markup/pkg/vdom"

// link is a component that renders to out, or to itself when out is nil.
type link struct {
	vdom.ComponentBase
	out     vdom.Component
	renders int
}

func (l *link) Render() (vdom.Component, error) {
	l.renders++
	if l.out == nil {
		return l, nil
	}
	return l.out, nil
}

// themed renders the theme it finds in its context.
type themed struct {
	vdom.ComponentBase
}

func (t *themed) Render() (vdom.Component, error) {
	return vdom.Span(vdom.Textf("%v", t.Context()["theme"])), nil
}

// plain has a Render method but no context store.
type plain struct{}

func (plain) Render() (vdom.Component, error) { return vdom.B("plain"), nil }

// failing returns err from Render.
type failing struct{ err error }

func (f failing) Render() (vdom.Component, error) { return nil, f.err }

type flushWriter struct {
	data    []byte
	flushes int
}

func (w *flushWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *flushWriter) Flush() { w.flushes++ }
