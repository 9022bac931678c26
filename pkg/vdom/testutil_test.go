package vdom

// recorder is a component that records the context it receives and renders a
// fixed element.
type recorder struct {
	ComponentBase
	out     Component
	renders int
}

func (p *recorder) Render() (Component, error) {
	p.renders++
	if p.out == nil {
		return Span(Textf("%v", p.Context()["theme"])), nil
	}
	return p.out, nil
}

// renderOnly has a Render method but no context store.
type renderOnly struct{}

func (renderOnly) Render() (Component, error) { return B("bare"), nil }

// selfish renders to itself, which cannot produce text.
type selfish struct{ ComponentBase }

func (s *selfish) Render() (Component, error) { return s, nil }

func mustHTML(t interface {
	Helper()
	Fatalf(string, ...any)
}, e *Element) string {
	t.Helper()
	out, err := e.ToHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}
