package vtest

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/vdom"
)

// CtxBuilder allows fluent construction of test contexts.
type CtxBuilder struct {
	ctx vdom.Context
}

// NewCtx creates a new context builder for testing.
//
// Example:
//
//	ctx := vtest.NewCtx().
//	    With("theme", "dark").
//	    Build()
func NewCtx() *CtxBuilder {
	return &CtxBuilder{ctx: vdom.Context{}}
}

// With sets a context entry.
func (b *CtxBuilder) With(key string, value any) *CtxBuilder {
	b.ctx[key] = value
	return b
}

// Build returns a copy of the context built so far.
func (b *CtxBuilder) Build() vdom.Context {
	return b.ctx.Clone()
}

// Mount pushes the context into c and returns it. Components without a
// context store are returned unchanged.
//
// Example:
//
//	card := vtest.NewCtx().With("theme", "dark").Mount(&Card{})
func (b *CtxBuilder) Mount(c vdom.Component) vdom.Component {
	if u, ok := c.(vdom.ContextUpdater); ok {
		u.UpdateContext(b.Build())
	}
	return c
}

// RenderToString renders a component and returns the HTML string, or ""
// when rendering fails.
//
// Example:
//
//	html := vtest.RenderToString(MyComponent())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(c vdom.Component) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(c)
	if err != nil {
		return ""
	}
	return html
}

// mustRender renders c or fails the test.
func mustRender(t testing.TB, c vdom.Component) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(c)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

// ExpectHTML asserts that c renders to exactly want.
//
// Example:
//
//	vtest.ExpectHTML(t, vdom.P("hi"), "<p>hi</p>")
func ExpectHTML(t testing.TB, c vdom.Component, want string) {
	t.Helper()
	if got := mustRender(t, c); got != want {
		t.Errorf("rendered HTML mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, comp, "Welcome Admin")
func ExpectContains(t testing.TB, c vdom.Component, expected string) {
	t.Helper()
	html := mustRender(t, c)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
//
// Example:
//
//	vtest.ExpectNotContains(t, comp, "Error")
func ExpectNotContains(t testing.TB, c vdom.Component, unexpected string) {
	t.Helper()
	html := mustRender(t, c)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, comp, "button")
func ExpectElement(t testing.TB, c vdom.Component, tag string) {
	t.Helper()
	html := mustRender(t, c)
	if !strings.Contains(html, "<"+tag+">") && !strings.Contains(html, "<"+tag+" ") {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, comp, "class", "btn primary")
func ExpectAttribute(t testing.TB, c vdom.Component, attr, value string) {
	t.Helper()
	html := mustRender(t, c)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectError asserts that rendering c fails with an error matching target.
//
// Example:
//
//	vtest.ExpectError(t, comp, vdom.ErrMissingContextCapability)
func ExpectError(t testing.TB, c vdom.Component, target error) {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(c)
	if err == nil {
		t.Errorf("expected render error %v, got output:\n%s", target, truncate(html, 500))
		return
	}
	if !errors.Is(err, target) {
		t.Errorf("render error = %v, want %v", err, target)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
