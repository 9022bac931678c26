// Package vtest provides testing helpers for markup components.
//
// The vtest package reduces boilerplate when testing components that read
// context or accumulate classes, by providing a fluent context builder and
// render assertions.
//
// # Quick Start
//
//	func TestCard_Dark(t *testing.T) {
//	    card := vtest.NewCtx().With("theme", "dark").Mount(&Card{Title: "News"})
//	    vtest.ExpectHTML(t, card, `<div class="card dark"><h2>News</h2></div>`)
//	}
//
// # Fluent Context Builder
//
// The context builder allows chaining multiple entries:
//
//	ctx := vtest.NewCtx().
//	    With("theme", "dark").
//	    With("lang", "en").
//	    Build()
//
// Mount pushes the built context into a component the same way an
// ancestor would during rendering.
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, comp, "Welcome")
//	vtest.ExpectNotContains(t, comp, "Login")
//	vtest.ExpectElement(t, comp, "button")
//	vtest.ExpectAttribute(t, comp, "class", "btn primary")
//
// Failures are asserted with ExpectError, which also checks that the
// error matches a sentinel:
//
//	vtest.ExpectError(t, comp, vdom.ErrMissingRenderCapability)
package vtest
