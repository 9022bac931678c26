// Package render drives components to markup.
//
// A root handed to the renderer is any vdom.Component. The renderer calls
// Render repeatedly until a call returns the very object it was called on.
// Each new link of the chain receives the context of the link before it,
// and its classes are appended to a list seeded from the root. The resolved
// node is then formatted with those classes merged into its class
// attribute.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{Logger: logger})
//	html, err := renderer.RenderToString(page)
//
// To write to a stream:
//
//	stats, err := renderer.Render(w, page)
//
// Nothing is written when rendering fails.
//
// # Termination
//
// A chain that never returns an identical object loops forever. The
// renderer does not bound the number of iterations or detect longer cycles.
//
// # Observers
//
// Observers receive Stats for every render and are how metrics are
// collected:
//
//	renderer := render.NewRenderer(render.RendererConfig{
//	    Observers: []render.Observer{metrics},
//	})
package render
