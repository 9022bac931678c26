// Package errors provides structured, coded error values for markup.
//
// Every failure the renderer, the document decoder, the configuration
// loader and the outer surfaces can report carries a stable code that maps
// to a registered message and category:
//
//   - validation: values that cannot become attributes, malformed documents
//   - runtime: component capability failures during rendering
//   - config: markup.json problems
//   - io: publishing and serving failures
//
// # Usage
//
//	err := errors.New("E002").
//	    WithDetail("value of type int has no Render method").
//	    WithSuggestion("Implement vdom.Component on the value")
//
//	fmt.Println(err.Format())
//
// Two errors with the same code match under errors.Is, so packages can
// export code-only sentinels:
//
//	var ErrMissingRenderCapability = errors.Sentinel("E002")
//
//	if stderrors.Is(err, vdom.ErrMissingRenderCapability) { ... }
package errors
