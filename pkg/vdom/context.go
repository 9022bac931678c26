package vdom

// Context is caller-defined ambient data pushed from ancestors to descendants
// at render time (e.g. a theme).
type Context map[string]any

// Update copies every entry of other into c, overwriting existing keys.
func (c Context) Update(other Context) {
	for k, v := range other {
		c[k] = v
	}
}

// Clone returns a shallow copy of the context.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	out.Update(c)
	return out
}

// ContextEntry is a single context key/value, accepted by element factories.
type ContextEntry struct {
	Key   string
	Value any
}

// WithContext creates a ContextEntry for an element factory.
//
//	Style(css, WithContext("theme", dark))
func WithContext(key string, value any) ContextEntry {
	return ContextEntry{Key: key, Value: value}
}
