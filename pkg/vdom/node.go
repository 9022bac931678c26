package vdom

// Component is anything that can render itself into another component.
// A component that returns itself has reached its fixed point; *Element
// always does.
//
// Components that return themselves should be pointer types. A value
// component only matches itself when its type is comparable, so a struct
// holding a map, slice or func field never reaches a fixed point and
// renders forever.
type Component interface {
	Render() (Component, error)
}

// ContextUpdater accepts context pushed down from an ancestor.
type ContextUpdater interface {
	UpdateContext(ctx Context)
}

// ContextHolder owns a context store.
type ContextHolder interface {
	ContextUpdater
	Context() Context
}

// ClassHolder owns an ordered class list.
type ClassHolder interface {
	Classes() []string
	AppendClasses(names ...string)
}

// Markup is the formatting capability set of a resolved node.
type Markup interface {
	TagName() string
	Header() string
	IsVoid() bool
	HasAttributes() bool
	FormatAttrs(classes []string) string
	FormatChildren() (string, error)
}

// HTMLer renders itself to text in a single step.
type HTMLer interface {
	ToHTML() (string, error)
}

// Node is the full capability set shared by elements and components that
// render to themselves.
type Node interface {
	Component
	ContextHolder
	ClassHolder
	Markup
}

// ComponentBase holds the context and class list of a user component.
// Embed it by value and implement Render:
//
//	type Card struct {
//	    vdom.ComponentBase
//	    Title string
//	}
//
//	func (c *Card) Render() (vdom.Component, error) {
//	    theme, _ := c.Context()["theme"].(string)
//	    return vdom.Div(vdom.Class("card", theme), vdom.H2(c.Title)), nil
//	}
type ComponentBase struct {
	context Context
	classes []string
}

// Context returns the component's context store, allocating it on first use.
func (b *ComponentBase) Context() Context {
	if b.context == nil {
		b.context = make(Context)
	}
	return b.context
}

// UpdateContext merges ctx into the component's context.
func (b *ComponentBase) UpdateContext(ctx Context) {
	if len(ctx) == 0 {
		return
	}
	b.Context().Update(ctx)
}

// Classes returns the component's class list.
func (b *ComponentBase) Classes() []string {
	return b.classes
}

// AppendClasses adds names to the component's class list.
func (b *ComponentBase) AppendClasses(names ...string) {
	b.classes = append(b.classes, names...)
}
