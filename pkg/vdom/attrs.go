package vdom

import (
	"sort"
	"strings"
)

// Attr is a single named attribute.
type Attr struct {
	Key   string
	Value AttrValue
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attrs maps attribute names to values.
type Attrs map[string]AttrValue

// Keys returns the attribute names in lexicographic order.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode renders the attributes as name="value" pairs joined by a space,
// in key order. Pairs whose value encodes to the empty string are dropped,
// so an Attrs holding only false booleans encodes to "".
func (a Attrs) Encode() string {
	var b strings.Builder
	for _, key := range a.Keys() {
		value := a[key].Encode()
		if value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(value)
		b.WriteByte('"')
	}
	return b.String()
}

// Clone returns a shallow copy of the attributes.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// withClasses returns the attributes with extra class names merged into
// the class attribute. An existing non-empty class value is kept first.
func (a Attrs) withClasses(classes []string) Attrs {
	if len(classes) == 0 {
		return a
	}
	out := a.Clone()
	if existing := a["class"].Encode(); existing != "" {
		out["class"] = StringValue(existing + " " + strings.Join(classes, " "))
	} else {
		out["class"] = ClassListValue(classes...)
	}
	return out
}
