package vdom

import (
	"sort"
	"strconv"
	"strings"
)

// ValueKind is the attribute value discriminator.
type ValueKind uint8

const (
	KindString    ValueKind = iota // plain text
	KindInteger                    // int64
	KindFloat                      // float64
	KindBoolean                    // true renders, false drops the attribute
	KindClassList                  // space joined names
	KindStyleMap                   // ;-joined key:value pairs
)

// String returns the string representation of the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindClassList:
		return "ClassList"
	case KindStyleMap:
		return "StyleMap"
	default:
		return "Unknown"
	}
}

// AttrValue is an immutable attribute value of one of the ValueKind variants.
// The zero value is an empty String.
type AttrValue struct {
	kind    ValueKind
	str     string
	num     int64
	float   float64
	flag    bool
	classes []string
	styles  map[string]string
}

// StringValue creates a String attribute value.
func StringValue(s string) AttrValue { return AttrValue{kind: KindString, str: s} }

// IntValue creates an Integer attribute value.
func IntValue(n int64) AttrValue { return AttrValue{kind: KindInteger, num: n} }

// FloatValue creates a Float attribute value.
func FloatValue(f float64) AttrValue { return AttrValue{kind: KindFloat, float: f} }

// BoolValue creates a Boolean attribute value.
func BoolValue(b bool) AttrValue { return AttrValue{kind: KindBoolean, flag: b} }

// ClassListValue creates a ClassList attribute value. The names are copied.
func ClassListValue(names ...string) AttrValue {
	return AttrValue{kind: KindClassList, classes: append([]string(nil), names...)}
}

// StyleMapValue creates a StyleMap attribute value. The map is copied.
func StyleMapValue(styles map[string]string) AttrValue {
	m := make(map[string]string, len(styles))
	for k, v := range styles {
		m[k] = v
	}
	return AttrValue{kind: KindStyleMap, styles: m}
}

// Kind returns the variant of the value.
func (v AttrValue) Kind() ValueKind {
	return v.kind
}

// Classes returns a copy of the names of a ClassList value.
func (v AttrValue) Classes() []string {
	return append([]string(nil), v.classes...)
}

// Encode returns the text form of the value as it appears between the quotes
// of an attribute. An empty result means the attribute must be omitted.
func (v AttrValue) Encode() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return formatFloat(v.float)
	case KindBoolean:
		if v.flag {
			return "true"
		}
		return ""
	case KindClassList:
		return strings.Join(v.classes, " ")
	case KindStyleMap:
		keys := make([]string, 0, len(v.styles))
		for k := range v.styles {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+":"+v.styles[k])
		}
		return strings.Join(pairs, ";")
	default:
		return ""
	}
}

// formatFloat renders the shortest decimal form, without exponent.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
