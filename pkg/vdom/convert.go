package vdom

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vango-dev/markup/internal/errors"
)

var (
	// ErrUnsupportedAttrValueKind is returned when a value matches none of
	// the attribute value kinds.
	ErrUnsupportedAttrValueKind = errors.Sentinel("E001")

	// ErrMissingRenderCapability is returned when a component has no Render method.
	ErrMissingRenderCapability = errors.Sentinel("E002")

	// ErrMissingContextCapability is returned when context must be pushed into
	// a component that cannot hold one.
	ErrMissingContextCapability = errors.Sentinel("E003")

	// ErrNonStringRenderResult is returned when a nested component renders to
	// something that cannot produce text.
	ErrNonStringRenderResult = errors.Sentinel("E004")
)

// ValueOf converts an arbitrary Go value into an AttrValue.
//
// Recognized inputs are strings, booleans, all integer and float types
// (unsigned values above math.MaxInt64 become strings of the same digits),
// []string and []any of strings (class lists), and map[string]string or
// map[string]any with scalar values (style maps). Anything else fails with
// ErrUnsupportedAttrValueKind.
func ValueOf(v any) (AttrValue, error) {
	switch x := v.(type) {
	case AttrValue:
		return x, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int8:
		return IntValue(int64(x)), nil
	case int16:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return uintValue(uint64(x)), nil
	case uint8:
		return IntValue(int64(x)), nil
	case uint16:
		return IntValue(int64(x)), nil
	case uint32:
		return IntValue(int64(x)), nil
	case uint64:
		return uintValue(x), nil
	case float32:
		return FloatValue(float64(x)), nil
	case float64:
		return FloatValue(x), nil
	case []string:
		return ClassListValue(x...), nil
	case []any:
		names := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return AttrValue{}, unsupported(v)
			}
			names = append(names, s)
		}
		return ClassListValue(names...), nil
	case map[string]string:
		return StyleMapValue(x), nil
	case map[string]any:
		styles := make(map[string]string, len(x))
		for key, item := range x {
			s, ok := scalarText(item)
			if !ok {
				return AttrValue{}, unsupported(v)
			}
			styles[key] = s
		}
		return StyleMapValue(styles), nil
	default:
		return AttrValue{}, unsupported(v)
	}
}

// uintValue keeps the exact digits of unsigned values that do not fit an Integer.
func uintValue(x uint64) AttrValue {
	if x > math.MaxInt64 {
		return StringValue(strconv.FormatUint(x, 10))
	}
	return IntValue(int64(x))
}

// AttrsOf converts a generic map into Attrs.
func AttrsOf(m map[string]any) (Attrs, error) {
	attrs := make(Attrs, len(m))
	for key, raw := range m {
		value, err := ValueOf(raw)
		if err != nil {
			return nil, errors.FromError(err, "E001").WithDetailf("attribute %q: value of type %T", key, raw)
		}
		attrs[key] = value
	}
	return attrs, nil
}

// ChildOf converts an arbitrary Go value into a Child.
//
// Strings become RawText, numbers and booleans their literal variants,
// *Element a Node child. Every other value is kept as an opaque component
// reference; its capabilities are only checked when it is rendered.
func ChildOf(v any) Child {
	switch x := v.(type) {
	case Child:
		return x
	case string:
		return RawText(x)
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case bool:
		return Bool(x)
	case *Element:
		return NodeChild(x)
	default:
		return Child{kind: ChildComponent, comp: v}
	}
}

func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	case float32:
		return formatFloat(float64(x)), true
	case float64:
		return formatFloat(x), true
	default:
		return "", false
	}
}

func unsupported(v any) *errors.MarkupError {
	return errors.New("E001").WithDetailf("value of type %T", v)
}
