package vdom

import (
	"errors"
	"math"
	"testing"
)

func TestAttrValueEncode(t *testing.T) {
	tests := []struct {
		name  string
		value AttrValue
		want  string
	}{
		{"string", StringValue("a.png"), "a.png"},
		{"empty string", StringValue(""), ""},
		{"integer", IntValue(42), "42"},
		{"negative integer", IntValue(-7), "-7"},
		{"float", FloatValue(1.5), "1.5"},
		{"whole float", FloatValue(2), "2"},
		{"true", BoolValue(true), "true"},
		{"false", BoolValue(false), ""},
		{"class list", ClassListValue("btn", "btn-primary"), "btn btn-primary"},
		{"empty class list", ClassListValue(), ""},
		{"style map", StyleMapValue(map[string]string{"color": "red", "background": "blue"}), "background:blue;color:red"},
		{"zero value", AttrValue{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Encode(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttrValueIsImmutable(t *testing.T) {
	names := []string{"a", "b"}
	v := ClassListValue(names...)
	names[0] = "changed"
	if got := v.Encode(); got != "a b" {
		t.Errorf("class list aliased caller slice: got %q", got)
	}

	styles := map[string]string{"color": "red"}
	s := StyleMapValue(styles)
	styles["color"] = "blue"
	if got := s.Encode(); got != "color:red" {
		t.Errorf("style map aliased caller map: got %q", got)
	}

	classes := v.Classes()
	classes[0] = "x"
	if got := v.Encode(); got != "a b" {
		t.Errorf("Classes() exposed internal slice: got %q", got)
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		wantKind ValueKind
		want     string
	}{
		{"string", "x", KindString, "x"},
		{"int", 3, KindInteger, "3"},
		{"uint8", uint8(9), KindInteger, "9"},
		{"int64", int64(-1), KindInteger, "-1"},
		{"uint64 max int64", uint64(math.MaxInt64), KindInteger, "9223372036854775807"},
		{"uint64 above max int64", uint64(math.MaxUint64), KindString, "18446744073709551615"},
		{"float32", float32(0.5), KindFloat, "0.5"},
		{"float64", 3.25, KindFloat, "3.25"},
		{"bool", true, KindBoolean, "true"},
		{"string slice", []string{"a", "b"}, KindClassList, "a b"},
		{"any slice", []any{"a", "b"}, KindClassList, "a b"},
		{"string map", map[string]string{"top": "0"}, KindStyleMap, "top:0"},
		{"any map", map[string]any{"z-index": 3, "opacity": 0.5}, KindStyleMap, "opacity:0.5;z-index:3"},
		{"attr value", IntValue(8), KindInteger, "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValueOf(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind() != tt.wantKind {
				t.Errorf("Kind = %v, want %v", v.Kind(), tt.wantKind)
			}
			if got := v.Encode(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueOfUnsupported(t *testing.T) {
	for _, in := range []any{
		nil,
		struct{}{},
		make(chan int),
		[]int{1, 2},
		[]any{"a", 1},
		map[string]any{"nested": map[string]any{}},
		map[int]string{1: "a"},
	} {
		_, err := ValueOf(in)
		if !errors.Is(err, ErrUnsupportedAttrValueKind) {
			t.Errorf("ValueOf(%T) error = %v, want ErrUnsupportedAttrValueKind", in, err)
		}
	}
}

func TestAttrsOf(t *testing.T) {
	attrs, err := AttrsOf(map[string]any{"id": "main", "hidden": false, "tabindex": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := attrs.Encode(), `id="main" tabindex="1"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, err = AttrsOf(map[string]any{"onclick": func() {}})
	if !errors.Is(err, ErrUnsupportedAttrValueKind) {
		t.Fatalf("error = %v, want ErrUnsupportedAttrValueKind", err)
	}
}

func TestValueKindString(t *testing.T) {
	if KindStyleMap.String() != "StyleMap" {
		t.Errorf("got %q", KindStyleMap.String())
	}
	if ValueKind(99).String() != "Unknown" {
		t.Errorf("got %q", ValueKind(99).String())
	}
}
