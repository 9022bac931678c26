package vdom

import "testing"

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		key  string
		want string
	}{
		{"id", ID("main"), "id", "main"},
		{"class", Class("a", "b"), "class", "a b"},
		{"data", Data("user-id", "7"), "data-user-id", "7"},
		{"aria", Aria("label", "Close"), "aria-label", "Close"},
		{"tabindex", TabIndex(-1), "tabindex", "-1"},
		{"width", Width(640), "width", "640"},
		{"step", Step(0.25), "step", "0.25"},
		{"method lowercased", Method("POST"), "method", "post"},
		{"disabled", Disabled(true), "disabled", "true"},
		{"not disabled", Disabled(false), "disabled", ""},
		{"hx-boost false", HxBoost(false), "hx-boost", "false"},
		{"hx-get", HxGet("/rows"), "hx-get", "/rows"},
		{"explicit", Attribute("x-data", IntValue(1)), "x-data", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
			}
			if got := tt.attr.Value.Encode(); got != tt.want {
				t.Errorf("Value = %q, want %q", got, tt.want)
			}
		})
	}
}
