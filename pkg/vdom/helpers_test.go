package vdom

import "testing"

func TestTextEscapes(t *testing.T) {
	c := Text(`<script>alert("x")</script>`)
	if c.Kind() != ChildEscapedText {
		t.Fatalf("Kind = %v, want EscapedText", c.Kind())
	}
	if got, want := c.Text(), "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := Textf("%d < %d", 1, 2).Text(); got != "1 &lt; 2" {
		t.Errorf("Textf = %q", got)
	}
	if Raw("<b>").Kind() != ChildRawText {
		t.Error("Raw should produce RawText")
	}
}

func TestConditionals(t *testing.T) {
	a, b := P("a"), P("b")
	if If(true, a) != a || If(false, a) != nil {
		t.Error("If")
	}
	if IfElse(true, a, b) != a || IfElse(false, a, b) != b {
		t.Error("IfElse")
	}
	if Unless(false, a) != a || Unless(true, a) != nil {
		t.Error("Unless")
	}
	called := false
	When(false, func() *Element { called = true; return a })
	if called {
		t.Error("When should not call fn for false")
	}
}

func TestRange(t *testing.T) {
	items := Range([]string{"a", "", "c"}, func(s string, i int) *Element {
		if s == "" {
			return nil
		}
		return Li(s)
	})
	if got, want := mustHTML(t, Ul(items)), "<ul><li>a</li><li>c</li></ul>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBlankRendersChildrenOnly(t *testing.T) {
	if got := mustHTML(t, Blank("a", B("b"))); got != "a<b>b</b>" {
		t.Errorf("got %q", got)
	}
	if Blank().TagName() != HiddenTag {
		t.Error("Blank should use the hidden tag")
	}
}

func TestChildOf(t *testing.T) {
	tests := []struct {
		in   any
		want ChildKind
	}{
		{"s", ChildRawText},
		{3, ChildInt},
		{int64(3), ChildInt},
		{1.5, ChildFloat},
		{false, ChildBool},
		{Div(), ChildNode},
		{EscapedText("x"), ChildEscapedText},
		{struct{}{}, ChildComponent},
	}
	for _, tt := range tests {
		if got := ChildOf(tt.in).Kind(); got != tt.want {
			t.Errorf("ChildOf(%T) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
