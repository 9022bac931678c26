package vdom

import (
	"errors"
	"testing"
)

func TestElementToHTML(t *testing.T) {
	tests := []struct {
		name string
		node *Element
		want string
	}{
		{"empty div", Div(), "<div></div>"},
		{"text child", Div(RawText("hi")), "<div>hi</div>"},
		{"void with attribute", Img(Src("a.png")), `<img src="a.png">`},
		{"true boolean", Button(Disabled(true)), `<button disabled="true"></button>`},
		{"false boolean", Button(Disabled(false)), "<button></button>"},
		{"document header", Html(), "<!doctype html>\n<html></html>"},
		{"escaped text", P(Text("a < b")), "<p>a &lt; b</p>"},
		{"raw text", P(Raw("<b>x</b>")), "<p><b>x</b></p>"},
		{"literals", Span(Int(3), RawText(" "), Float(2.5), RawText(" "), Bool(false)), "<span>3 2.5 false</span>"},
		{"string shorthand", P("plain"), "<p>plain</p>"},
		{"int shorthand", Li(7), "<li>7</li>"},
		{
			name: "nested",
			node: Ul(Class("list"), Li("a"), Li(A(Href("/b"), "b"))),
			want: `<ul class="list"><li>a</li><li><a href="/b">b</a></li></ul>`,
		},
		{"fragment", Fragment(B("x"), I("y")), "<b>x</b><i>y</i>"},
		{"style attribute", Div(StyleAttr(map[string]string{"color": "red", "margin": "0"})), `<div style="color:red;margin:0"></div>`},
		{"custom void shape", NewElement("x-icon", "", true, RawText("ignored")), "<x-icon>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustHTML(t, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVoidElementIgnoresChildren(t *testing.T) {
	empty := mustHTML(t, Img(Src("a.png")))
	withChildren := mustHTML(t, Img(Src("a.png"), "text", Div("nested"), &selfish{}))

	if empty != withChildren {
		t.Errorf("void output differs: %q vs %q", empty, withChildren)
	}
	if withChildren != `<img src="a.png">` {
		t.Errorf("got %q", withChildren)
	}
}

func TestVoidElementDoesNotRenderComponents(t *testing.T) {
	p := &recorder{}
	mustHTML(t, Br(p, WithContext("theme", "dark")))
	if p.renders != 0 {
		t.Errorf("void element rendered a child %d times", p.renders)
	}
}

func TestAllFalseAttributesLeaveNoTrailingSpace(t *testing.T) {
	node := Input(Disabled(false), Checked(false), Hidden(false))
	if got := mustHTML(t, node); got != "<input>" {
		t.Errorf("got %q, want %q", got, "<input>")
	}
	if !node.HasAttributes() {
		t.Error("HasAttributes should count false booleans")
	}
}

func TestElementClassesMergeIntoClassAttribute(t *testing.T) {
	node := Div(Class("card"))
	node.AppendClasses("wide", "dark")
	if got, want := mustHTML(t, node), `<div class="card wide dark"></div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestContextPropagatesThroughElements(t *testing.T) {
	p := &recorder{}
	root := Div(WithContext("theme", "dark"), Section(Article(p)))

	if got, want := mustHTML(t, root), "<div><section><article><span>dark</span></article></section></div>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if p.renders != 1 {
		t.Errorf("component rendered %d times, want 1", p.renders)
	}
}

func TestNearestContextWins(t *testing.T) {
	p := &recorder{}
	root := Div(WithContext("theme", "dark"), Section(WithContext("theme", "light"), p))

	if got, want := mustHTML(t, root), "<div><section><span>light</span></section></div>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestContextIsPushedNotShared(t *testing.T) {
	inner := Section()
	root := Div(WithContext("theme", "dark"), inner)
	mustHTML(t, root)

	if _, ok := inner.Context()["theme"]; ok {
		t.Error("context should be pushed to descendants, not copied into the child element")
	}
}

func TestStyleWithTheme(t *testing.T) {
	p := &recorder{}
	node := StyleWithTheme("p{}", "solar", p)

	if got, want := mustHTML(t, node), "<style>p{}<span>solar</span></style>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestComponentChildErrors(t *testing.T) {
	tests := []struct {
		name    string
		node    *Element
		wantErr error
	}{
		{
			name:    "no render method",
			node:    Div(ChildOf(struct{ X int }{1})),
			wantErr: ErrMissingRenderCapability,
		},
		{
			name:    "no context store",
			node:    Div(WithContext("theme", "dark"), renderOnly{}),
			wantErr: ErrMissingContextCapability,
		},
		{
			name:    "render result is not text",
			node:    Div(&selfish{}),
			wantErr: ErrNonStringRenderResult,
		},
		{
			name:    "error from deep child",
			node:    Div(Ul(Li(&selfish{}))),
			wantErr: ErrNonStringRenderResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.node.ToHTML()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if out != "" {
				t.Errorf("failed render produced output %q", out)
			}
		})
	}
}

func TestComponentWithoutContextStoreRendersWhenNoContext(t *testing.T) {
	if got, want := mustHTML(t, Div(renderOnly{})), "<div><b>bare</b></div>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestComponentRenderErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	node := Div(failing{err: boom})
	if _, err := node.ToHTML(); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
}

type failing struct{ err error }

func (f failing) Render() (Component, error) { return nil, f.err }

func TestElementString(t *testing.T) {
	tests := []struct {
		node *Element
		want string
	}{
		{Div(), "<div></div>"},
		{Div(ID("x"), "child"), `<div id="x">...</div>`},
		{Br(), "<br>"},
	}
	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestElementAccessors(t *testing.T) {
	node := P(ID("x"), "only")
	if !node.IsSimple() {
		t.Error("single text child should be simple")
	}
	if Div(B("x")).IsSimple() {
		t.Error("element child should not be simple")
	}
	if node.Len() != 1 {
		t.Errorf("Len = %d, want 1", node.Len())
	}

	attrs := node.Attrs()
	attrs["id"] = StringValue("changed")
	if got := mustHTML(t, node); got != `<p id="x">only</p>` {
		t.Errorf("Attrs() exposed internal map: %q", got)
	}

	var nilElement *Element
	if out, err := nilElement.ToHTML(); out != "" || err != nil {
		t.Errorf("nil element = %q, %v", out, err)
	}
}

func TestElementIsItsOwnFixedPoint(t *testing.T) {
	node := Div()
	out, err := node.Render()
	if err != nil {
		t.Fatal(err)
	}
	if out != Component(node) {
		t.Error("Render should return the receiver")
	}
}
