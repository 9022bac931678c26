package vdom

// tagSpec describes the fixed shape of a known tag.
type tagSpec struct {
	header string
	void   bool
}

// doctype is emitted once before the <html> element.
const doctype = "<!doctype html>"

// tags are the tags whose shape differs from a plain element.
var tags = map[string]tagSpec{
	"html":   {header: doctype},
	"area":   {void: true},
	"base":   {void: true},
	"br":     {void: true},
	"col":    {void: true},
	"embed":  {void: true},
	"hr":     {void: true},
	"img":    {void: true},
	"input":  {void: true},
	"link":   {void: true},
	"meta":   {void: true},
	"param":  {void: true},
	"source": {void: true},
	"track":  {void: true},
	"wbr":    {void: true},
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return tags[tag].void
}

// createElement creates a new Element with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Attrs, Child, []Child, *Element,
// []*Element, ContextEntry, Context, string, numbers, bool or Component.
// Any other value is kept as an opaque component child.
func createElement(tag string, args []any) *Element {
	spec := tags[tag]
	e := &Element{
		tag:    tag,
		header: spec.header,
		void:   spec.void,
		attrs:  make(Attrs),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue

		case Attr:
			if !v.IsEmpty() {
				e.attrs[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					e.attrs[a.Key] = a.Value
				}
			}

		case Attrs:
			for key, value := range v {
				e.attrs[key] = value
			}

		case Child:
			e.children = append(e.children, v)

		case []Child:
			e.children = append(e.children, v...)

		case *Element:
			if v != nil {
				e.children = append(e.children, NodeChild(v))
			}

		case []*Element:
			for _, child := range v {
				if child != nil {
					e.children = append(e.children, NodeChild(child))
				}
			}

		case ContextEntry:
			e.Context()[v.Key] = v.Value

		case Context:
			e.UpdateContext(v)

		case Component:
			e.children = append(e.children, ComponentChild(v))

		default:
			e.children = append(e.children, ChildOf(v))
		}
	}

	return e
}

// El creates an element for any tag, applying the known header and void
// shape of catalogued tags.
func El(tag string, args ...any) *Element {
	return createElement(tag, args)
}

// NewElement creates an element with an explicit shape, for tags the
// catalog does not know.
func NewElement(tag, header string, void bool, args ...any) *Element {
	e := createElement(tag, args)
	e.header = header
	e.void = void
	return e
}

// Document structure elements

func Html(args ...any) *Element     { return createElement("html", args) }
func Head(args ...any) *Element     { return createElement("head", args) }
func Body(args ...any) *Element     { return createElement("body", args) }
func Title(args ...any) *Element    { return createElement("title", args) }
func Meta(args ...any) *Element     { return createElement("meta", args) }
func Link(args ...any) *Element     { return createElement("link", args) }
func BaseTag(args ...any) *Element  { return createElement("base", args) }
func Script(args ...any) *Element   { return createElement("script", args) }
func Noscript(args ...any) *Element { return createElement("noscript", args) }
func Template(args ...any) *Element { return createElement("template", args) }

// Style creates a <style> element whose single child is the stylesheet.
func Style(css string, args ...any) *Element {
	return createElement("style", append([]any{RawText(css)}, args...))
}

// StyleWithTheme creates a <style> element carrying a theme in its context.
// Components rendered inside read it back with Context()["theme"].
func StyleWithTheme(css string, theme any, args ...any) *Element {
	e := Style(css, args...)
	if theme != nil {
		e.Context()["theme"] = theme
	}
	return e
}

// Content sectioning elements

func Header(args ...any) *Element  { return createElement("header", args) }
func Footer(args ...any) *Element  { return createElement("footer", args) }
func Main(args ...any) *Element    { return createElement("main", args) }
func Nav(args ...any) *Element     { return createElement("nav", args) }
func Section(args ...any) *Element { return createElement("section", args) }
func Article(args ...any) *Element { return createElement("article", args) }
func Aside(args ...any) *Element   { return createElement("aside", args) }
func Address(args ...any) *Element { return createElement("address", args) }
func Search(args ...any) *Element  { return createElement("search", args) }
func H1(args ...any) *Element      { return createElement("h1", args) }
func H2(args ...any) *Element      { return createElement("h2", args) }
func H3(args ...any) *Element      { return createElement("h3", args) }
func H4(args ...any) *Element      { return createElement("h4", args) }
func H5(args ...any) *Element      { return createElement("h5", args) }
func H6(args ...any) *Element      { return createElement("h6", args) }
func Hgroup(args ...any) *Element  { return createElement("hgroup", args) }

// Text content elements

func Div(args ...any) *Element        { return createElement("div", args) }
func P(args ...any) *Element          { return createElement("p", args) }
func Span(args ...any) *Element       { return createElement("span", args) }
func Pre(args ...any) *Element        { return createElement("pre", args) }
func Blockquote(args ...any) *Element { return createElement("blockquote", args) }
func Ul(args ...any) *Element         { return createElement("ul", args) }
func Ol(args ...any) *Element         { return createElement("ol", args) }
func Li(args ...any) *Element         { return createElement("li", args) }
func Dl(args ...any) *Element         { return createElement("dl", args) }
func Dt(args ...any) *Element         { return createElement("dt", args) }
func Dd(args ...any) *Element         { return createElement("dd", args) }
func Hr(args ...any) *Element         { return createElement("hr", args) }
func Figure(args ...any) *Element     { return createElement("figure", args) }
func Figcaption(args ...any) *Element { return createElement("figcaption", args) }
func Menu(args ...any) *Element       { return createElement("menu", args) }

// Inline text semantics

func A(args ...any) *Element      { return createElement("a", args) }
func Strong(args ...any) *Element { return createElement("strong", args) }
func Em(args ...any) *Element     { return createElement("em", args) }
func B(args ...any) *Element      { return createElement("b", args) }
func I(args ...any) *Element      { return createElement("i", args) }
func U(args ...any) *Element      { return createElement("u", args) }
func S(args ...any) *Element      { return createElement("s", args) }
func Big(args ...any) *Element    { return createElement("big", args) }
func Small(args ...any) *Element  { return createElement("small", args) }
func Mark(args ...any) *Element   { return createElement("mark", args) }
func Del(args ...any) *Element    { return createElement("del", args) }
func Ins(args ...any) *Element    { return createElement("ins", args) }
func Sub(args ...any) *Element    { return createElement("sub", args) }
func Sup(args ...any) *Element    { return createElement("sup", args) }
func Code(args ...any) *Element   { return createElement("code", args) }
func Kbd(args ...any) *Element    { return createElement("kbd", args) }
func Samp(args ...any) *Element   { return createElement("samp", args) }
func Var(args ...any) *Element    { return createElement("var", args) }
func Abbr(args ...any) *Element   { return createElement("abbr", args) }
func Time_(args ...any) *Element  { return createElement("time", args) }
func Cite(args ...any) *Element   { return createElement("cite", args) }
func Q(args ...any) *Element      { return createElement("q", args) }
func Dfn(args ...any) *Element    { return createElement("dfn", args) }
func Ruby(args ...any) *Element   { return createElement("ruby", args) }
func Rt(args ...any) *Element     { return createElement("rt", args) }
func Rp(args ...any) *Element     { return createElement("rp", args) }
func Bdi(args ...any) *Element    { return createElement("bdi", args) }
func Bdo(args ...any) *Element    { return createElement("bdo", args) }

// DataElement creates a <data> element.
// Note: For data-* attributes, use Data(key, value) from attributes.go instead.
func DataElement(args ...any) *Element { return createElement("data", args) }
func Br(args ...any) *Element          { return createElement("br", args) }
func Wbr(args ...any) *Element         { return createElement("wbr", args) }

// Form elements

func Form(args ...any) *Element     { return createElement("form", args) }
func Input(args ...any) *Element    { return createElement("input", args) }
func Textarea(args ...any) *Element { return createElement("textarea", args) }
func Select(args ...any) *Element   { return createElement("select", args) }
func Option(args ...any) *Element   { return createElement("option", args) }
func Optgroup(args ...any) *Element { return createElement("optgroup", args) }
func Button(args ...any) *Element   { return createElement("button", args) }
func Label(args ...any) *Element    { return createElement("label", args) }
func Fieldset(args ...any) *Element { return createElement("fieldset", args) }
func Legend(args ...any) *Element   { return createElement("legend", args) }
func Datalist(args ...any) *Element { return createElement("datalist", args) }
func Output(args ...any) *Element   { return createElement("output", args) }
func Progress(args ...any) *Element { return createElement("progress", args) }
func Meter(args ...any) *Element    { return createElement("meter", args) }

// Table elements

func Table(args ...any) *Element    { return createElement("table", args) }
func Thead(args ...any) *Element    { return createElement("thead", args) }
func Tbody(args ...any) *Element    { return createElement("tbody", args) }
func Tfoot(args ...any) *Element    { return createElement("tfoot", args) }
func Tr(args ...any) *Element       { return createElement("tr", args) }
func Th(args ...any) *Element       { return createElement("th", args) }
func Td(args ...any) *Element       { return createElement("td", args) }
func Caption(args ...any) *Element  { return createElement("caption", args) }
func Colgroup(args ...any) *Element { return createElement("colgroup", args) }
func Col(args ...any) *Element      { return createElement("col", args) }

// Media elements

func Img(args ...any) *Element      { return createElement("img", args) }
func Picture(args ...any) *Element  { return createElement("picture", args) }
func Source(args ...any) *Element   { return createElement("source", args) }
func Video(args ...any) *Element    { return createElement("video", args) }
func Audio(args ...any) *Element    { return createElement("audio", args) }
func Track(args ...any) *Element    { return createElement("track", args) }
func Iframe(args ...any) *Element   { return createElement("iframe", args) }
func Embed(args ...any) *Element    { return createElement("embed", args) }
func Object(args ...any) *Element   { return createElement("object", args) }
func Param(args ...any) *Element    { return createElement("param", args) }
func Canvas(args ...any) *Element   { return createElement("canvas", args) }
func Map_(args ...any) *Element     { return createElement("map", args) }
func Area(args ...any) *Element     { return createElement("area", args) }
func Svg(args ...any) *Element      { return createElement("svg", args) }
func Circle(args ...any) *Element   { return createElement("circle", args) }
func Line(args ...any) *Element     { return createElement("line", args) }
func Path(args ...any) *Element     { return createElement("path", args) }
func Polyline(args ...any) *Element { return createElement("polyline", args) }

// Interactive elements

func Details(args ...any) *Element { return createElement("details", args) }
func Summary(args ...any) *Element { return createElement("summary", args) }
func Dialog(args ...any) *Element  { return createElement("dialog", args) }
