package vdom

import (
	"strconv"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value AttrValue) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute creates an attribute with an explicit value.
func Attribute(key string, value AttrValue) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", StringValue(id)) }

// Class sets the class attribute as a class list.
func Class(classes ...string) Attr { return attr("class", ClassListValue(classes...)) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(styles map[string]string) Attr { return attr("style", StyleMapValue(styles)) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, StringValue(value)) }

// Aria creates an aria-* attribute.
func Aria(key, value string) Attr { return attr("aria-"+key, StringValue(value)) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", StringValue(role)) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", IntValue(int64(index))) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", StringValue(title)) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", StringValue(lang)) }

// Link and resource attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", StringValue(url)) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", StringValue(url)) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", StringValue(text)) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", StringValue(rel)) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", StringValue(target)) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", StringValue(charset)) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", StringValue(content)) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", IntValue(int64(w))) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", IntValue(int64(h))) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", StringValue(t)) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", StringValue(name)) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", StringValue(value)) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", StringValue(text)) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", StringValue(id)) }

// Action sets the action attribute.
func Action(url string) Attr { return attr("action", StringValue(url)) }

// Method sets the method attribute.
func Method(method string) Attr { return attr("method", StringValue(strings.ToLower(method))) }

// Min sets the min attribute.
func Min(v float64) Attr { return attr("min", FloatValue(v)) }

// Max sets the max attribute.
func Max(v float64) Attr { return attr("max", FloatValue(v)) }

// Step sets the step attribute.
func Step(v float64) Attr { return attr("step", FloatValue(v)) }

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return attr("colspan", IntValue(int64(n))) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) Attr { return attr("rowspan", IntValue(int64(n))) }

// Boolean attributes. A false value omits the attribute entirely.

// Disabled sets the disabled attribute.
func Disabled(on bool) Attr { return attr("disabled", BoolValue(on)) }

// Checked sets the checked attribute.
func Checked(on bool) Attr { return attr("checked", BoolValue(on)) }

// Selected sets the selected attribute.
func Selected(on bool) Attr { return attr("selected", BoolValue(on)) }

// Required sets the required attribute.
func Required(on bool) Attr { return attr("required", BoolValue(on)) }

// Readonly sets the readonly attribute.
func Readonly(on bool) Attr { return attr("readonly", BoolValue(on)) }

// Hidden sets the hidden attribute.
func Hidden(on bool) Attr { return attr("hidden", BoolValue(on)) }

// Multiple sets the multiple attribute.
func Multiple(on bool) Attr { return attr("multiple", BoolValue(on)) }

// Htmx attributes

// HxGet sets the hx-get attribute.
func HxGet(url string) Attr { return attr("hx-get", StringValue(url)) }

// HxPost sets the hx-post attribute.
func HxPost(url string) Attr { return attr("hx-post", StringValue(url)) }

// HxTarget sets the hx-target attribute.
func HxTarget(selector string) Attr { return attr("hx-target", StringValue(selector)) }

// HxSwap sets the hx-swap attribute.
func HxSwap(strategy string) Attr { return attr("hx-swap", StringValue(strategy)) }

// HxTrigger sets the hx-trigger attribute.
func HxTrigger(trigger string) Attr { return attr("hx-trigger", StringValue(trigger)) }

// HxBoost sets the hx-boost attribute to "true" or "false".
func HxBoost(on bool) Attr { return attr("hx-boost", StringValue(strconv.FormatBool(on))) }
