package document

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/vdom"
)

// Options controls how documents become trees.
type Options struct {
	// EscapeText escapes plain text nodes. When false they are inserted verbatim.
	EscapeText bool

	// SanitizeHTML runs raw markup nodes through an HTML sanitizer.
	SanitizeHTML bool

	// Registry resolves component nodes. Nil means no components are known.
	Registry *Registry
}

// DefaultOptions escapes text and inserts raw markup unchanged.
func DefaultOptions() Options {
	return Options{EscapeText: true}
}

// Decoder turns JSON or YAML documents into renderable trees.
type Decoder struct {
	opts Options
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts Options) *Decoder {
	return &Decoder{opts: opts}
}

// DecodeFile reads and decodes a .json, .yaml or .yml file.
func (d *Decoder) DecodeFile(path string) (vdom.Component, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, errors.New("E112").
			WithDetailf("%s: unsupported extension %q", path, ext).
			WithSuggestion("Use a .json, .yaml or .yml file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E112").WithDetail(path).Wrap(err)
	}
	return d.Decode(data, path)
}

// Decode decodes one document. name is used in error locations.
// YAML is a superset of JSON, so both are accepted.
func (d *Decoder) Decode(data []byte, name string) (vdom.Component, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("E110").WithDetailf("%s: %v", name, err).Wrap(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("E110").WithDetailf("%s: empty document", name)
	}

	s := &state{opts: d.opts, name: name, src: data}
	root := doc.Content[0]
	child, ok, err := s.child(root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.fail(root, "E110", "document root is null")
	}

	switch child.Kind() {
	case vdom.ChildNode:
		return child.Element(), nil
	case vdom.ChildComponent:
		return child.Component().(vdom.Component), nil
	default:
		return vdom.Fragment(child), nil
	}
}

// state carries the options and document through one decode.
type state struct {
	opts Options
	name string
	src  []byte
}

var knownKeys = map[string]bool{
	"tag": true, "header": true, "void": true, "attrs": true, "classes": true,
	"context": true, "children": true, "component": true, "props": true,
	"text": true, "raw": true,
}

func (s *state) fail(n *yaml.Node, code, format string, args ...any) *errors.MarkupError {
	return s.at(errors.New(code).WithDetailf(format, args...), n)
}

// at points err at n and attaches the surrounding document lines.
func (s *state) at(err *errors.MarkupError, n *yaml.Node) *errors.MarkupError {
	return err.WithLocation(s.name, n.Line, n.Column).WithSource(s.src)
}

// child decodes one child node. ok is false for null nodes, which are skipped.
func (s *state) child(n *yaml.Node) (c vdom.Child, ok bool, err error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return s.scalar(n)
	case yaml.MappingNode:
		fields, err := s.fields(n)
		if err != nil {
			return vdom.Child{}, false, err
		}
		switch {
		case fields["tag"] != nil:
			e, err := s.element(n, fields)
			if err != nil {
				return vdom.Child{}, false, err
			}
			return vdom.NodeChild(e), true, nil
		case fields["component"] != nil:
			comp, err := s.component(n, fields)
			if err != nil {
				return vdom.Child{}, false, err
			}
			return vdom.ComponentChild(comp), true, nil
		case fields["text"] != nil:
			text, err := s.only(n, fields, "text")
			if err != nil {
				return vdom.Child{}, false, err
			}
			return s.opts.textChild(text), true, nil
		case fields["raw"] != nil:
			raw, err := s.only(n, fields, "raw")
			if err != nil {
				return vdom.Child{}, false, err
			}
			return s.opts.rawChild(raw), true, nil
		default:
			return vdom.Child{}, false, s.fail(n, "E110", "node needs one of tag, component, text or raw")
		}
	default:
		return vdom.Child{}, false, s.fail(n, "E110", "unexpected %s", kindName(n))
	}
}

func (s *state) scalar(n *yaml.Node) (vdom.Child, bool, error) {
	switch n.ShortTag() {
	case "!!null":
		return vdom.Child{}, false, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return vdom.Child{}, false, s.fail(n, "E110", "%v", err)
		}
		return vdom.Bool(b), true, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return vdom.Child{}, false, s.fail(n, "E110", "%v", err)
		}
		return vdom.Int(i), true, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return vdom.Child{}, false, s.fail(n, "E110", "%v", err)
		}
		return vdom.Float(f), true, nil
	default:
		return s.opts.textChild(n.Value), true, nil
	}
}

// fields indexes the keys of a mapping node, rejecting unknown and
// repeated keys.
func (s *state) fields(n *yaml.Node) (map[string]*yaml.Node, error) {
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if !knownKeys[key.Value] {
			return nil, s.fail(key, "E110", "unknown key %q", key.Value)
		}
		if fields[key.Value] != nil {
			return nil, s.fail(key, "E110", "duplicate key %q", key.Value)
		}
		fields[key.Value] = value
	}
	return fields, nil
}

// only returns the string under key, failing if any other key is present.
func (s *state) only(n *yaml.Node, fields map[string]*yaml.Node, key string) (string, error) {
	if len(fields) != 1 {
		return "", s.fail(n, "E110", "a %s node takes no other keys", key)
	}
	return s.str(fields[key], key)
}

func (s *state) str(n *yaml.Node, key string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", s.fail(n, "E110", "%s must be a string, got %s", key, kindName(n))
	}
	return n.Value, nil
}

func (s *state) element(n *yaml.Node, fields map[string]*yaml.Node) (*vdom.Element, error) {
	for _, key := range []string{"component", "props", "text", "raw"} {
		if fields[key] != nil {
			return nil, s.fail(n, "E110", "tag cannot be combined with %s", key)
		}
	}

	tag, err := s.str(fields["tag"], "tag")
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return nil, s.fail(fields["tag"], "E110", "tag must not be empty")
	}

	shape := vdom.El(tag)
	header, void := shape.Header(), shape.IsVoid()
	if h := fields["header"]; h != nil {
		if header, err = s.str(h, "header"); err != nil {
			return nil, err
		}
	}
	if v := fields["void"]; v != nil {
		if err := v.Decode(&void); err != nil {
			return nil, s.fail(v, "E110", "void must be a boolean")
		}
	}

	attrs, err := s.attrs(fields["attrs"])
	if err != nil {
		return nil, err
	}
	ctx, err := s.context(fields["context"])
	if err != nil {
		return nil, err
	}
	children, err := s.children(fields["children"])
	if err != nil {
		return nil, err
	}
	classes, err := s.classes(fields["classes"])
	if err != nil {
		return nil, err
	}

	e := vdom.NewElement(tag, header, void, attrs, children, ctx)
	e.AppendClasses(classes...)
	return e, nil
}

func (s *state) component(n *yaml.Node, fields map[string]*yaml.Node) (vdom.Component, error) {
	for _, key := range []string{"header", "void", "attrs", "text", "raw"} {
		if fields[key] != nil {
			return nil, s.fail(n, "E110", "component cannot be combined with %s", key)
		}
	}

	name, err := s.str(fields["component"], "component")
	if err != nil {
		return nil, err
	}
	factory, ok := s.opts.Registry.Lookup(name)
	if !ok {
		err := s.fail(fields["component"], "E111", "%q is not registered", name)
		if s.opts.Registry != nil && len(s.opts.Registry.Names()) > 0 {
			err.WithSuggestion("Known components: " + strings.Join(s.opts.Registry.Names(), ", "))
		}
		return nil, err
	}

	var props map[string]any
	if p := fields["props"]; p != nil {
		if p.Kind != yaml.MappingNode {
			return nil, s.fail(p, "E110", "props must be a mapping, got %s", kindName(p))
		}
		if err := p.Decode(&props); err != nil {
			return nil, s.fail(p, "E110", "%v", err)
		}
	}
	children, err := s.children(fields["children"])
	if err != nil {
		return nil, err
	}

	comp, err := factory(props, children)
	if err != nil {
		return nil, s.at(errors.FromError(err, "E110"), n)
	}
	if comp == nil {
		return nil, s.fail(n, "E110", "component %q built nothing", name)
	}

	ctx, err := s.context(fields["context"])
	if err != nil {
		return nil, err
	}
	if len(ctx) > 0 {
		updater, ok := comp.(vdom.ContextUpdater)
		if !ok {
			return nil, s.fail(fields["context"], "E003", "component %q has no context store", name)
		}
		updater.UpdateContext(ctx)
	}

	classes, err := s.classes(fields["classes"])
	if err != nil {
		return nil, err
	}
	if len(classes) > 0 {
		holder, ok := comp.(vdom.ClassHolder)
		if !ok {
			return nil, s.fail(fields["classes"], "E110", "component %q cannot hold classes", name)
		}
		holder.AppendClasses(classes...)
	}

	return comp, nil
}

func (s *state) attrs(n *yaml.Node) (vdom.Attrs, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, s.fail(n, "E110", "attrs must be a mapping, got %s", kindName(n))
	}

	attrs := make(vdom.Attrs, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		var raw any
		if err := value.Decode(&raw); err != nil {
			return nil, s.fail(value, "E110", "%v", err)
		}
		v, err := vdom.ValueOf(raw)
		if err != nil {
			return nil, s.at(errors.FromError(err, "E001").
				WithDetailf("attribute %q has a value of type %T", key.Value, raw), value)
		}
		attrs[key.Value] = v
	}
	return attrs, nil
}

func (s *state) context(n *yaml.Node) (vdom.Context, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, s.fail(n, "E110", "context must be a mapping, got %s", kindName(n))
	}
	var m map[string]any
	if err := n.Decode(&m); err != nil {
		return nil, s.fail(n, "E110", "%v", err)
	}
	return vdom.Context(m), nil
}

func (s *state) children(n *yaml.Node) ([]vdom.Child, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, s.fail(n, "E110", "children must be a sequence, got %s", kindName(n))
	}

	children := make([]vdom.Child, 0, len(n.Content))
	for _, item := range n.Content {
		c, ok, err := s.child(item)
		if err != nil {
			return nil, err
		}
		if ok {
			children = append(children, c)
		}
	}
	return children, nil
}

func (s *state) classes(n *yaml.Node) ([]string, error) {
	if n == nil {
		return nil, nil
	}
	var names []string
	if n.Kind != yaml.SequenceNode || n.Decode(&names) != nil {
		return nil, s.fail(n, "E110", "classes must be a list of strings")
	}
	return names, nil
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "nothing"
	}
}
