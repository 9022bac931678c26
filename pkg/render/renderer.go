package render

import (
	"bytes"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/vdom"
)

// ErrUnformattableNode is returned when a component chain resolves to a
// node that cannot format itself as markup.
var ErrUnformattableNode = errors.Sentinel("E005")

// RendererConfig configures the renderer.
type RendererConfig struct {
	// Logger receives debug output for each resolved component.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Observers are notified after every render, successful or not.
	Observers []Observer
}

// Stats describes one render.
type Stats struct {
	// Iterations is the number of Render calls made on the chain.
	Iterations int

	// Tag is the tag name of the resolved node.
	Tag string

	// Bytes is the size of the output.
	Bytes int

	// Duration is the wall time spent resolving and formatting.
	Duration time.Duration
}

// Observer is notified of each completed render.
type Observer interface {
	ObserveRender(stats Stats, err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(stats Stats, err error)

// ObserveRender calls f(stats, err).
func (f ObserverFunc) ObserveRender(stats Stats, err error) {
	f(stats, err)
}

// Renderer resolves components to their fixed point and formats the result.
// A Renderer holds no per-render state and may be shared.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		config: config,
		logger: logger,
	}
}

var defaultRenderer = NewRenderer(RendererConfig{})

// ToHTML renders any value exposing a Render method with the default
// renderer. Values without one fail with ErrMissingRenderCapability.
func ToHTML(v any) (string, error) {
	root, ok := v.(vdom.Component)
	if !ok {
		return "", errors.New("E002").WithDetailf("%T has no Render method", v)
	}
	return defaultRenderer.RenderToString(root)
}

// RenderToString renders root to a string.
func (r *Renderer) RenderToString(root vdom.Component) (string, error) {
	var buf bytes.Buffer
	if _, err := r.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders root to w.
func (r *Renderer) RenderToWriter(w io.Writer, root vdom.Component) error {
	_, err := r.Render(w, root)
	return err
}

// Render resolves root and writes the markup to w. Nothing is written
// unless the whole document rendered. Writers with a Flush method are
// flushed after the write.
func (r *Renderer) Render(w io.Writer, root vdom.Component) (Stats, error) {
	start := time.Now()
	var stats Stats

	text, err := r.resolve(root, &stats)
	if err == nil {
		stats.Bytes = len(text)
		if _, err = io.WriteString(w, text); err == nil {
			if f, ok := w.(interface{ Flush() }); ok {
				f.Flush()
			}
		}
	}
	stats.Duration = time.Since(start)

	for _, o := range r.config.Observers {
		o.ObserveRender(stats, err)
	}
	return stats, err
}

// resolve drives root to its fixed point, collecting context and classes
// from every link of the chain, then formats the resolved node.
func (r *Renderer) resolve(root vdom.Component, stats *Stats) (string, error) {
	if isNil(root) {
		return "", errors.New("E002").WithDetail("nil root")
	}

	var classes []string
	rootClasses, _ := root.(vdom.ClassHolder)
	if rootClasses != nil {
		classes = append(classes, rootClasses.Classes()...)
	}

	current := root
	for {
		stats.Iterations++
		next, err := current.Render()
		if err != nil {
			return "", err
		}
		if isNil(next) {
			return "", errors.New("E005").WithDetailf("%T rendered nil", current)
		}
		if identical(next, current) {
			break
		}

		if err := mergeContext(current, next); err != nil {
			return "", err
		}
		if holder, ok := next.(vdom.ClassHolder); ok {
			if added := holder.Classes(); len(added) > 0 {
				classes = append(classes, added...)
				if rootClasses != nil {
					rootClasses.AppendClasses(added...)
				}
			}
		}
		current = next
	}

	node, ok := current.(vdom.Markup)
	if !ok {
		return "", errors.New("E005").WithDetailf("%T is not markup", current)
	}
	stats.Tag = node.TagName()

	r.logger.Debug("component resolved",
		"iterations", stats.Iterations,
		"tag", stats.Tag,
	)

	return format(node, classes)
}

// mergeContext pushes the context of from into to. A link without a
// context store has nothing to push.
func mergeContext(from, to vdom.Component) error {
	holder, ok := from.(vdom.ContextHolder)
	if !ok {
		return nil
	}
	ctx := holder.Context()
	if len(ctx) == 0 {
		return nil
	}
	updater, ok := to.(vdom.ContextUpdater)
	if !ok {
		return errors.New("E003").WithDetailf("%T has no UpdateContext method", to)
	}
	updater.UpdateContext(ctx)
	return nil
}

// format writes the resolved node with the accumulated classes merged into
// its attributes.
func format(node vdom.Markup, classes []string) (string, error) {
	var b strings.Builder

	if header := node.Header(); header != "" {
		b.WriteString(header)
		b.WriteByte('\n')
	}

	children, err := node.FormatChildren()
	if err != nil {
		return "", err
	}

	tag := node.TagName()
	if tag == vdom.HiddenTag {
		b.WriteString(children)
		return b.String(), nil
	}

	b.WriteByte('<')
	b.WriteString(tag)
	if node.HasAttributes() || len(classes) > 0 {
		if attrs := node.FormatAttrs(classes); attrs != "" {
			b.WriteByte(' ')
			b.WriteString(attrs)
		}
	}
	b.WriteByte('>')

	if children == "" && node.IsVoid() {
		return b.String(), nil
	}

	b.WriteString(children)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String(), nil
}

// identical reports whether a and b are the same object. Reference kinds
// compare by address, comparable values by ==. Values of non-comparable
// struct types are never identical.
func identical(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}

func isNil(c vdom.Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
