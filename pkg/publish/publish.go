package publish

import (
	"bytes"
	"context"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/vdom"
)

// ContentTypeHTML is the content type of every published document.
const ContentTypeHTML = "text/html; charset=utf-8"

// Store is the interface for publish backends.
type Store interface {
	// Put stores obj under key and returns where it can be found.
	Put(ctx context.Context, key string, obj *Object) (location string, err error)
}

// Object is one rendered document ready for storage.
type Object struct {
	// Body is the stored bytes, compressed when ContentEncoding is set.
	Body []byte

	// ContentType is the MIME type of the uncompressed document.
	ContentType string

	// ContentEncoding is "gzip" for compressed bodies, otherwise empty.
	ContentEncoding string

	// Metadata is stored alongside the object.
	Metadata map[string]string
}

// Result describes a published document.
type Result struct {
	// Key is the object key, including the store's prefix if any.
	Key string

	// Location is where the store put the document.
	Location string

	// Stats are the render statistics.
	Stats render.Stats

	// Size is the number of stored bytes.
	Size int
}

// Publisher renders documents and hands them to a Store.
type Publisher struct {
	store    Store
	renderer *render.Renderer
	gzip     bool
	logger   *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithGzip compresses documents before storing them.
func WithGzip(enabled bool) Option {
	return func(p *Publisher) {
		p.gzip = enabled
	}
}

// WithRenderer sets the renderer used for documents.
func WithRenderer(r *render.Renderer) Option {
	return func(p *Publisher) {
		p.renderer = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New creates a Publisher writing to store.
func New(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.renderer == nil {
		p.renderer = render.NewRenderer(render.RendererConfig{Logger: p.logger})
	}
	return p
}

// Publish renders root and stores it under key. An empty key gets a
// random name. Nothing is stored unless the document rendered.
func (p *Publisher) Publish(ctx context.Context, key string, root vdom.Component) (*Result, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	stats, err := p.renderer.Render(&buf, root)
	if err != nil {
		return nil, err
	}

	obj := &Object{
		Body:        buf.Bytes(),
		ContentType: ContentTypeHTML,
		Metadata: map[string]string{
			"rendered-at":       time.Now().UTC().Format(time.RFC3339),
			"render-iterations": strconv.Itoa(stats.Iterations),
		},
	}
	if p.gzip {
		if obj.Body, err = compress(obj.Body); err != nil {
			return nil, errors.New("E120").WithDetail(key).Wrap(err)
		}
		obj.ContentEncoding = "gzip"
	}

	location, err := p.store.Put(ctx, key, obj)
	if err != nil {
		return nil, errors.FromError(err, "E120")
	}

	p.logger.Info("document published",
		"key", key,
		"location", location,
		"bytes", len(obj.Body),
		"gzip", p.gzip,
	)
	return &Result{Key: key, Location: location, Stats: stats, Size: len(obj.Body)}, nil
}

// normalizeKey cleans key into a relative slash path ending in a file name.
func normalizeKey(key string) (string, error) {
	if key == "" {
		return uuid.NewString() + ".html", nil
	}
	clean := path.Clean("/" + strings.ReplaceAll(key, `\`, "/"))[1:]
	if clean == "" || strings.HasSuffix(key, "/") {
		return "", errors.New("E120").WithDetailf("key %q does not name a file", key)
	}
	return clean, nil
}

func compress(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(body); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
