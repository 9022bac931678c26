package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/render"
)

// recordingProvider hands out a tracer that keeps every span it starts.
type recordingProvider struct {
	embedded.TracerProvider
	tracer *recordingTracer
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{tracer: &recordingTracer{}}
}

func (p *recordingProvider) Tracer(name string, _ ...trace.TracerOption) trace.Tracer {
	p.tracer.name = name
	return p.tracer
}

type recordingTracer struct {
	embedded.Tracer
	name  string
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordingSpan{name: name, kind: cfg.SpanKind(), attrs: cfg.Attributes()}
	t.spans = append(t.spans, span)
	return trace.ContextWithSpan(ctx, span), span
}

type recordingSpan struct {
	noop.Span
	name   string
	kind   trace.SpanKind
	attrs  []attribute.KeyValue
	status codes.Code
	errs   []error
	ended  bool
}

func (s *recordingSpan) SetName(name string)                           { s.name = name }
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue)        { s.attrs = append(s.attrs, kv...) }
func (s *recordingSpan) SetStatus(code codes.Code, _ string)           { s.status = code }
func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) { s.errs = append(s.errs, err) }
func (s *recordingSpan) End(...trace.SpanEndOption)                    { s.ended = true }

func (s *recordingSpan) attr(key string) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracingNamesSpanAfterRoute(t *testing.T) {
	provider := newRecordingProvider()

	r := chi.NewRouter()
	r.Use(Tracing(
		WithTracerProvider(provider),
		WithTracerName("test"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))
	r.Get("/docs/{name}", func(w http.ResponseWriter, r *http.Request) {
		if trace.SpanFromContext(r.Context()) == nil {
			t.Error("expected span in request context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/docs/home", nil))

	if provider.tracer.name != "test" {
		t.Errorf("tracer name = %q, want %q", provider.tracer.name, "test")
	}
	if len(provider.tracer.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(provider.tracer.spans))
	}
	span := provider.tracer.spans[0]
	if span.name != "GET /docs/{name}" {
		t.Errorf("span name = %q, want %q", span.name, "GET /docs/{name}")
	}
	if span.kind != trace.SpanKindServer {
		t.Errorf("span kind = %v, want server", span.kind)
	}
	if v, ok := span.attr("http.status_code"); !ok || v.AsInt64() != http.StatusTeapot {
		t.Errorf("http.status_code = %v", v)
	}
	if v, ok := span.attr("test.attr"); !ok || v.AsString() != "ok" {
		t.Errorf("test.attr = %v", v)
	}
	if span.status != codes.Ok || !span.ended {
		t.Errorf("status = %v, ended = %v", span.status, span.ended)
	}
}

func TestTracingMarksServerErrors(t *testing.T) {
	provider := newRecordingProvider()
	handler := Tracing(WithTracerProvider(provider))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/render", nil))

	span := provider.tracer.spans[0]
	if span.status != codes.Error {
		t.Errorf("status = %v, want Error", span.status)
	}
	if span.name != "POST /render" {
		t.Errorf("span name = %q, want %q", span.name, "POST /render")
	}
}

func TestTracingFilter(t *testing.T) {
	provider := newRecordingProvider()
	called := false
	handler := Tracing(
		WithTracerProvider(provider),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !called {
		t.Error("filtered request should still reach the handler")
	}
	if len(provider.tracer.spans) != 0 {
		t.Errorf("spans = %d, want 0", len(provider.tracer.spans))
	}
}

func TestRecordRender(t *testing.T) {
	span := &recordingSpan{}
	ctx := trace.ContextWithSpan(context.Background(), span)

	RecordRender(ctx, render.Stats{Iterations: 2, Tag: "div", Bytes: 11}, errors.New("E005"))

	if v, _ := span.attr("markup.iterations"); v.AsInt64() != 2 {
		t.Errorf("markup.iterations = %v, want 2", v)
	}
	if v, _ := span.attr("markup.tag"); v.AsString() != "div" {
		t.Errorf("markup.tag = %v, want div", v)
	}
	if v, _ := span.attr("markup.error_code"); v.AsString() != "E005" {
		t.Errorf("markup.error_code = %v, want E005", v)
	}
	if len(span.errs) != 1 {
		t.Errorf("recorded errors = %d, want 1", len(span.errs))
	}
}
