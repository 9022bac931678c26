package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/vdom"
)

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsObserveRender(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	renderer := render.NewRenderer(render.RendererConfig{Observers: []render.Observer{m}})

	if _, err := renderer.RenderToString(vdom.P("ok")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _ = render.NewRenderer(render.RendererConfig{Observers: []render.Observer{m}}).
		RenderToString(vdom.Div(struct{}{}))
	m.ObserveRender(render.Stats{}, errors.New("plain"))

	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("success")); got != 1 {
		t.Errorf("success renders = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("error")); got != 2 {
		t.Errorf("error renders = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.renderErrors.WithLabelValues("E002")); got != 1 {
		t.Errorf("E002 errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.renderErrors.WithLabelValues("internal")); got != 1 {
		t.Errorf("internal errors = %v, want 1", got)
	}
	if got := histogramCount(t, m.renderDuration); got != 3 {
		t.Errorf("duration samples = %d, want 3", got)
	}
	if got := histogramCount(t, m.iterations); got != 1 {
		t.Errorf("iteration samples = %d, want 1", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/docs/{name}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") == "missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ok"))
	})

	for _, path := range []string{"/docs/a", "/docs/b", "/docs/missing", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	tests := []struct {
		route, status string
		want          float64
	}{
		{"/docs/{name}", "200", 2},
		{"/docs/{name}", "404", 1},
		{"unmatched", "404", 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(tt.route, tt.status)); got != tt.want {
			t.Errorf("requests{%s,%s} = %v, want %v", tt.route, tt.status, got, tt.want)
		}
	}
}

func TestMetricsConnections(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	m.ConnectionOpened()
	m.ConnectionOpened()
	m.ConnectionClosed()
	if got := testutil.ToFloat64(m.wsConnections); got != 1 {
		t.Errorf("connections = %v, want 1", got)
	}
}

func TestMetricsOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(
		WithRegistry(reg),
		WithNamespace("ns"),
		WithSubsystem("sub"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{0.1, 1}),
	)
	m.ObserveRender(render.Stats{Iterations: 1, Bytes: 10, Duration: time.Millisecond}, nil)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "ns_sub_renders_total" {
			found = true
			labels := mf.GetMetric()[0].GetLabel()
			if len(labels) != 2 || labels[0].GetName() != "env" || labels[0].GetValue() != "test" {
				t.Errorf("labels = %v", labels)
			}
		}
	}
	if !found {
		t.Error("ns_sub_renders_total not registered")
	}
}
