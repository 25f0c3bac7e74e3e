package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTracedRouter(t *testing.T, opts ...OTelOption) (*tracetest.SpanRecorder, http.Handler) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Tracing(append([]OTelOption{WithTracerProvider(tp)}, opts...)...))
	r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		if !trace.SpanContextFromContext(r.Context()).IsValid() {
			t.Error("handler context should carry the span")
		}
		w.Write([]byte("ok"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})
	return rec, r
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestTracingCreatesServerSpan(t *testing.T) {
	rec, h := newTracedRouter(t)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin", nil))

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "HTTP GET /admin" {
		t.Errorf("span name = %q", span.Name())
	}
	if span.SpanKind() != trace.SpanKindServer {
		t.Errorf("span kind = %v", span.SpanKind())
	}
	attrs := spanAttrs(span)
	if attrs["http.route"].AsString() != "/admin" {
		t.Errorf("http.route = %v", attrs["http.route"])
	}
	if attrs["http.status_code"].AsInt64() != 200 {
		t.Errorf("http.status_code = %v", attrs["http.status_code"])
	}
	if attrs["http.request_id"].AsString() == "" {
		t.Error("http.request_id should be set")
	}
	if span.Status().Code == codes.Error {
		t.Error("successful request should not be an error span")
	}
}

func TestTracingMarksServerErrors(t *testing.T) {
	rec, h := newTracedRouter(t)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("status = %v, want Error", spans[0].Status())
	}
}

func TestTracingFilter(t *testing.T) {
	rec, h := newTracedRouter(t, WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if n := len(rec.Ended()); n != 0 {
		t.Errorf("filtered request produced %d spans", n)
	}
}

func TestTracingExtractsParent(t *testing.T) {
	rec, h := newTracedRouter(t, WithPropagator(propagation.TraceContext{}), WithTracerName("test"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if got := spans[0].Parent().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("parent trace id = %s", got)
	}
	if spans[0].InstrumentationScope().Name != "test" {
		t.Errorf("tracer name = %q", spans[0].InstrumentationScope().Name)
	}
}
