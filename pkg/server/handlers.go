package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	markuperrors "github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/middleware"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/vdom"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

// documentExtensions are tried in order by /docs/{name}.
var documentExtensions = []string{".json", ".yaml", ".yml"}

// HTML renders component and writes it with the given status. When
// rendering fails nothing of the document is written; the response is a
// JSON error body with status 500 and the error is returned.
func HTML(w http.ResponseWriter, status int, component vdom.Component) error {
	text, err := render.ToHTML(component)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return err
	}
	writeHTML(w, status, text)
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

// handleRender decodes the request body as a document and renders it.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxDocumentSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, http.StatusRequestEntityTooLarge,
				markuperrors.New("E110").WithDetailf("document exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.fail(w, r, http.StatusBadRequest, markuperrors.New("E110").Wrap(err))
		return
	}

	root, err := s.decoder.Decode(data, "request")
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}

	text, err := s.renderDocument(r.Context(), root)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	writeHTML(w, http.StatusOK, text)
}

// handleDocument renders a document file from the documents directory.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	path, ok := s.documentPath(name)
	if !ok {
		s.fail(w, r, http.StatusNotFound, markuperrors.New("E112").
			WithDetailf("no document named %q", name))
		return
	}

	root, err := s.decoder.DecodeFile(path)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}

	text, err := s.renderDocument(r.Context(), root)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	writeHTML(w, http.StatusOK, text)
}

// documentPath finds name with one of the document extensions. Names that
// could escape the documents directory are rejected.
func (s *Server) documentPath(name string) (string, bool) {
	if s.config.DocumentsDir == "" || name == "" || name == "." || name == ".." {
		return "", false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", false
	}

	for _, ext := range documentExtensions {
		path := filepath.Join(s.config.DocumentsDir, name+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// renderDocument renders root and annotates the request span.
func (s *Server) renderDocument(ctx context.Context, root vdom.Component) (string, error) {
	var buf bytes.Buffer
	stats, err := s.renderer.Render(&buf, root)
	middleware.RecordRender(ctx, stats, err)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// fail logs err and writes it as a JSON body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	attrs := []any{
		"error", err,
		"status", status,
		"path", r.URL.Path,
		"request_id", chimw.GetReqID(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", attrs...)
	} else {
		s.logger.Warn("request rejected", attrs...)
	}
	writeError(w, status, err)
}

// statusFor maps a markup error code to an HTTP status.
func statusFor(err error) int {
	var me *markuperrors.MarkupError
	if !errors.As(err, &me) {
		return http.StatusInternalServerError
	}
	switch me.Code {
	case "E001", "E110", "E111":
		return http.StatusBadRequest
	case "E112":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorBody returns the JSON object for err. Errors without a code are
// reported as server failures.
func errorBody(err error) string {
	return markuperrors.FromError(err, "E130").FormatJSON()
}

func writeHTML(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, errorBody(err))
}

// logRequests logs each request at Info once it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
