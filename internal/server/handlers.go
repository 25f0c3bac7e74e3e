package server

import (
	stderrors "errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/plebishub/plebisadmin/internal/admin/footer"
	"github.com/plebishub/plebisadmin/internal/admin/layout"
	"github.com/plebishub/plebisadmin/internal/dev"
	"github.com/plebishub/plebisadmin/internal/errors"
	"github.com/plebishub/plebisadmin/internal/legal"
	"github.com/plebishub/plebisadmin/pkg/render"
)

const contentTypeHTML = "text/html; charset=utf-8"

// DashboardPage builds the dashboard document for a site configuration.
// The CLI render command uses it too.
func DashboardPage(siteTitle, lang string) render.PageData {
	page := layout.Dashboard(siteTitle)
	site := siteTitle
	if site == "" {
		site = layout.DefaultSiteTitle
	}
	return render.PageData{
		Body:  layout.Layout(page),
		Title: page.Title + " | " + site,
		Lang:  lang,
		Meta: []render.MetaTag{
			{Name: "robots", Content: "noindex, nofollow"},
		},
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	page := DashboardPage(s.config.Site.Title, s.config.Site.Lang)
	if s.reload != nil {
		page.Scripts = append(page.Scripts, render.ScriptTag{Inline: dev.ClientScript})
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	err := render.NewStreamingRenderer(w, s.renderer).RenderPage(page)
	s.metrics.RecordRender("dashboard", err)
	if err != nil {
		// Headers are already sent.
		s.logger.ErrorContext(r.Context(), "render dashboard", slog.Any("error", errors.New("E301").Wrap(err)))
	}
}

func (s *Server) handleFooter(w http.ResponseWriter, r *http.Request) {
	html, err := render.NewRenderer(s.renderer).RenderComponent(footer.New())
	s.metrics.RecordRender("footer", err)
	if err != nil {
		s.fail(w, r, errors.New("E301").Wrap(err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	io.WriteString(w, html)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	doc, err := s.store.Open(r.Context(), name)
	switch {
	case err == nil:
	case stderrors.Is(err, legal.ErrInvalidName):
		s.metrics.RecordDocument("invalid")
		s.fail(w, r, errors.New("E202").Wrap(err), http.StatusBadRequest)
		return
	case stderrors.Is(err, legal.ErrNotFound):
		s.metrics.RecordDocument("not_found")
		s.fail(w, r, errors.New("E201").Wrap(err), http.StatusNotFound)
		return
	default:
		s.metrics.RecordDocument("error")
		s.fail(w, r, errors.New("E203").Wrap(err), http.StatusInternalServerError)
		return
	}
	defer doc.Body.Close()

	contentType := doc.ContentType
	if contentType == "" {
		contentType = legal.ContentTypePDF
	}
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": doc.Name}))
	h.Set("X-Content-Type-Options", "nosniff")
	s.metrics.RecordDocument("served")

	if rs, ok := doc.Body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, doc.Name, doc.ModTime, rs)
		return
	}
	if doc.Size > 0 {
		h.Set("Content-Length", strconv.FormatInt(doc.Size, 10))
	}
	if !doc.ModTime.IsZero() {
		h.Set("Last-Modified", doc.ModTime.UTC().Format(http.TimeFormat))
	}
	if _, err := io.Copy(w, doc.Body); err != nil {
		s.logger.WarnContext(r.Context(), "document copy interrupted",
			slog.String("name", doc.Name), slog.Any("error", err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// fail logs err and writes its message with status. 5xx are logged at
// error level, the rest at debug.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err *errors.AdminError, status int) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(r.Context(), level, "request failed",
		slog.String("code", err.Code),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	http.Error(w, err.Message, status)
}
