package render

import (
	"fmt"
	"io"

	"github.com/plebishub/plebisadmin/pkg/vdom"
)

// DefaultLang is the document language used when PageData.Lang is empty.
const DefaultLang = "es"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS styles
	Styles []string

	// Scripts contains script tags, rendered at the end of the body
	Scripts []ScriptTag

	// Lang is the language attribute for the html element.
	// Defaults to DefaultLang if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string // name attribute
	Content string // content attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Inline string // inline script content, written verbatim
}

// pageWriter remembers the first write error so the document skeleton can be
// written without checking every call.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if err := r.renderDocumentStart(w, page); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	return r.renderDocumentEnd(w, page)
}

// renderDocumentStart writes the DOCTYPE, html tag, head, and opening body tag.
func (r *Renderer) renderDocumentStart(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = DefaultLang
	}

	p := &pageWriter{w: w}
	p.printf("<!DOCTYPE html>\n")
	p.printf("<html lang=\"%s\">\n", escapeAttr(lang))
	p.printf("<head>\n")
	p.printf("  <meta charset=\"utf-8\">\n")
	p.printf("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if page.Title != "" {
		p.printf("  <title>%s</title>\n", escapeHTML(page.Title))
	}
	for _, meta := range page.Meta {
		if meta.Name == "" {
			continue
		}
		p.printf("  <meta name=\"%s\" content=\"%s\">\n", escapeAttr(meta.Name), escapeAttr(meta.Content))
	}
	for _, href := range page.StyleSheets {
		p.printf("  <link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href))
	}
	for _, style := range page.Styles {
		p.printf("  <style>%s</style>\n", style)
	}
	p.printf("</head>\n")
	p.printf("<body>\n")
	return p.err
}

// renderDocumentEnd writes body scripts and closes the document.
func (r *Renderer) renderDocumentEnd(w io.Writer, page PageData) error {
	p := &pageWriter{w: w}
	for _, script := range page.Scripts {
		switch {
		case script.Src != "" && script.Defer:
			p.printf("  <script src=\"%s\" defer></script>\n", escapeAttr(script.Src))
		case script.Src != "":
			p.printf("  <script src=\"%s\"></script>\n", escapeAttr(script.Src))
		case script.Inline != "":
			p.printf("  <script>%s</script>\n", script.Inline)
		}
	}
	p.printf("</body>\n</html>\n")
	return p.err
}
