// Package render serializes vdom trees to HTML.
//
// The render package converts VNode trees into HTML strings or streams,
// handling everything needed to produce valid, safe markup:
//
//   - HTML5 element rendering with void element handling (br, img, meta...)
//   - Text and attribute escaping
//   - Boolean attribute handling (hidden, disabled...)
//   - Deterministic attribute order (sorted by name)
//   - Lazy expansion of embedded components
//   - Full page rendering with DOCTYPE, head, and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// Components can be rendered directly:
//
//	html, err := renderer.RenderComponent(footer.New())
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Body:  layout.Layout(p),
//	    Title: "Panel de administración",
//	}
//	err := renderer.RenderPage(w, page)
//
// For HTTP responses, StreamingRenderer flushes the head before the body is
// rendered.
//
// # Security
//
// All text content is escaped. Raw HTML can be inserted with KindRaw nodes,
// but only for trusted content.
package render
