package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/plebishub/plebisadmin/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hola, mundo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hola, mundo" {
		t.Errorf("got %q, want %q", html, "Hola, mundo")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("panel"),
		vdom.H3(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="panel"><h3>Title</h3><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.A(vdom.Target("_blank"), vdom.Rel("noopener"), vdom.Href("/doc.pdf"), vdom.Text("doc"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<a href="/doc.pdf" rel="noopener" target="_blank">doc</a>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "br",
			node: vdom.Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: vdom.Img(vdom.Src("/logo.png"), vdom.Attr{Key: "alt", Value: "logo"}),
			want: `<img alt="logo" src="/logo.png">`,
		},
		{
			name: "meta",
			node: vdom.Meta(vdom.Name("robots"), vdom.Content("noindex")),
			want: `<meta content="noindex" name="robots">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Div(vdom.Attr{Key: "hidden", Value: true}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div hidden></div>` {
		t.Errorf("got %q", html)
	}

	node := vdom.Div(vdom.Attr{Key: "hidden", Value: false})
	html, _ = renderer.RenderToString(node)
	if html != `<div></div>` {
		t.Errorf("false boolean attr should be omitted, got %q", html)
	}
}

func TestRenderSkipsInternalProps(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Li(vdom.Key("k1"), vdom.Attr{Key: "_meta", Value: "x"}, vdom.Attr{Key: "title", Value: nil})
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<li></li>` {
		t.Errorf("got %q, want <li></li>", html)
	}
}

func TestRenderNonStringAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(
		vdom.Attr{Key: "data-count", Value: 3},
		vdom.Attr{Key: "data-ratio", Value: 0.5},
		vdom.Attr{Key: "data-open", Value: true},
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div data-count="3" data-open="true" data-ratio="0.5"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Div(vdom.TitleAttr("a \"quoted\"\nvalue")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div title="a &quot;quoted&quot;&#10;value"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderFragmentAndRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Fragment(
		vdom.Span(vdom.Text("One")),
		vdom.Raw("<em>two</em>"),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<span>One</span><em>two</em>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	comp := vdom.Func(func() *vdom.VNode {
		return vdom.Small(vdom.Text("inside"))
	})

	html, err := renderer.RenderComponent(comp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<small>inside</small>` {
		t.Errorf("got %q", html)
	}

	nested, err := renderer.RenderToString(vdom.Div(comp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nested != `<div><small>inside</small></div>` {
		t.Errorf("got %q", nested)
	}

	empty, err := renderer.RenderComponent(nil)
	if err != nil || empty != "" {
		t.Errorf("RenderComponent(nil) = %q, %v", empty, err)
	}
}

func TestRenderNilAndUnknown(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil || html != "" {
		t.Errorf("nil node = %q, %v", html, err)
	}

	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(99)}); err == nil {
		t.Error("expected error for unknown node kind")
	}
	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.KindElement}); err == nil {
		t.Error("expected error for element without tag")
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRenderWriterError(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	err := renderer.RenderToWriter(failingWriter{}, vdom.Div(vdom.Text("x")))
	if !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want %v", err, errWrite)
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.ID("footer"),
		vdom.Div(
			vdom.Small(vdom.A(vdom.Href("/x"), vdom.Text("x"))),
		),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div id=\"footer\">\n" +
		"  <div><small><a href=\"/x\">x</a></small></div>\n" +
		"</div>\n"
	if html != want {
		t.Errorf("got:\n%s\nwant:\n%s", html, want)
	}
}

func TestRenderPrettyNesting(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Ul(
		vdom.Li(vdom.P(vdom.Text("uno"))),
		vdom.Fragment(vdom.Li(vdom.Em(vdom.Text("dos")))),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul>\n" +
		"  <li>\n" +
		"    <p>uno</p>\n" +
		"  </li>\n" +
		"  <li><em>dos</em></li>\n" +
		"</ul>\n"
	if html != want {
		t.Errorf("got:\n%s\nwant:\n%s", html, want)
	}
}

func TestRenderEmptyStringAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Div(vdom.TitleAttr(""), vdom.Data("section", ""), vdom.ID("x")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div data-section="" id="x" title=""></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}
