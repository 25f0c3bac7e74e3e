package vtest

import (
	"regexp"
	"strings"
	"testing"

	"github.com/plebishub/plebisadmin/pkg/render"
	"github.com/plebishub/plebisadmin/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// Render errors yield an empty string; use MustRender to fail on them.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// MustRender renders a VNode and fails the test on a render error.
func MustRender(t testing.TB, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag+">") && !strings.Contains(html, "<"+tag+" ") {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectMatch asserts that rendered output matches a regular expression.
func ExpectMatch(t testing.TB, node *vdom.VNode, pattern string) {
	t.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatalf("invalid pattern %q: %v", pattern, err)
	}
	html := RenderToString(node)
	if !re.MatchString(html) {
		t.Errorf("expected rendered output to match %q, got:\n%s", pattern, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
