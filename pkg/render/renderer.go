package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/plebishub/plebisadmin/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderComponent renders a component's output to an HTML string.
func (r *Renderer) RenderComponent(c vdom.Component) (string, error) {
	if c == nil {
		return "", nil
	}
	return r.RenderToString(c.Render())
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, node, depth)
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render(), depth)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("element node without tag")
	}

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node.Props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		return r.endLine(w, tag, depth)
	}

	block := r.config.Pretty && !isInlineElement(tag) && hasBlockChild(node)
	if block {
		if err := r.newline(w); err != nil {
			return err
		}
	}

	// Inline children are never indented.
	childDepth := depth + 1
	if !block {
		childDepth = 0
	}
	if err := r.renderChildren(w, node, childDepth); err != nil {
		return err
	}

	if block {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	return r.endLine(w, tag, depth)
}

// endLine terminates an element's line in pretty mode. Inline elements
// flowing inside other inline content stay on the same line.
func (r *Renderer) endLine(w io.Writer, tag string, depth int) error {
	if depth == 0 && isInlineElement(tag) {
		return nil
	}
	return r.newline(w)
}

// hasBlockChild reports whether node has a child that goes on its own line.
// An element whose children are all text or inline elements stays on one
// line, so <div><small>..</small></div> is never split.
func hasBlockChild(node *vdom.VNode) bool {
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		switch child.Kind {
		case vdom.KindElement:
			if !isInlineElement(child.Tag) {
				return true
			}
		case vdom.KindFragment:
			if hasBlockChild(child) {
				return true
			}
		case vdom.KindComponent:
			return true
		}
	}
	return false
}

func (r *Renderer) renderChildren(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderAttributes renders attributes sorted by name.
func (r *Renderer) renderAttributes(w io.Writer, props vdom.Props) error {
	if len(props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		// Internal props and the identity key are never rendered.
		if key == "key" || strings.HasPrefix(key, "_") {
			continue
		}

		if b, ok := value.(bool); ok && isBooleanAttr(key) {
			if b {
				if _, err := io.WriteString(w, " "+key); err != nil {
					return err
				}
			}
			continue
		}

		if value == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrToString(value))); err != nil {
			return err
		}
	}

	return nil
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) newline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	_, err := io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	return err
}
