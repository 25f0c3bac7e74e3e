// Package footer renders the admin panel footer: a right-aligned link to the
// data protection notice for administrators.
package footer

import "github.com/plebishub/plebisadmin/pkg/vdom"

const (
	// ID is the id attribute of the footer root element.
	ID = "footer"

	// Style is the inline style of the footer root element.
	Style = "text-align: right;"

	// DocumentName is the file name of the linked notice.
	DocumentName = "PLEBISHUB_proteccion_datos_administradores.pdf"

	// DocumentHref is the path the footer links to.
	DocumentHref = "/pdf/" + DocumentName

	// LinkText is the visible text of the footer link.
	LinkText = "Información sobre protección de datos para administradores"
)

// Footer is the admin page footer.
type Footer struct{}

var _ vdom.Component = (*Footer)(nil)

// New returns a Footer.
func New() *Footer {
	return &Footer{}
}

// Render builds div#footer > div > small > a. The link opens the notice in a
// new tab without giving it access to the opener.
func (f *Footer) Render() *vdom.VNode {
	return vdom.Div(vdom.ID(ID), vdom.StyleAttr(Style),
		vdom.Div(
			vdom.Small(
				vdom.A(
					vdom.Href(DocumentHref),
					vdom.Target("_blank"),
					vdom.Rel("noopener"),
					vdom.Text(LinkText),
				),
			),
		),
	)
}
