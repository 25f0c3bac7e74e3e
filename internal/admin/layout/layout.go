// Package layout builds the admin page shell that hosts the section content
// and the footer.
package layout

import (
	"github.com/plebishub/plebisadmin/internal/admin/footer"
	. "github.com/plebishub/plebisadmin/pkg/vdom"
)

// DefaultSiteTitle is shown in the header when Page.SiteTitle is empty.
const DefaultSiteTitle = "PlebisHub"

// NavItem is an entry of the header navigation.
type NavItem struct {
	Label string
	Href  string
	// Section identifies the entry; it is marked current when it equals
	// Page.Section.
	Section string
}

// Page describes one admin page.
type Page struct {
	SiteTitle string
	Title     string
	Section   string
	Nav       []NavItem
	Content   *VNode

	// Footer is mounted at the bottom of the page. Nil means footer.New().
	Footer Component
}

// DefaultNav is the navigation shown on every admin page.
var DefaultNav = []NavItem{
	{Label: "Panel", Href: "/admin", Section: "dashboard"},
}

// Layout wraps page content with the admin shell.
func Layout(p Page) *VNode {
	site := p.SiteTitle
	if site == "" {
		site = DefaultSiteTitle
	}
	foot := p.Footer
	if foot == nil {
		foot = footer.New()
	}

	return Div(ID("wrapper"),
		Header(ID("header"),
			H1(ID("site_title"), A(Href("/admin"), Text(site))),
			Nav(AriaLabel("Navegación principal"),
				Ul(ID("tabs"),
					Range(p.Nav, func(item NavItem, i int) *VNode {
						return navItem(item, p.Section)
					}),
				),
			),
		),
		Div(ID("title_bar"),
			H2(ID("page_title"), Text(p.Title)),
		),
		Div(ID("active_admin_content"), Data("section", p.Section),
			Main(p.Content),
		),
		foot,
	)
}

func navItem(item NavItem, current string) *VNode {
	if item.Section != "" && item.Section == current {
		return Li(Key(item.Section), Class("current"),
			A(Href(item.Href), AriaCurrent("page"), Text(item.Label)),
		)
	}
	return Li(Key(item.Section), A(Href(item.Href), Text(item.Label)))
}
