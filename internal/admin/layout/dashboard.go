package layout

import . "github.com/plebishub/plebisadmin/pkg/vdom"

// Panel is a titled content box.
func Panel(title string, children ...any) *VNode {
	return Div(Class("panel"),
		H3(Text(title)),
		Div(append([]any{Class("panel_contents")}, children...)...),
	)
}

// Dashboard is the admin landing page.
func Dashboard(siteTitle string) Page {
	return Page{
		SiteTitle: siteTitle,
		Title:     "Panel",
		Section:   "dashboard",
		Nav:       DefaultNav,
		Content: Div(ID("dashboard_default_message"), Class("blank_slate_container"),
			Panel("Bienvenida",
				P(Text("Bienvenido al panel de administración.")),
				P(Small(Text("Usa el menú superior para navegar por las secciones."))),
			),
		),
	}
}
