// Package vtest provides render assertions for admin view components.
//
// Every helper renders the node with a fresh renderer, so tests exercise the
// same serialization path the server uses:
//
//	func TestPanel(t *testing.T) {
//	    node := Panel("Resumen").Render()
//	    vtest.ExpectElement(t, node, "h3")
//	    vtest.ExpectContains(t, node, "Resumen")
//	    vtest.ExpectAttribute(t, node, "class", "panel")
//	    vtest.ExpectMatch(t, node, `<h3>.*</h3>`)
//	}
package vtest
