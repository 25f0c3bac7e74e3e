// Package vdom provides the element tree that admin views render into.
//
// A view builds a tree of VNode values using variadic factory functions and
// hands it to the render package for serialization. The tree is built fresh
// on every render and is never mutated after construction.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes; Attr is used
// to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("panel"), ID("main"),
//	    H3(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be nil (ignored), Attr, []Attr, *VNode, []*VNode, Component
// or string (a text child).
//
// # Components
//
// Component is the capability every admin view implements: it renders itself
// into a VNode. A Component passed as a child is expanded lazily by the
// renderer, so layouts can hold components without rendering them up front.
package vdom
