package vdom

// Attr returns the string value of an attribute and whether it is set.
// Non-string values are reported as unset.
func (v *VNode) Attr(key string) (string, bool) {
	if v == nil || v.Props == nil {
		return "", false
	}
	s, ok := v.Props[key].(string)
	return s, ok
}

// Find returns the first element with the given tag in depth-first order,
// including v itself. Component nodes are expanded by rendering them.
func (v *VNode) Find(tag string) *VNode {
	var found *VNode
	v.walk(func(n *VNode) bool {
		if n.Kind == KindElement && n.Tag == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element with the given tag in depth-first order.
func (v *VNode) FindAll(tag string) []*VNode {
	var out []*VNode
	v.walk(func(n *VNode) bool {
		if n.Kind == KindElement && n.Tag == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Count returns how many elements with the given tag appear in the tree.
func Count(root *VNode, tag string) int {
	return len(root.FindAll(tag))
}

// walk visits nodes depth-first until fn returns false.
func (v *VNode) walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if v.Kind == KindComponent {
		if v.Comp == nil {
			return true
		}
		return v.Comp.Render().walk(fn)
	}
	if !fn(v) {
		return false
	}
	for _, child := range v.Children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}
